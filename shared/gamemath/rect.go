// Package gamemath holds the pure geometry used by the battle simulation.
package gamemath

// Rect is an axis-aligned rectangle in arena-local units. X and Y are the
// top-left corner.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Center returns the midpoint of r.
func (r Rect) Center() (x, y float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Overlaps is the strict AABB test: rectangles that only share an edge do
// not overlap.
func Overlaps(a, b Rect) bool {
	return a.Left() < b.Right() &&
		a.Right() > b.Left() &&
		a.Top() < b.Bottom() &&
		a.Bottom() > b.Top()
}

// OutsideBy reports whether r lies entirely outside a w x h arena by more
// than margin on any side.
func OutsideBy(r Rect, w, h, margin float64) bool {
	return r.Right() < -margin ||
		r.Left() > w+margin ||
		r.Bottom() < -margin ||
		r.Top() > h+margin
}
