package gamemath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverlaps(t *testing.T) {
	player := Rect{X: 10, Y: 10, W: 20, H: 20}

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"inside", Rect{X: 15, Y: 15, W: 5, H: 5}, true},
		{"partial", Rect{X: 25, Y: 25, W: 20, H: 20}, true},
		{"touching right edge", Rect{X: 30, Y: 10, W: 10, H: 10}, false},
		{"touching bottom edge", Rect{X: 10, Y: 30, W: 10, H: 10}, false},
		{"touching left edge", Rect{X: 0, Y: 10, W: 10, H: 10}, false},
		{"apart", Rect{X: 100, Y: 100, W: 10, H: 10}, false},
		{"barely overlapping", Rect{X: 29.999, Y: 29.999, W: 10, H: 10}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(player, tt.other))
			assert.Equal(t, tt.want, Overlaps(tt.other, player), "overlap must be symmetric")
		})
	}
}

func TestOutsideBy(t *testing.T) {
	const w, h, margin = 200, 150, 50

	assert.False(t, OutsideBy(Rect{X: -60, Y: 10, W: 60, H: 10}, w, h, margin), "just entering from the left")
	assert.True(t, OutsideBy(Rect{X: -120, Y: 10, W: 60, H: 10}, w, h, margin))
	assert.True(t, OutsideBy(Rect{X: 251, Y: 10, W: 60, H: 10}, w, h, margin))
	assert.False(t, OutsideBy(Rect{X: 250, Y: 10, W: 60, H: 10}, w, h, margin))
	assert.True(t, OutsideBy(Rect{X: 0, Y: -111, W: 10, H: 60}, w, h, margin))
	assert.True(t, OutsideBy(Rect{X: 0, Y: 201, W: 10, H: 60}, w, h, margin))
}

func TestClampInside(t *testing.T) {
	assert.Equal(t, 0.0, ClampInside(-5, 20, 200))
	assert.Equal(t, 180.0, ClampInside(190, 20, 200))
	assert.Equal(t, 42.0, ClampInside(42, 20, 200))
}

func TestBounceStaysInBoundsAndFlipsOnContact(t *testing.T) {
	const size, limit = 36, 200

	pos, vel, bounced := Bounce(100, 90, size, limit, 0.1)
	assert.InDelta(t, 109.0, pos, 1e-9)
	assert.Equal(t, 90.0, vel)
	assert.False(t, bounced)

	pos, vel, bounced = Bounce(160, 90, size, limit, 0.5)
	assert.Equal(t, 164.0, pos, "clamped to the far wall")
	assert.Equal(t, -90.0, vel)
	assert.True(t, bounced)

	pos, vel, bounced = Bounce(2, -90, size, limit, 0.1)
	assert.Equal(t, 0.0, pos)
	assert.Equal(t, 90.0, vel)
	assert.True(t, bounced)
}

func TestDiagonalDirection(t *testing.T) {
	_, _, ok := DiagonalDirection(0, 0.25)
	assert.False(t, ok, "pure horizontal is rejected")

	_, _, ok = DiagonalDirection(math.Pi/2, 0.25)
	assert.False(t, ok, "pure vertical is rejected")

	dx, dy, ok := DiagonalDirection(math.Pi/4, 0.25)
	assert.True(t, ok)
	assert.InDelta(t, 1.0, dx*dx+dy*dy, 1e-9)
}
