package core

import "github.com/automoto/supertale/shared/gamemath"

// MoveSet is the set of held movement directions.
type MoveSet uint8

const (
	MoveLeft MoveSet = 1 << iota
	MoveRight
	MoveUp
	MoveDown
)

func (m MoveSet) Has(d MoveSet) bool { return m&d != 0 }

// axis returns -1, 0 or 1 for a pair of opposing directions.
func (m MoveSet) axis(neg, pos MoveSet) float64 {
	v := 0.0
	if m.Has(neg) {
		v--
	}
	if m.Has(pos) {
		v++
	}
	return v
}

// movePlayer integrates held input over dt seconds and clamps the player's
// square inside the arena. Outside the movement phases the player is frozen.
func (e *Engine) movePlayer(dt float64) {
	if !e.phase.RunsFrameLoop() {
		return
	}
	t := e.tun
	r := e.session.playerRect()
	step := t.PlayerSpeed * dt

	x := gamemath.ClampInside(r.X+e.held.axis(MoveLeft, MoveRight)*step, r.W, t.ArenaWidth)
	y := gamemath.ClampInside(r.Y+e.held.axis(MoveUp, MoveDown)*step, r.H, t.ArenaHeight)
	e.session.movePlayerTo(x, y)
}
