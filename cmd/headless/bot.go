package main

import (
	"fmt"
	"math"
	"time"

	"github.com/automoto/supertale/core"
	"github.com/automoto/supertale/shared/gamemath"
	"github.com/automoto/supertale/shared/simcomponents"
)

// Bot chooses which movement keys to hold for the next tick.
type Bot interface {
	Keys(snap core.Snapshot) core.MoveSet
}

func newBot(name string, speed float64) (Bot, error) {
	switch name {
	case "idle":
		return idleBot{}, nil
	case "sweep":
		return &sweepBot{period: time.Second}, nil
	case "dodge":
		return &dodgeBot{speed: speed, lookahead: 150 * time.Millisecond}, nil
	}
	return nil, fmt.Errorf("unknown bot %q (want idle, sweep or dodge)", name)
}

type idleBot struct{}

func (idleBot) Keys(core.Snapshot) core.MoveSet { return 0 }

// sweepBot walks left and right across the arena, switching every period.
type sweepBot struct {
	period time.Duration
}

func (b *sweepBot) Keys(snap core.Snapshot) core.MoveSet {
	if (snap.Now/b.period)%2 == 0 {
		return core.MoveLeft
	}
	return core.MoveRight
}

// dodgeBot tries each move, projects the player forward and hazards by
// their recent motion, and keeps the move with the fewest predicted hits.
type dodgeBot struct {
	speed     float64
	lookahead time.Duration
	last      map[uint64]gamemath.Rect
	lastNow   time.Duration
}

var dodgeMoves = []core.MoveSet{
	0,
	core.MoveLeft,
	core.MoveRight,
	core.MoveUp,
	core.MoveDown,
	core.MoveLeft | core.MoveUp,
	core.MoveLeft | core.MoveDown,
	core.MoveRight | core.MoveUp,
	core.MoveRight | core.MoveDown,
}

func (b *dodgeBot) Keys(snap core.Snapshot) core.MoveSet {
	dt := (snap.Now - b.lastNow).Seconds()
	ahead := b.lookahead.Seconds()

	predicted := make([]core.HazardView, 0, len(snap.Hazards))
	next := make(map[uint64]gamemath.Rect, len(snap.Hazards))
	for _, h := range snap.Hazards {
		next[h.ID] = h.Rect
		r := h.Rect
		if prev, ok := b.last[h.ID]; ok && dt > 0 {
			r.X += (r.X - prev.X) / dt * ahead
			r.Y += (r.Y - prev.Y) / dt * ahead
		}
		if h.Kind == simcomponents.KindWarning {
			// The warning covers exactly where its beam will fire.
			h.Kind = simcomponents.KindBeam
		}
		predicted = append(predicted, core.HazardView{ID: h.ID, Kind: h.Kind, Rect: r})
	}
	b.last = next
	b.lastNow = snap.Now

	best, bestScore := core.MoveSet(0), math.Inf(1)
	for _, m := range dodgeMoves {
		p := b.project(snap, m, ahead)
		score := 0.0
		for _, h := range predicted {
			if core.Collides(h.Kind, h.Rect, p) {
				score++
			}
		}
		// Prefer staying near the centre when threats tie.
		cx, cy := p.Center()
		score += 0.001 * (math.Abs(cx-snap.ArenaW/2) + math.Abs(cy-snap.ArenaH/2))
		if score < bestScore {
			best, bestScore = m, score
		}
	}
	return best
}

func (b *dodgeBot) project(snap core.Snapshot, m core.MoveSet, ahead float64) gamemath.Rect {
	p := snap.Player
	step := b.speed * ahead
	if m.Has(core.MoveLeft) {
		p.X -= step
	}
	if m.Has(core.MoveRight) {
		p.X += step
	}
	if m.Has(core.MoveUp) {
		p.Y -= step
	}
	if m.Has(core.MoveDown) {
		p.Y += step
	}
	p.X = gamemath.Clamp(p.X, 0, snap.ArenaW-p.W)
	p.Y = gamemath.Clamp(p.Y, 0, snap.ArenaH-p.H)
	return p
}
