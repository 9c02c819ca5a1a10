package core

import (
	"time"

	"github.com/automoto/supertale/shared/gamemath"
	"github.com/automoto/supertale/shared/simcomponents"
	"github.com/automoto/supertale/shared/simconfig"
	"github.com/automoto/supertale/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// frame is one pass of the combat loop. Order matters: the player moves
// first, then hazards advance, then collisions are resolved against the new
// player position, and damage is applied last through the intent queue.
func (e *Engine) frame(now time.Duration) {
	reg := &e.scope.frame
	if !e.phase.RunsFrameLoop() {
		e.scope.cancelFrame()
		return
	}
	if !reg.primed {
		reg.primed = true
		reg.last = now
	}
	elapsed := now - reg.last
	reg.last = now
	if elapsed > e.tun.FrameSanityLimit {
		// The host was suspended; drop this step rather than jump.
		return
	}
	dt := elapsed.Seconds()

	e.movePlayer(dt)

	if e.phase != simconfig.PhaseBattle && e.phase != simconfig.PhaseIntermission {
		return
	}
	beams := e.advanceHazards(dt, elapsed)

	hit := false
	if e.phase == simconfig.PhaseBattle {
		e.cullHazards()
		hit = e.resolveCollision()
	}
	e.commitHazards(beams)

	if hit && e.phase == simconfig.PhaseBattle {
		e.enqueue(intent{kind: intentDamage, gen: e.scope.gen, amount: e.tun.DamageAmount})
	}
}

// resolveCollision finds the first hazard, in spawn order, that overlaps the
// player. Only one hit is registered per tick. The hit hazard is consumed
// unless it is a beam or the persistent logo. While invincible the player is
// not tested and hazards pass through.
//
// The space is only a broad phase; the strict overlap test decides.
func (e *Engine) resolveCollision() bool {
	s := e.session
	if s.invincible(e.now) {
		return false
	}

	pr := s.playerRect()
	candidates := hazardsNear(s.space, pr)
	if len(candidates) == 0 {
		return false
	}

	hit := false
	s.hazardEntries(func(entry *donburi.Entry, h *simcomponents.HazardData) {
		if hit || h.Doomed {
			return
		}
		obj := simcomponents.Object.Get(entry)
		if _, ok := candidates[obj.Object]; !ok {
			return
		}
		if !Collides(h.Kind, obj.Rect(), pr) {
			return
		}
		hit = true
		if h.Kind != simcomponents.KindBeam && !h.Kind.Persistent() {
			h.Doomed = true
		}
	})
	return hit
}

// applyDamage is the single place health changes. It is ignored while
// invincible, at zero health and outside the combat phases. Reaching zero in
// Battle ends the game on the same tick.
func (e *Engine) applyDamage(amount int) {
	s := e.session
	switch {
	case s.invincible(e.now):
		return
	case s.health().Current <= 0:
		return
	case e.phase == simconfig.PhaseCommandSelection:
		return
	case e.phase != simconfig.PhaseBattle && !e.phase.IsDialogue():
		return
	}

	hp := s.health()
	before := hp.Current
	hp.Current -= amount
	if hp.Current < 0 {
		hp.Current = 0
	}
	if hp.Current >= before {
		return
	}

	s.grantInvincibility(e.now, e.tun.InvincibilityTime)
	if hp.Current == 0 && e.phase == simconfig.PhaseBattle {
		e.enter(simconfig.PhaseGameOver)
	}
}

// hazardsNear collects hazard objects registered in the cells around r. The
// query is padded by one unit because resolv registers an object only up to
// X+W-1, which would hide sub-unit overlaps across a cell boundary.
func hazardsNear(space *resolv.Space, r gamemath.Rect) map[*resolv.Object]struct{} {
	x0, y0 := space.WorldToSpace(r.Left()-1, r.Top()-1)
	x1, y1 := space.WorldToSpace(r.Right()+1, r.Bottom()+1)
	found := make(map[*resolv.Object]struct{})
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			cell := space.Cell(cx, cy)
			if cell == nil {
				continue
			}
			for _, o := range cell.Objects {
				if o.HasTags(tags.ResolvHazard) {
					found[o] = struct{}{}
				}
			}
		}
	}
	return found
}
