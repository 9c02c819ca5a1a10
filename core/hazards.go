package core

import (
	"log"
	"time"

	"github.com/automoto/supertale/core/factory"
	"github.com/automoto/supertale/shared/gamemath"
	"github.com/automoto/supertale/shared/simcomponents"
	"github.com/yohamta/donburi"
)

// beamSpec is a beam waiting to be created at the end of the tick.
type beamSpec struct {
	rect gamemath.Rect
}

// advanceHazards moves every live hazard by one step. Warnings that expire
// are doomed and their beams returned for the caller to append.
func (e *Engine) advanceHazards(dt float64, elapsed time.Duration) []beamSpec {
	var beams []beamSpec
	e.session.hazardEntries(func(entry *donburi.Entry, h *simcomponents.HazardData) {
		if h.Doomed {
			return
		}
		obj := simcomponents.Object.Get(entry)

		switch h.Kind {
		case simcomponents.KindBone, simcomponents.KindRisingBone:
			bone := simcomponents.Bone.Get(entry)
			if bone.Axis == simcomponents.AxisX {
				obj.X += bone.Speed * dt
			} else {
				obj.Y += bone.Speed * dt
			}
		case simcomponents.KindPlatform:
			obj.Y += simcomponents.Platform.Get(entry).Speed * dt
		case simcomponents.KindLogo:
			logo := simcomponents.Logo.Get(entry)
			obj.X, logo.VX, _ = gamemath.Bounce(obj.X, logo.VX, obj.W, e.tun.ArenaWidth, dt)
			obj.Y, logo.VY, _ = gamemath.Bounce(obj.Y, logo.VY, obj.H, e.tun.ArenaHeight, dt)
		case simcomponents.KindWarning:
			w := simcomponents.Warning.Get(entry)
			w.Countdown -= elapsed
			if w.Countdown <= 0 {
				h.Doomed = true
				beams = append(beams, beamSpec{rect: e.beamFor(obj.Rect(), w.Long)})
			}
		case simcomponents.KindBeam:
			b := simcomponents.Beam.Get(entry)
			b.Lifetime -= elapsed
			if b.Lifetime <= 0 {
				h.Doomed = true
			}
		default:
			log.Printf("Warning: hazard %d has unknown kind %s", h.ID, h.Kind)
		}
		obj.Update()
	})
	return beams
}

// beamFor centres a beam on the warning's midline and stretches it across
// the whole arena along the warning's long axis.
func (e *Engine) beamFor(warning gamemath.Rect, long simcomponents.Axis) gamemath.Rect {
	t := e.tun
	cx, cy := warning.Center()
	if long == simcomponents.AxisX {
		return gamemath.Rect{X: 0, Y: cy - t.GasterWidth/2, W: t.ArenaWidth, H: t.GasterWidth}
	}
	return gamemath.Rect{X: cx - t.GasterWidth/2, Y: 0, W: t.GasterWidth, H: t.ArenaHeight}
}

// cullHazards dooms moving hazards that have left the arena by more than the
// cull margin. Warnings, beams and the logo are never culled.
func (e *Engine) cullHazards() {
	t := e.tun
	e.session.hazardEntries(func(entry *donburi.Entry, h *simcomponents.HazardData) {
		switch h.Kind {
		case simcomponents.KindWarning, simcomponents.KindBeam, simcomponents.KindLogo:
			return
		}
		if gamemath.OutsideBy(simcomponents.Object.Get(entry).Rect(), t.ArenaWidth, t.ArenaHeight, t.CullMargin) {
			h.Doomed = true
		}
	})
}

// commitHazards removes doomed hazards and appends this tick's beams.
func (e *Engine) commitHazards(beams []beamSpec) {
	s := e.session
	s.sweep()
	for _, b := range beams {
		s.addHazard(factory.CreateBeam(s.world, s.space, s.newHazardID(), b.rect, e.tun.GasterBeamTime))
	}
}

// Collides is the collision rule between a hazard and the player. Warnings
// are visual only and never collide.
func Collides(kind simcomponents.HazardKind, hazard, player gamemath.Rect) bool {
	if kind == simcomponents.KindWarning {
		return false
	}
	return gamemath.Overlaps(hazard, player)
}
