package core

import (
	"log"
	"math"

	"github.com/automoto/supertale/core/factory"
	"github.com/automoto/supertale/shared/gamemath"
	"github.com/automoto/supertale/shared/simcomponents"
	"github.com/automoto/supertale/shared/simconfig"
)

const maxLogoAngleTries = 32

func (e *Engine) spawn(kind simconfig.PatternKind) {
	switch kind {
	case simconfig.PatternHorizontalBones:
		e.spawnHorizontalBone()
	case simconfig.PatternVerticalBones:
		e.spawnVerticalBone()
	case simconfig.PatternRisingBones:
		e.spawnRisingBone()
	case simconfig.PatternGasterBlaster:
		e.spawnGasterWarning()
	case simconfig.PatternDVDLogo:
		e.spawnLogo()
	case simconfig.PatternSplitLifts:
		e.spawnLift()
	default:
		log.Printf("Warning: no spawner for pattern kind %q", kind)
	}
}

// spawnHorizontalBone enters from the left or right edge at a random height.
func (e *Engine) spawnHorizontalBone() {
	t, s := e.tun, e.session
	y := e.rng.Float64() * (t.ArenaHeight - t.HorizontalBoneHeight)
	x, speed := -t.HorizontalBoneWidth, t.BoneSpeed
	if e.rng.Float64() >= 0.5 {
		x, speed = t.ArenaWidth, -t.BoneSpeed
	}
	r := gamemath.Rect{X: x, Y: y, W: t.HorizontalBoneWidth, H: t.HorizontalBoneHeight}
	s.addHazard(factory.CreateBone(s.world, s.space, s.newHazardID(), r, simcomponents.AxisX, speed, false))
}

// spawnVerticalBone enters from the top or bottom edge at a random column.
func (e *Engine) spawnVerticalBone() {
	t, s := e.tun, e.session
	x := e.rng.Float64() * (t.ArenaWidth - t.VerticalBoneWidth)
	y, speed := -t.VerticalBoneHeight, t.BoneSpeed
	if e.rng.Float64() >= 0.5 {
		y, speed = t.ArenaHeight, -t.BoneSpeed
	}
	r := gamemath.Rect{X: x, Y: y, W: t.VerticalBoneWidth, H: t.VerticalBoneHeight}
	s.addHazard(factory.CreateBone(s.world, s.space, s.newHazardID(), r, simcomponents.AxisY, speed, false))
}

// spawnRisingBone always rises from the bottom edge.
func (e *Engine) spawnRisingBone() {
	t, s := e.tun, e.session
	x := e.rng.Float64() * (t.ArenaWidth - t.VerticalBoneWidth)
	r := gamemath.Rect{X: x, Y: t.ArenaHeight, W: t.VerticalBoneWidth, H: t.VerticalBoneHeight}
	s.addHazard(factory.CreateBone(s.world, s.space, s.newHazardID(), r, simcomponents.AxisY, -t.BoneSpeed, true))
}

// spawnGasterWarning rolls the spawn chance, then places a warning on a random
// side. Left and right warnings lead to horizontal beams, top and bottom to
// vertical ones.
func (e *Engine) spawnGasterWarning() {
	t, s := e.tun, e.session
	if e.rng.Float64() >= t.GasterChance {
		return
	}

	var r gamemath.Rect
	var long simcomponents.Axis
	switch e.rng.Intn(4) {
	case 0, 1:
		long = simcomponents.AxisX
		r = gamemath.Rect{
			X: 0,
			Y: e.rng.Float64() * (t.ArenaHeight - t.GasterWidth),
			W: t.ArenaWidth,
			H: t.GasterWidth,
		}
	default:
		long = simcomponents.AxisY
		r = gamemath.Rect{
			X: e.rng.Float64() * (t.ArenaWidth - t.GasterWidth),
			Y: 0,
			W: t.GasterWidth,
			H: t.ArenaHeight,
		}
	}
	s.addHazard(factory.CreateWarning(s.world, s.space, s.newHazardID(), r, long, t.GasterWarnTime))
}

// spawnLogo places the bouncing logo at the arena centre, heading in a
// random direction that is never close to axis-aligned.
func (e *Engine) spawnLogo() {
	t, s := e.tun, e.session

	dx, dy := math.Sqrt2/2, math.Sqrt2/2
	for i := 0; i < maxLogoAngleTries; i++ {
		if x, y, ok := gamemath.DiagonalDirection(e.rng.Float64()*2*math.Pi, t.LogoMinAxisRatio); ok {
			dx, dy = x, y
			break
		}
	}

	c := factory.BoneColor
	if len(t.LogoPalette) > 0 {
		c = t.LogoPalette[e.rng.Intn(len(t.LogoPalette))]
	}

	r := gamemath.Rect{
		X: t.ArenaWidth/2 - t.LogoWidth/2,
		Y: t.ArenaHeight/2 - t.LogoHeight/2,
		W: t.LogoWidth,
		H: t.LogoHeight,
	}
	s.addHazard(factory.CreateLogo(s.world, s.space, s.newHazardID(), r, dx*t.LogoSpeed, dy*t.LogoSpeed, c))
}

// spawnLift alternates a lift rising through the left half with one
// descending through the right half.
func (e *Engine) spawnLift() {
	t, s := e.tun, e.session
	var r gamemath.Rect
	var speed float64
	if s.nextLiftLeft {
		r = gamemath.Rect{X: 0, Y: t.ArenaHeight, W: t.LiftWidth, H: t.LiftHeight}
		speed = -t.LiftSpeed
	} else {
		r = gamemath.Rect{X: t.ArenaWidth - t.LiftWidth, Y: -t.LiftHeight, W: t.LiftWidth, H: t.LiftHeight}
		speed = t.LiftSpeed
	}
	s.nextLiftLeft = !s.nextLiftLeft
	s.addHazard(factory.CreatePlatform(s.world, s.space, s.newHazardID(), r, speed))
}
