// Package simcomponents defines the donburi component types used by the
// headless battle simulation.
package simcomponents

import (
	"image/color"
	"time"

	"github.com/yohamta/donburi"
)

// HazardKind is the closed set of hazard variants.
type HazardKind int

const (
	KindBone HazardKind = iota
	KindRisingBone
	KindLogo
	KindWarning
	KindBeam
	KindPlatform
)

func (k HazardKind) String() string {
	switch k {
	case KindBone:
		return "bone"
	case KindRisingBone:
		return "rising_bone"
	case KindLogo:
		return "logo"
	case KindWarning:
		return "warning"
	case KindBeam:
		return "beam"
	case KindPlatform:
		return "platform"
	}
	return "unknown"
}

// Persistent hazards survive collisions, culling and the intermission.
func (k HazardKind) Persistent() bool {
	return k == KindLogo
}

// Axis is the direction a linear hazard travels, or a warning's long side.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

// HazardData is shared by every hazard entity. Doomed marks an entity for
// removal at the end of the current tick.
type HazardData struct {
	ID     uint64
	Kind   HazardKind
	Color  color.RGBA
	Doomed bool
}

// BoneData drives bones and rising bones. Speed is signed along Axis.
type BoneData struct {
	Axis  Axis
	Speed float64
}

// LogoData is the bouncing logo's velocity.
type LogoData struct {
	VX, VY float64
}

// WarningData counts down to a beam. Long is the axis the beam will span.
type WarningData struct {
	Long      Axis
	Countdown time.Duration
}

// BeamData counts down the beam's remaining lifetime.
type BeamData struct {
	Lifetime time.Duration
}

// PlatformData is a lift's signed vertical speed.
type PlatformData struct {
	Speed float64
}

var (
	Hazard   = donburi.NewComponentType[HazardData]()
	Bone     = donburi.NewComponentType[BoneData]()
	Logo     = donburi.NewComponentType[LogoData]()
	Warning  = donburi.NewComponentType[WarningData]()
	Beam     = donburi.NewComponentType[BeamData]()
	Platform = donburi.NewComponentType[PlatformData]()
)
