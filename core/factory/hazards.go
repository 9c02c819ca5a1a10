package factory

import (
	"image/color"
	"time"

	"github.com/automoto/supertale/archetypes"
	"github.com/automoto/supertale/shared/gamemath"
	"github.com/automoto/supertale/shared/simcomponents"
	"github.com/automoto/supertale/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

var (
	BoneColor     = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	BeamColor     = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xe6}
	WarningColor  = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xb3}
	PlatformColor = color.RGBA{R: 0x60, G: 0xa5, B: 0xfa, A: 0xff}
)

// attachObject creates the entity's resolv object and registers it in space.
func attachObject(entry *donburi.Entry, space *resolv.Space, r gamemath.Rect, tag string) *resolv.Object {
	obj := resolv.NewObject(r.X, r.Y, r.W, r.H, tag)
	obj.SetShape(resolv.NewRectangle(0, 0, r.W, r.H))
	obj.Data = entry
	space.Add(obj)
	simcomponents.Object.SetValue(entry, simcomponents.ObjectData{Object: obj})
	return obj
}

func setHazard(entry *donburi.Entry, id uint64, kind simcomponents.HazardKind, c color.RGBA) {
	simcomponents.Hazard.SetValue(entry, simcomponents.HazardData{
		ID:    id,
		Kind:  kind,
		Color: c,
	})
}

// CreateBone spawns a bone travelling along axis. Rising bones use the same
// data with their own tag.
func CreateBone(w donburi.World, space *resolv.Space, id uint64, r gamemath.Rect, axis simcomponents.Axis, speed float64, rising bool) *donburi.Entry {
	kind := simcomponents.KindBone
	arch := archetypes.Bone
	if rising {
		kind = simcomponents.KindRisingBone
		arch = archetypes.RisingBone
	}

	bone := arch.Spawn(w)
	setHazard(bone, id, kind, BoneColor)
	simcomponents.Bone.SetValue(bone, simcomponents.BoneData{Axis: axis, Speed: speed})
	attachObject(bone, space, r, tags.ResolvHazard)
	return bone
}

func CreateLogo(w donburi.World, space *resolv.Space, id uint64, r gamemath.Rect, vx, vy float64, c color.RGBA) *donburi.Entry {
	logo := archetypes.Logo.Spawn(w)
	setHazard(logo, id, simcomponents.KindLogo, c)
	simcomponents.Logo.SetValue(logo, simcomponents.LogoData{VX: vx, VY: vy})
	attachObject(logo, space, r, tags.ResolvHazard)
	return logo
}

// CreateWarning spawns an inert warning. It sits in the space under the inert
// tag so player checks never return it.
func CreateWarning(w donburi.World, space *resolv.Space, id uint64, r gamemath.Rect, long simcomponents.Axis, countdown time.Duration) *donburi.Entry {
	warning := archetypes.Warning.Spawn(w)
	setHazard(warning, id, simcomponents.KindWarning, WarningColor)
	simcomponents.Warning.SetValue(warning, simcomponents.WarningData{Long: long, Countdown: countdown})
	attachObject(warning, space, r, tags.ResolvInert)
	return warning
}

func CreateBeam(w donburi.World, space *resolv.Space, id uint64, r gamemath.Rect, lifetime time.Duration) *donburi.Entry {
	beam := archetypes.Beam.Spawn(w)
	setHazard(beam, id, simcomponents.KindBeam, BeamColor)
	simcomponents.Beam.SetValue(beam, simcomponents.BeamData{Lifetime: lifetime})
	attachObject(beam, space, r, tags.ResolvHazard)
	return beam
}

func CreatePlatform(w donburi.World, space *resolv.Space, id uint64, r gamemath.Rect, speed float64) *donburi.Entry {
	platform := archetypes.Platform.Spawn(w)
	setHazard(platform, id, simcomponents.KindPlatform, PlatformColor)
	simcomponents.Platform.SetValue(platform, simcomponents.PlatformData{Speed: speed})
	attachObject(platform, space, r, tags.ResolvHazard)
	return platform
}

// Destroy removes a hazard or player from both the space and the world.
func Destroy(w donburi.World, space *resolv.Space, entity donburi.Entity) {
	if !w.Valid(entity) {
		return
	}
	entry := w.Entry(entity)
	if entry.HasComponent(simcomponents.Object) {
		if obj := simcomponents.Object.Get(entry); obj.Object != nil {
			space.Remove(obj.Object)
		}
	}
	w.Remove(entity)
}
