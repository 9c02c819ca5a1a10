package archetypes

import (
	"github.com/automoto/supertale/shared/simcomponents"
	"github.com/automoto/supertale/tags"
	"github.com/yohamta/donburi"
)

var (
	Player = newArchetype(
		tags.Player,
		simcomponents.Player,
		simcomponents.Health,
		simcomponents.Object,
	)
	Bone = newArchetype(
		tags.Bone,
		simcomponents.Hazard,
		simcomponents.Bone,
		simcomponents.Object,
	)
	RisingBone = newArchetype(
		tags.RisingBone,
		simcomponents.Hazard,
		simcomponents.Bone,
		simcomponents.Object,
	)
	Logo = newArchetype(
		tags.Logo,
		simcomponents.Hazard,
		simcomponents.Logo,
		simcomponents.Object,
	)
	Warning = newArchetype(
		tags.Warning,
		simcomponents.Hazard,
		simcomponents.Warning,
		simcomponents.Object,
	)
	Beam = newArchetype(
		tags.Beam,
		simcomponents.Hazard,
		simcomponents.Beam,
		simcomponents.Object,
	)
	Platform = newArchetype(
		tags.Platform,
		simcomponents.Hazard,
		simcomponents.Platform,
		simcomponents.Object,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)
	return w.Entry(w.Create(all...))
}
