package factory

import (
	"github.com/automoto/supertale/archetypes"
	"github.com/automoto/supertale/shared/gamemath"
	"github.com/automoto/supertale/shared/simcomponents"
	"github.com/automoto/supertale/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

func CreatePlayer(w donburi.World, space *resolv.Space, r gamemath.Rect, maxHealth int) *donburi.Entry {
	player := archetypes.Player.Spawn(w)
	simcomponents.Player.SetValue(player, simcomponents.PlayerData{})
	simcomponents.Health.SetValue(player, simcomponents.HealthData{
		Current: maxHealth,
		Max:     maxHealth,
	})
	attachObject(player, space, r, tags.ResolvPlayer)
	return player
}
