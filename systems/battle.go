package systems

import (
	"github.com/automoto/supertale/components"
	cfg "github.com/automoto/supertale/config"
	"github.com/yohamta/donburi/ecs"
)

// GetBattle returns the scene's battle link. Scenes create it in configure.
func GetBattle(e *ecs.ECS) (*components.BattleData, bool) {
	entry, ok := components.Battle.First(e.World)
	if !ok {
		return nil, false
	}
	return components.Battle.Get(entry), true
}

// UpdateBattle feeds held keys to the engine, advances it to the shared
// clock and stores the snapshot the renderers draw.
func UpdateBattle(e *ecs.ECS) {
	battle, ok := GetBattle(e)
	if !ok || battle.Engine == nil {
		return
	}
	input := GetOrCreateInput(e)
	engine := battle.Engine

	if GetAction(input, cfg.ActionToggleHitboxes).JustPressed {
		debug := GetOrCreateDebug(e)
		debug.ShowHitboxes = !debug.ShowHitboxes
	}

	if GetAction(input, cfg.ActionReset).JustPressed {
		engine.Reset()
	} else if engine.Phase().IsEnding() && GetAction(input, cfg.ActionConfirm).JustPressed {
		engine.Reset()
	}

	engine.SetHeld(HeldMoves(input))
	engine.Update(battle.Clock())
	battle.Snapshot = engine.Snapshot()
}

// GetOrCreateDebug returns the singleton debug toggles.
func GetOrCreateDebug(e *ecs.ECS) *components.DebugData {
	entry, ok := components.Debug.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Debug))
		components.Debug.SetValue(entry, components.DebugData{ShowHitboxes: cfg.Debug.ShowHitboxes})
	}
	return components.Debug.Get(entry)
}
