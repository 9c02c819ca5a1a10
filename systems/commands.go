package systems

import (
	"github.com/automoto/supertale/components"
	cfg "github.com/automoto/supertale/config"
	"github.com/yohamta/donburi/ecs"
)

// CommandMenu is the on-screen command bar.
type CommandMenu interface {
	SetEnabled(enabled bool)
	SetSelected(i int)
	Update()
}

// NewUpdateCommands drives the command bar from the keyboard. Mouse clicks
// reach the engine through the bar's own handler.
func NewUpdateCommands(menu CommandMenu) ecs.System {
	return func(e *ecs.ECS) {
		battle, ok := GetBattle(e)
		if !ok {
			return
		}
		enabled := battle.Snapshot.CommandsEnabled
		menu.SetEnabled(enabled)

		if enabled {
			cursor := getOrCreateCommandCursor(e)
			input := GetOrCreateInput(e)
			numOptions := len(cfg.Commands)

			if GetAction(input, cfg.ActionMenuLeft).JustPressed {
				cursor.Selected = (cursor.Selected - 1 + numOptions) % numOptions
				PlaySFX(e, cfg.SoundMenuNavigate)
			}
			if GetAction(input, cfg.ActionMenuRight).JustPressed {
				cursor.Selected = (cursor.Selected + 1) % numOptions
				PlaySFX(e, cfg.SoundMenuNavigate)
			}
			menu.SetSelected(cursor.Selected)

			if GetAction(input, cfg.ActionConfirm).JustPressed {
				SelectCommand(e, cfg.Commands[cursor.Selected].Label())
			}
		}

		menu.Update()
	}
}

// SelectCommand submits a command label to the engine and refreshes the
// snapshot so the bar disables in the same frame.
func SelectCommand(e *ecs.ECS, label string) {
	battle, ok := GetBattle(e)
	if !ok || battle.Engine == nil {
		return
	}
	battle.Engine.SelectCommand(label)
	battle.Snapshot = battle.Engine.Snapshot()
}

func getOrCreateCommandCursor(e *ecs.ECS) *components.CommandCursorData {
	entry, ok := components.CommandCursor.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.CommandCursor))
	}
	return components.CommandCursor.Get(entry)
}
