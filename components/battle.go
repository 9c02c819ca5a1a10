package components

import (
	"time"

	"github.com/automoto/supertale/core"
	"github.com/automoto/supertale/shared/layout"
	"github.com/yohamta/donburi"
)

// BattleData links the ECS world to the simulation it draws. The engine and
// its clock are owned by the game and outlive scenes.
type BattleData struct {
	Engine   *core.Engine
	Layout   *layout.Layout
	Clock    func() time.Duration
	Snapshot core.Snapshot
}

var Battle = donburi.NewComponentType[BattleData]()

// CommandCursorData is the keyboard cursor over the command bar.
type CommandCursorData struct {
	Selected int
}

var CommandCursor = donburi.NewComponentType[CommandCursorData]()

// DebugData holds toggles flipped at runtime.
type DebugData struct {
	ShowHitboxes bool
}

var Debug = donburi.NewComponentType[DebugData]()
