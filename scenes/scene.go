package scenes

import (
	"time"

	"github.com/automoto/supertale/core"
	"github.com/automoto/supertale/shared/layout"
	"github.com/automoto/supertale/systems"
)

// SceneChanger switches the active scene
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// Battle is the state every scene shares: the one engine, the clock that
// drives it, the screen layout and the audio it plays through.
type Battle struct {
	Engine *core.Engine
	Layout *layout.Layout
	Audio  *systems.BattleAudio
	Clock  func() time.Duration
}

// NewBattle wires an engine to a fresh clock.
func NewBattle(engine *core.Engine, l *layout.Layout, audio *systems.BattleAudio) *Battle {
	start := time.Now()
	return &Battle{
		Engine: engine,
		Layout: l,
		Audio:  audio,
		Clock:  func() time.Duration { return time.Since(start) },
	}
}
