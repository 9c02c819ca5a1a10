package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/supertale/config"
	"github.com/automoto/supertale/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// TitleScene waits in Preload for the player to start.
type TitleScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	battle       *Battle
	once         sync.Once
}

func NewTitleScene(sc SceneChanger, b *Battle) *TitleScene {
	return &TitleScene{sceneChanger: sc, battle: b}
}

func (ts *TitleScene) Update() {
	ts.once.Do(ts.configure)
	ts.ecs.Update()
}

func (ts *TitleScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ts.ecs == nil {
		return
	}
	ts.ecs.Draw(screen)
}

func (ts *TitleScene) configure() {
	ts.ecs = ecs.NewECS(donburi.NewWorld())
	ts.battle.Audio.Bind(ts.ecs)
	systems.SuppressHeldInput(ts.ecs)

	ts.ecs.AddSystem(systems.UpdateAudio)
	ts.ecs.AddSystem(systems.UpdateInput)
	ts.ecs.AddSystem(ts.updateTitle)

	ts.ecs.AddRenderer(cfg.Default, systems.DrawTitle)
}

func (ts *TitleScene) updateTitle(e *ecs.ECS) {
	ts.battle.Engine.Update(ts.battle.Clock())

	input := systems.GetOrCreateInput(e)
	if systems.GetAction(input, cfg.ActionConfirm).JustPressed {
		ts.battle.Engine.Start()
		ts.sceneChanger.ChangeScene(NewBattleScene(ts.sceneChanger, ts.battle))
	}
}
