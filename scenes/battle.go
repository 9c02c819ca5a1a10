package scenes

import (
	"fmt"
	"image/color"
	"log"
	"sync"

	"github.com/automoto/supertale/components"
	cfg "github.com/automoto/supertale/config"
	"github.com/automoto/supertale/shared/layout"
	"github.com/automoto/supertale/systems"
	"github.com/automoto/supertale/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// BattleScene runs everything from the opening dialogue to the endings.
type BattleScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	battle       *Battle
	commandBar   *ui.CommandBar
	once         sync.Once

	// drawFailure holds a renderer panic until the next Update.
	drawFailure string
}

func NewBattleScene(sc SceneChanger, b *Battle) *BattleScene {
	return &BattleScene{sceneChanger: sc, battle: b}
}

func (bs *BattleScene) Update() {
	if bs.drawFailure != "" {
		bs.sceneChanger.ChangeScene(NewErrorScene(bs.sceneChanger, bs.battle, bs.drawFailure))
		return
	}
	defer bs.recoverToErrorScene()

	bs.once.Do(bs.configure)
	bs.ecs.Update()

	if bs.battle.Engine.Phase() == cfg.PhasePreload {
		bs.sceneChanger.ChangeScene(NewTitleScene(bs.sceneChanger, bs.battle))
	}
}

func (bs *BattleScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)
	bs.drawScene(screen)
}

// drawScene runs the renderers. A scene can't be swapped in the middle of
// Draw, so a panic is logged and handed to the next Update.
func (bs *BattleScene) drawScene(screen *ebiten.Image) {
	if bs.ecs == nil || bs.drawFailure != "" {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Battle scene failed to draw: %v", r)
			bs.drawFailure = fmt.Sprint(r)
		}
	}()
	bs.ecs.Draw(screen)
}

func (bs *BattleScene) recoverToErrorScene() {
	if r := recover(); r != nil {
		log.Printf("Battle scene failed: %v", r)
		bs.sceneChanger.ChangeScene(NewErrorScene(bs.sceneChanger, bs.battle, fmt.Sprint(r)))
	}
}

func (bs *BattleScene) configure() {
	// Render sound effects up front so the first tick doesn't stall
	systems.PreloadAllSFX()

	bs.ecs = ecs.NewECS(donburi.NewWorld())
	bs.battle.Audio.Bind(bs.ecs)
	systems.SuppressHeldInput(bs.ecs)

	entry := bs.ecs.World.Entry(bs.ecs.World.Create(components.Battle))
	components.Battle.SetValue(entry, components.BattleData{
		Engine:   bs.battle.Engine,
		Layout:   bs.battle.Layout,
		Clock:    bs.battle.Clock,
		Snapshot: bs.battle.Engine.Snapshot(),
	})

	region, _ := bs.battle.Layout.Region(layout.RegionCommands)
	bs.commandBar = ui.NewCommandBar(region, func(label string) {
		systems.SelectCommand(bs.ecs, label)
	})

	restart := func() {
		bs.battle.Engine.Reset()
		bs.battle.Engine.Start()
	}
	toTitle := func() {
		bs.battle.Engine.Reset()
	}

	bs.ecs.AddSystem(systems.UpdateAudio)
	bs.ecs.AddSystem(systems.UpdateInput)
	bs.ecs.AddSystem(systems.UpdateBattle)
	bs.ecs.AddSystem(systems.NewUpdateCommands(bs.commandBar))
	bs.ecs.AddSystem(systems.UpdateEffects)
	bs.ecs.AddSystem(systems.NewUpdateGameOver(restart, toTitle))

	bs.ecs.AddRenderer(cfg.Default, systems.DrawPortrait)
	bs.ecs.AddRenderer(cfg.Default, systems.DrawBubble)
	bs.ecs.AddRenderer(cfg.Default, systems.DrawArena)
	bs.ecs.AddRenderer(cfg.Default, systems.DrawSelectPrompt)
	bs.ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	bs.ecs.AddRenderer(cfg.Default, bs.drawCommandBar)
	bs.ecs.AddRenderer(cfg.Default, systems.DrawHitboxes)
	bs.ecs.AddRenderer(cfg.Overlay, systems.DrawFlash)
	bs.ecs.AddRenderer(cfg.Overlay, systems.DrawEnding)
	bs.ecs.AddRenderer(cfg.Overlay, systems.DrawGameOver)
}

func (bs *BattleScene) drawCommandBar(e *ecs.ECS, screen *ebiten.Image) {
	battle, ok := systems.GetBattle(e)
	if !ok {
		return
	}
	phase := battle.Snapshot.Phase
	if phase.RunsFrameLoop() || phase == cfg.PhaseCommandSelection {
		bs.commandBar.Draw(screen)
	}
}
