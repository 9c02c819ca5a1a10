package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/supertale/assets"
	"github.com/automoto/supertale/config"
	"github.com/automoto/supertale/core"
	"github.com/automoto/supertale/fonts"
	"github.com/automoto/supertale/scenes"
	"github.com/automoto/supertale/shared/simconfig"
	"github.com/automoto/supertale/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds  image.Rectangle
	scene   Scene
	battle  *scenes.Battle
	scripts <-chan *simconfig.Script
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(script *simconfig.Script, scripts <-chan *simconfig.Script) *Game {
	fonts.LoadDefaults()

	if err := assets.LoadShaders(); err != nil {
		log.Printf("Warning: shaders unavailable, drawing without tint: %v", err)
	}

	audio := systems.NewBattleAudio()
	engine := core.New(script, core.WithAudio(audio))

	g := &Game{
		bounds:  image.Rectangle{},
		battle:  scenes.NewBattle(engine, assets.MustLoadLayout(), audio),
		scripts: scripts,
	}

	if config.Debug.SkipTitle {
		engine.Start()
		g.scene = scenes.NewBattleScene(g, g.battle)
	} else {
		g.scene = scenes.NewTitleScene(g, g.battle)
	}

	return g
}

func (g *Game) Update() error {
	g.pollScripts()
	g.scene.Update()
	return nil
}

// pollScripts hands reloaded scripts to the engine without blocking.
func (g *Game) pollScripts() {
	for {
		select {
		case s, ok := <-g.scripts:
			if !ok {
				g.scripts = nil
				return
			}
			g.battle.Engine.SetScript(s)
		default:
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	scriptPath := flag.String("script", "", "battle script YAML (default: embedded)")
	watch := flag.Bool("watch", false, "reload -script when the file changes")
	flag.BoolVar(&config.Debug.SkipTitle, "skip-title", false, "start the battle immediately")
	flag.BoolVar(&config.Debug.ShowHitboxes, "hitboxes", false, "outline hitboxes")
	flag.Parse()

	var script *simconfig.Script
	var scripts <-chan *simconfig.Script
	if *scriptPath != "" {
		s, err := simconfig.LoadScript(*scriptPath)
		if err != nil {
			log.Fatalf("Failed to load script: %v", err)
		}
		script = s

		if *watch {
			w, err := simconfig.WatchScript(*scriptPath)
			if err != nil {
				log.Printf("Warning: Could not watch script: %v", err)
			} else {
				defer w.Close()
				scripts = w.Scripts
			}
		}
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	if err := ebiten.RunGame(NewGame(script, scripts)); err != nil {
		log.Fatal(err)
	}
}
