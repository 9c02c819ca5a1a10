package systems

import (
	"image/color"

	cfg "github.com/automoto/supertale/config"
	"github.com/automoto/supertale/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawTitle renders the title screen shown while the engine is preloaded.
func DrawTitle(e *ecs.ECS, screen *ebiten.Image) {
	drawCentered(screen, cfg.UI.TitleText, fonts.Title.Get(), 200, cfg.Yellow)
	drawCentered(screen, cfg.UI.TitlePrompt, fonts.Body.Get(), 280, cfg.White)
	drawCentered(screen, cfg.UI.ShowHitboxesHint, fonts.Small.Get(), 450, cfg.Gray)
}

// DrawEnding renders whichever ending the session reached.
func DrawEnding(e *ecs.ECS, screen *ebiten.Image) {
	battle, ok := GetBattle(e)
	if !ok || !battle.Snapshot.Phase.IsEnding() {
		return
	}
	snap := &battle.Snapshot

	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.FillRect(screen, 0, 0, float32(w), float32(h), cfg.Ending.BackgroundColor, false)

	drawCentered(screen, snap.EndingTitle, fonts.Title.Get(), int(cfg.Ending.TitleY), cfg.Ending.TitleColor)
	body := fonts.Body.Get()
	for i, line := range wrapText(body, snap.EndingText, w-80) {
		drawCentered(screen, line, body, int(cfg.Ending.TextY)+i*cfg.UI.LineHeight*3/2, cfg.Ending.TextColor)
	}
	drawCentered(screen, cfg.UI.EndingHint, fonts.Small.Get(), int(cfg.Ending.HintY), cfg.Ending.HintColor)
}

func scaleAlpha(c color.RGBA, a float32) color.RGBA {
	return color.RGBA{
		R: uint8(float32(c.R) * a),
		G: uint8(float32(c.G) * a),
		B: uint8(float32(c.B) * a),
		A: uint8(float32(c.A) * a),
	}
}
