package systems

import (
	cfg "github.com/automoto/supertale/config"
	"github.com/automoto/supertale/fonts"
	"github.com/automoto/supertale/shared/layout"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawPortrait draws the enemy: a blocky face that bobs in place.
func DrawPortrait(e *ecs.ECS, screen *ebiten.Image) {
	battle, ok := GetBattle(e)
	if !ok || battle.Layout == nil {
		return
	}
	phase := battle.Snapshot.Phase
	if phase == cfg.PhasePreload || phase.IsEnding() || phase == cfg.PhaseGameOver {
		return
	}
	r, ok := battle.Layout.Region(layout.RegionPortrait)
	if !ok {
		return
	}
	dy := getOrCreatePortrait(e).Offset

	x, y := float32(r.X), float32(r.Y)+dy
	w, h := float32(r.W), float32(r.H)
	vector.FillRect(screen, x+w*0.1, y+h*0.15, w*0.8, h*0.75, cfg.Colors.Portrait, false)
	// eyes
	vector.FillRect(screen, x+w*0.25, y+h*0.3, w*0.18, h*0.14, cfg.Colors.PortraitEye, false)
	vector.FillRect(screen, x+w*0.57, y+h*0.3, w*0.18, h*0.14, cfg.Colors.PortraitEye, false)
	vector.FillRect(screen, x+w*0.31, y+h*0.34, w*0.08, h*0.08, cfg.Black, false)
	vector.FillRect(screen, x+w*0.63, y+h*0.34, w*0.08, h*0.08, cfg.Black, false)
	// mouth
	vector.FillRect(screen, x+w*0.3, y+h*0.65, w*0.4, h*0.08, cfg.Colors.HPBack, false)

	face := fonts.Small.Get()
	name := cfg.UI.EnemyName
	text.Draw(screen, name, face, int(r.X+(r.W-float64(textWidth(face, name)))/2), int(r.Bottom())+12, cfg.Colors.HUDText)
}

// DrawBubble draws the speech bubble with the typed-out dialogue.
func DrawBubble(e *ecs.ECS, screen *ebiten.Image) {
	battle, ok := GetBattle(e)
	if !ok || battle.Layout == nil {
		return
	}
	bubble := getOrCreateBubble(e)
	if bubble.Alpha <= 0 {
		return
	}
	r, ok := battle.Layout.Region(layout.RegionDialogue)
	if !ok {
		return
	}

	fill := scaleAlpha(cfg.Colors.BubbleFill, bubble.Alpha)
	vector.FillRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), fill, false)
	// tail toward the portrait
	vector.FillRect(screen, float32(r.X)-8, float32(r.Y+r.H/2)-4, 8, 8, fill, false)

	face := fonts.Body.Get()
	pad := cfg.UI.BubblePadding
	lines := wrapText(face, battle.Snapshot.Dialogue, int(r.W)-2*pad)
	textColor := scaleAlpha(cfg.Colors.BubbleText, bubble.Alpha)
	for i, line := range lines {
		y := int(r.Y) + pad + cfg.UI.LineHeight*(i+1) - 4
		if y > int(r.Bottom()) {
			break
		}
		text.Draw(screen, line, face, int(r.X)+pad, y, textColor)
	}
}
