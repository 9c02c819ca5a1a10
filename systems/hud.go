package systems

import (
	"fmt"

	cfg "github.com/automoto/supertale/config"
	"github.com/automoto/supertale/fonts"
	"github.com/automoto/supertale/shared/layout"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudBarWidth  = 90
	hudBarHeight = 16
)

// DrawHUD renders the HP bar plus the pattern and countdown readouts.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	battle, ok := GetBattle(e)
	if !ok || battle.Layout == nil {
		return
	}
	snap := &battle.Snapshot
	if !snap.Phase.RunsFrameLoop() && snap.Phase != cfg.PhaseCommandSelection {
		return
	}
	r, ok := battle.Layout.Region(layout.RegionHUD)
	if !ok {
		return
	}

	face := fonts.Mono.Get()
	x := int(r.X)
	baseline := int(r.Y) + 16
	text.Draw(screen, "HP", face, x, baseline, cfg.Colors.HUDText)
	x += textWidth(face, "HP ")

	barX, barY := float32(x), float32(r.Y)+float32(r.H-hudBarHeight)/2
	vector.FillRect(screen, barX, barY, hudBarWidth, hudBarHeight, cfg.Colors.HPBack, false)
	if snap.MaxHealth > 0 {
		hp := getOrCreateHPBar(e, snap.Health)
		shown := hp.Shown / float32(snap.MaxHealth)
		actual := float32(snap.Health) / float32(snap.MaxHealth)
		if shown > actual {
			vector.FillRect(screen, barX, barY, hudBarWidth*shown, hudBarHeight, cfg.Colors.HPDrain, false)
		}
		vector.FillRect(screen, barX, barY, hudBarWidth*actual, hudBarHeight, cfg.Colors.HPFill, false)
	}
	x += hudBarWidth + 8
	text.Draw(screen, fmt.Sprintf("%d / %d", snap.Health, snap.MaxHealth), face, x, baseline, cfg.Colors.HUDText)

	var status string
	switch snap.Phase {
	case cfg.PhaseBattle:
		status = fmt.Sprintf("%s  %ds  [%ds]", snap.PatternName, snap.AttackTimer, snap.BattleRemaining)
	case cfg.PhaseIntermission:
		status = fmt.Sprintf("[%ds]", snap.BattleRemaining)
	}
	if status != "" {
		text.Draw(screen, status, face, int(r.Right())-textWidth(face, status), baseline, cfg.Colors.HUDText)
	}
}

// DrawSelectPrompt shows the command prompt in the dialogue slot while a
// choice is pending.
func DrawSelectPrompt(e *ecs.ECS, screen *ebiten.Image) {
	battle, ok := GetBattle(e)
	if !ok || battle.Layout == nil || !battle.Snapshot.CommandsEnabled {
		return
	}
	r, ok := battle.Layout.Region(layout.RegionArena)
	if !ok {
		return
	}
	face := fonts.Body.Get()
	msg := cfg.UI.SelectPrompt
	x := int(r.X + (r.W-float64(textWidth(face, msg)))/2)
	text.Draw(screen, msg, face, x, int(r.Y+r.H/2), cfg.Colors.HUDText)
}
