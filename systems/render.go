package systems

import (
	"image"
	"image/color"
	"math"

	"github.com/automoto/supertale/assets"
	cfg "github.com/automoto/supertale/config"
	"github.com/automoto/supertale/shared/gamemath"
	"github.com/automoto/supertale/shared/layout"
	"github.com/automoto/supertale/shared/simcomponents"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

var playerDrawOp = &ebiten.DrawRectShaderOptions{}

// arenaView maps arena units onto the screen region the layout gives it.
type arenaView struct {
	region gamemath.Rect
	sx, sy float64
}

func newArenaView(l *layout.Layout, arenaW, arenaH float64) (arenaView, bool) {
	if l == nil || arenaW <= 0 || arenaH <= 0 {
		return arenaView{}, false
	}
	r, ok := l.Region(layout.RegionArena)
	if !ok {
		return arenaView{}, false
	}
	return arenaView{region: r, sx: r.W / arenaW, sy: r.H / arenaH}, true
}

func (v arenaView) project(r gamemath.Rect) (x, y, w, h float32) {
	return float32(v.region.X + r.X*v.sx),
		float32(v.region.Y + r.Y*v.sy),
		float32(r.W * v.sx),
		float32(r.H * v.sy)
}

// DrawArena renders the arena box, hazards clipped to it, and the player.
func DrawArena(e *ecs.ECS, screen *ebiten.Image) {
	battle, ok := GetBattle(e)
	if !ok {
		return
	}
	snap := &battle.Snapshot
	if !snap.Phase.RunsFrameLoop() && snap.Phase != cfg.PhaseCommandSelection {
		return
	}
	view, ok := newArenaView(battle.Layout, snap.ArenaW, snap.ArenaH)
	if !ok {
		return
	}

	r := view.region
	bw := cfg.UI.BorderWidth
	vector.FillRect(screen, float32(r.X)-bw, float32(r.Y)-bw, float32(r.W)+2*bw, float32(r.H)+2*bw, cfg.Colors.ArenaBorder, false)
	vector.FillRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), cfg.Colors.ArenaFill, false)

	arena := screen.SubImage(image.Rect(
		int(r.X), int(r.Y), int(math.Ceil(r.Right())), int(math.Ceil(r.Bottom())),
	)).(*ebiten.Image)
	for _, h := range snap.Hazards {
		x, y, w, hh := view.project(h.Rect)
		c := h.Color
		if h.Kind == simcomponents.KindWarning {
			// Outline only; warnings never hurt.
			vector.StrokeRect(arena, x, y, w, hh, 2, c, false)
			continue
		}
		vector.FillRect(arena, x, y, w, hh, c, false)
	}

	if snap.Invincible && !blinkOn(snap.Now.Seconds()) {
		return
	}
	px, py, pw, ph := view.project(snap.Player)
	tint := cfg.Colors.Player
	if snap.Invincible {
		tint = cfg.Colors.PlayerHit
	}
	drawTinted(arena, px, py, pw, ph, tint)
}

// blinkOn toggles at cfg.UI.BlinkHz.
func blinkOn(seconds float64) bool {
	return int(math.Floor(seconds*cfg.UI.BlinkHz*2))%2 == 0
}

func drawTinted(dst *ebiten.Image, x, y, w, h float32, c color.RGBA) {
	if assets.TintShader == nil {
		vector.FillRect(dst, x, y, w, h, c, false)
		return
	}
	playerDrawOp.GeoM.Reset()
	playerDrawOp.GeoM.Translate(float64(x), float64(y))
	playerDrawOp.Uniforms = map[string]any{
		"Tint": []float32{
			float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, float32(c.A) / 255,
		},
	}
	dst.DrawRectShader(int(w), int(h), assets.TintShader, playerDrawOp)
}

// DrawHitboxes outlines every collidable rectangle when debugging.
func DrawHitboxes(e *ecs.ECS, screen *ebiten.Image) {
	if !GetOrCreateDebug(e).ShowHitboxes {
		return
	}
	battle, ok := GetBattle(e)
	if !ok {
		return
	}
	snap := &battle.Snapshot
	view, ok := newArenaView(battle.Layout, snap.ArenaW, snap.ArenaH)
	if !ok || !snap.Phase.RunsFrameLoop() {
		return
	}

	for _, h := range snap.Hazards {
		c := color.RGBA{0, 255, 255, 255} // Cyan default
		if !h.Kind.Persistent() && h.Kind != simcomponents.KindWarning {
			c = color.RGBA{255, 0, 0, 255}
		}
		x, y, w, hh := view.project(h.Rect)
		vector.StrokeRect(screen, x, y, w, hh, 1, c, false)
	}
	x, y, w, h := view.project(snap.Player)
	vector.StrokeRect(screen, x, y, w, h, 1, color.RGBA{0, 0, 255, 255}, false)
}
