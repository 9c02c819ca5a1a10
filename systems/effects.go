package systems

import (
	"github.com/automoto/supertale/components"
	cfg "github.com/automoto/supertale/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

func frameDelta() float32 {
	return 1 / float32(ebiten.TPS())
}

// UpdateEffects advances the client-side tweens from the latest snapshot:
// HP bar easing, sting flash, bubble fade and portrait bob.
func UpdateEffects(e *ecs.ECS) {
	battle, ok := GetBattle(e)
	if !ok {
		return
	}
	snap := &battle.Snapshot
	dt := frameDelta()

	hp := getOrCreateHPBar(e, snap.Health)
	if snap.Health != hp.Target {
		hp.Target = snap.Health
		hp.Tween = gween.New(hp.Shown, float32(snap.Health), cfg.UI.HPTweenSeconds, ease.Linear)
	}
	if hp.Tween != nil {
		var done bool
		hp.Shown, done = hp.Tween.Update(dt)
		if done {
			hp.Tween = nil
		}
	}

	flash := getOrCreateFlash(e)
	if snap.Stings > flash.LastStings {
		flash.Tween = gween.New(1, 0, cfg.UI.FlashSeconds, ease.OutCubic)
	}
	flash.LastStings = snap.Stings
	if flash.Tween != nil {
		var done bool
		flash.Alpha, done = flash.Tween.Update(dt)
		if done {
			flash.Tween = nil
			flash.Alpha = 0
		}
	}

	bubble := getOrCreateBubble(e)
	if snap.DialogueVisible != bubble.Visible {
		bubble.Visible = snap.DialogueVisible
		target := float32(0)
		if bubble.Visible {
			target = 1
		}
		bubble.Tween = gween.New(bubble.Alpha, target, cfg.UI.BubbleFadeSecs, ease.Linear)
	}
	if bubble.Tween != nil {
		var done bool
		bubble.Alpha, done = bubble.Tween.Update(dt)
		if done {
			bubble.Tween = nil
		}
	}

	portrait := getOrCreatePortrait(e)
	var bobDone bool
	portrait.Offset, _, bobDone = portrait.Bob.Update(dt)
	if bobDone {
		portrait.Bob.Reset()
	}
}

// DrawFlash whitens the screen briefly after an attack sting.
func DrawFlash(e *ecs.ECS, screen *ebiten.Image) {
	flash := getOrCreateFlash(e)
	if flash.Alpha <= 0 {
		return
	}
	c := scaleAlpha(cfg.Colors.StingFlash, flash.Alpha*0.6)
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.FillRect(screen, 0, 0, float32(w), float32(h), c, false)
}

func getOrCreateHPBar(e *ecs.ECS, health int) *components.HPBarData {
	entry, ok := components.HPBar.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.HPBar))
		components.HPBar.SetValue(entry, components.HPBarData{
			Shown:  float32(health),
			Target: health,
		})
	}
	return components.HPBar.Get(entry)
}

func getOrCreateFlash(e *ecs.ECS) *components.FlashData {
	entry, ok := components.Flash.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Flash))
		if battle, ok := GetBattle(e); ok {
			components.Flash.Get(entry).LastStings = battle.Snapshot.Stings
		}
	}
	return components.Flash.Get(entry)
}

func getOrCreateBubble(e *ecs.ECS) *components.BubbleData {
	entry, ok := components.Bubble.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Bubble))
	}
	return components.Bubble.Get(entry)
}

func getOrCreatePortrait(e *ecs.ECS) *components.PortraitData {
	entry, ok := components.Portrait.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Portrait))
		// The portrait bobs with a looping sequence of tweens, up then back down.
		bob := gween.NewSequence()
		bob.Add(
			gween.New(0, -cfg.UI.PortraitBob, cfg.UI.PortraitBobSecs, ease.InOutSine),
			gween.New(-cfg.UI.PortraitBob, 0, cfg.UI.PortraitBobSecs, ease.InOutSine),
		)
		components.Portrait.SetValue(entry, components.PortraitData{Bob: bob})
	}
	return components.Portrait.Get(entry)
}
