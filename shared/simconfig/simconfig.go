// Package simconfig defines the tunables, enums and authored script for the
// battle simulation. It must have zero dependencies on ebiten or any graphics
// library so the headless runner stays headless.
package simconfig

import (
	"image/color"
	"time"
)

// Tunables holds every fixed constant of the battle simulation. Values are
// copied into the engine when a session starts.
type Tunables struct {
	ArenaWidth  float64
	ArenaHeight float64

	PlayerSize  float64
	PlayerSpeed float64 // units per second

	MaxHealth          int
	DamageAmount       int
	InvincibilityTime  time.Duration
	FrameSanityLimit   time.Duration
	CullMargin         float64
	BattleDurationSecs int

	SpawnInterval time.Duration

	BoneSpeed            float64
	VerticalBoneWidth    float64
	VerticalBoneHeight   float64
	HorizontalBoneWidth  float64
	HorizontalBoneHeight float64

	GasterChance   float64
	GasterWarnTime time.Duration
	GasterBeamTime time.Duration
	GasterWidth    float64

	LiftWidth  float64
	LiftHeight float64
	LiftSpeed  float64

	LogoWidth        float64
	LogoHeight       float64
	LogoSpeed        float64
	LogoMinAxisRatio float64
	LogoPalette      []color.RGBA

	TypewriterInterval time.Duration
	LinePause          time.Duration
	StingDelay         time.Duration
}

// Default returns the tunables used by the shipped game.
func Default() Tunables {
	return Tunables{
		ArenaWidth:  200,
		ArenaHeight: 150,

		PlayerSize:  20,
		PlayerSpeed: 150,

		MaxHealth:          100,
		DamageAmount:       5,
		InvincibilityTime:  600 * time.Millisecond,
		FrameSanityLimit:   100 * time.Millisecond,
		CullMargin:         50,
		BattleDurationSecs: 60,

		SpawnInterval: 300 * time.Millisecond,

		BoneSpeed:            4 * 60,
		VerticalBoneWidth:    10,
		VerticalBoneHeight:   60,
		HorizontalBoneWidth:  60,
		HorizontalBoneHeight: 10,

		GasterChance:   0.6,
		GasterWarnTime: 800 * time.Millisecond,
		GasterBeamTime: 250 * time.Millisecond,
		GasterWidth:    30,

		LiftWidth:  100,
		LiftHeight: 10,
		LiftSpeed:  3 * 60,

		LogoWidth:        36,
		LogoHeight:       18,
		LogoSpeed:        90,
		LogoMinAxisRatio: 0.25,
		LogoPalette: []color.RGBA{
			{R: 0xff, G: 0x4d, B: 0x4d, A: 0xff},
			{R: 0x4d, G: 0xff, B: 0x88, A: 0xff},
			{R: 0x4d, G: 0x9c, B: 0xff, A: 0xff},
			{R: 0xff, G: 0xe1, B: 0x4d, A: 0xff},
			{R: 0xd0, G: 0x4d, B: 0xff, A: 0xff},
		},

		TypewriterInterval: 50 * time.Millisecond,
		LinePause:          700 * time.Millisecond,
		StingDelay:         600 * time.Millisecond,
	}
}

// PlayerStart returns the top-left corner that centres the player in the arena.
func (t Tunables) PlayerStart() (x, y float64) {
	return t.ArenaWidth/2 - t.PlayerSize/2, t.ArenaHeight/2 - t.PlayerSize/2
}
