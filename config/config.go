package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Render layers.
const (
	Default ecs.LayerID = iota
	Overlay
)

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// ColorConfig is the battle palette.
type ColorConfig struct {
	Background   color.RGBA
	ArenaBorder  color.RGBA
	ArenaFill    color.RGBA
	Player       color.RGBA
	PlayerHit    color.RGBA
	Portrait     color.RGBA
	PortraitEye  color.RGBA
	BubbleFill   color.RGBA
	BubbleText   color.RGBA
	HPBack       color.RGBA
	HPFill       color.RGBA
	HPDrain      color.RGBA
	HUDText      color.RGBA
	ButtonIdle   color.RGBA
	ButtonHover  color.RGBA
	ButtonText   color.RGBA
	ButtonActive color.RGBA
	Disabled     color.RGBA
	StingFlash   color.RGBA
}

// UIConfig contains UI text and timing values
type UIConfig struct {
	BorderWidth     float32
	BlinkHz         float64 // player blink rate while invincible
	HPTweenSeconds  float32
	FlashSeconds    float32
	BubbleFadeSecs  float32
	PortraitBob     float32 // pixels
	PortraitBobSecs float32
	BubblePadding   int
	LineHeight      int

	TitleText        string
	TitlePrompt      string
	SelectPrompt     string
	EndingHint       string
	ErrorTitle       string
	RetryLabel       string
	ResetLabel       string
	EnemyName        string
	ShowHitboxesHint string
}

// GameOverConfig contains game over screen configuration values
type GameOverConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	Title             string
	TitleY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

// EndingConfig contains ending screen layout values
type EndingConfig struct {
	BackgroundColor color.RGBA
	TitleColor      color.RGBA
	TextColor       color.RGBA
	HintColor       color.RGBA
	TitleY          float64
	TextY           float64
	HintY           float64
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipTitle    bool // start the battle without the title screen
	ShowHitboxes bool
}

// Global configuration instances
var C *Config
var Colors ColorConfig
var UI UIConfig
var GameOver GameOverConfig
var Ending EndingConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	BrightGreen  = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	Gray         = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	DarkGray     = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 480,
		Title:  "SUPER TALE",
	}

	Colors = ColorConfig{
		Background:   Black,
		ArenaBorder:  White,
		ArenaFill:    Black,
		Player:       Red,
		PlayerHit:    LightRed,
		Portrait:     color.RGBA{R: 0x4c, G: 0xaf, B: 0x50, A: 0xff},
		PortraitEye:  White,
		BubbleFill:   White,
		BubbleText:   Black,
		HPBack:       color.RGBA{R: 0xc0, G: 0x10, B: 0x10, A: 0xff},
		HPFill:       Yellow,
		HPDrain:      BrightOrange,
		HUDText:      White,
		ButtonIdle:   color.RGBA{R: 0x10, G: 0x10, B: 0x10, A: 0xff},
		ButtonHover:  color.RGBA{R: 0x30, G: 0x20, B: 0x00, A: 0xff},
		ButtonText:   color.RGBA{R: 0xff, G: 0x8c, B: 0x00, A: 0xff},
		ButtonActive: Yellow,
		Disabled:     Gray,
		StingFlash:   White,
	}

	UI = UIConfig{
		BorderWidth:     3,
		BlinkHz:         10,
		HPTweenSeconds:  0.3,
		FlashSeconds:    0.4,
		BubbleFadeSecs:  0.15,
		PortraitBob:     3,
		PortraitBobSecs: 0.6,
		BubblePadding:   8,
		LineHeight:      16,

		TitleText:        "SUPER TALE",
		TitlePrompt:      "Press ENTER to begin",
		SelectPrompt:     "SELECT A COMMAND...",
		EndingHint:       "Press ENTER to return to the title",
		ErrorTitle:       "Something went wrong",
		RetryLabel:       "Retry",
		ResetLabel:       "Reset",
		EnemyName:        "PEPE",
		ShowHitboxesHint: "F1: hitboxes",
	}

	GameOver = GameOverConfig{
		BackgroundColor:   Black,
		TitleColor:        Red,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		Title:             "GAME OVER",
		TitleY:            180,
		MenuStartY:        240,
		MenuItemHeight:    30,
		MenuItemGap:       15,
		MenuOptions:       []string{"RESTART", "TITLE"},
	}

	Ending = EndingConfig{
		BackgroundColor: Black,
		TitleColor:      Yellow,
		TextColor:       White,
		HintColor:       Gray,
		TitleY:          180,
		TextY:           230,
		HintY:           400,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{}
}
