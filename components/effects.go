package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// HPBarData eases the drawn health toward the real value.
type HPBarData struct {
	Shown  float32
	Target int
	Tween  *gween.Tween
}

var HPBar = donburi.NewComponentType[HPBarData]()

// FlashData fades a full-screen flash after each attack sting.
type FlashData struct {
	LastStings int
	Alpha      float32
	Tween      *gween.Tween
}

var Flash = donburi.NewComponentType[FlashData]()

// BubbleData fades the speech bubble in and out with dialogue visibility.
type BubbleData struct {
	Visible bool
	Alpha   float32
	Tween   *gween.Tween
}

var Bubble = donburi.NewComponentType[BubbleData]()

// PortraitData bobs the enemy portrait up and down.
type PortraitData struct {
	Offset float32
	Bob    *gween.Sequence
}

var Portrait = donburi.NewComponentType[PortraitData]()
