package scenes

import (
	"image/color"

	"github.com/automoto/supertale/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

// ErrorScene reports a failure in the battle scene and lets the player
// resume or start over.
type ErrorScene struct {
	sceneChanger SceneChanger
	battle       *Battle
	notice       *ui.ErrorNotice
}

func NewErrorScene(sc SceneChanger, b *Battle, message string) *ErrorScene {
	es := &ErrorScene{sceneChanger: sc, battle: b}
	es.notice = ui.NewErrorNotice(message, es.retry, es.reset)
	return es
}

func (es *ErrorScene) retry() {
	es.sceneChanger.ChangeScene(NewBattleScene(es.sceneChanger, es.battle))
}

func (es *ErrorScene) reset() {
	es.battle.Engine.Reset()
	es.sceneChanger.ChangeScene(NewTitleScene(es.sceneChanger, es.battle))
}

func (es *ErrorScene) Update() {
	es.notice.Update()
}

func (es *ErrorScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	es.notice.Draw(screen)
}
