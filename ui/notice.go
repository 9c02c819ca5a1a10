package ui

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"

	cfg "github.com/automoto/supertale/config"
)

// ErrorNotice is shown when the battle scene hits an unexpected error. Retry
// resumes the same session; Reset starts over from the title.
type ErrorNotice struct {
	UI *ebitenui.UI

	OnRetry func()
	OnReset func()

	messageLabel *widget.Label
	faces        faces
}

func NewErrorNotice(message string, onRetry, onReset func()) *ErrorNotice {
	n := &ErrorNotice{
		OnRetry: onRetry,
		OnReset: onReset,
		faces:   loadFaces(),
	}
	n.buildUI(message)
	return n
}

func (n *ErrorNotice) buildUI(message string) {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 10, 10, 255})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	content := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)),
			widget.RowLayoutOpts.Spacing(10),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	content.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(cfg.UI.ErrorTitle, &n.faces.title, &widget.LabelColor{
			Idle: cfg.White,
		}),
	))
	n.messageLabel = widget.NewLabel(
		widget.LabelOpts.Text(message, &n.faces.small, &widget.LabelColor{
			Idle: color.RGBA{255, 200, 100, 255},
		}),
	)
	content.AddChild(n.messageLabel)

	buttons := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(10),
		)),
	)
	buttons.AddChild(n.button(cfg.UI.RetryLabel, func() {
		if n.OnRetry != nil {
			n.OnRetry()
		}
	}))
	buttons.AddChild(n.button(cfg.UI.ResetLabel, func() {
		if n.OnReset != nil {
			n.OnReset()
		}
	}))
	content.AddChild(buttons)

	rootContainer.AddChild(content)
	n.UI = &ebitenui.UI{Container: rootContainer}
}

func (n *ErrorNotice) button(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(90, 28)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(color.RGBA{60, 60, 80, 255}),
			Hover:   image.NewNineSliceColor(color.RGBA{80, 80, 100, 255}),
			Pressed: image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
		}),
		widget.ButtonOpts.Text(label, &n.faces.normal, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 200, 200, 255},
			Pressed: color.RGBA{200, 150, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func (n *ErrorNotice) SetMessage(msg string) {
	if n.messageLabel != nil {
		n.messageLabel.Label = msg
	}
}

func (n *ErrorNotice) Update() {
	n.UI.Update()
}

func (n *ErrorNotice) Draw(screen *ebiten.Image) {
	n.UI.Draw(screen)
}
