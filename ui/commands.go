package ui

import (
	"github.com/automoto/supertale/shared/gamemath"
	"github.com/automoto/supertale/shared/simconfig"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"

	cfg "github.com/automoto/supertale/config"
)

const cursorMark = "> "

// CommandBar is the row of FIGHT/ACT/ITEM/MERCY buttons under the arena.
type CommandBar struct {
	UI *ebitenui.UI

	// OnSelect receives the chosen command's label.
	OnSelect func(label string)

	buttons  []*widget.Button
	commands []simconfig.Command
	selected int
	enabled  bool
	faces    faces
}

func NewCommandBar(region gamemath.Rect, onSelect func(label string)) *CommandBar {
	cb := &CommandBar{
		OnSelect: onSelect,
		commands: simconfig.Commands,
		enabled:  true,
		faces:    loadFaces(),
	}
	cb.buildUI(region)
	cb.refresh()
	return cb
}

func (cb *CommandBar) buildUI(region gamemath.Rect) {
	offset := widget.Insets{Left: int(region.X), Top: int(region.Y)}
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout(
			widget.AnchorLayoutOpts.Padding(&offset),
		)),
	)

	spacing := 10
	buttonW := (int(region.W) - spacing*(len(cb.commands)-1)) / len(cb.commands)
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(spacing),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	for _, c := range cb.commands {
		label := c.Label()
		btn := widget.NewButton(
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(buttonW, int(region.H))),
			widget.ButtonOpts.Image(&widget.ButtonImage{
				Idle:     image.NewNineSliceColor(cfg.Colors.ButtonIdle),
				Hover:    image.NewNineSliceColor(cfg.Colors.ButtonHover),
				Pressed:  image.NewNineSliceColor(cfg.Colors.ButtonHover),
				Disabled: image.NewNineSliceColor(cfg.Colors.ButtonIdle),
			}),
			widget.ButtonOpts.Text(label, &cb.faces.normal, &widget.ButtonTextColor{
				Idle:     cfg.Colors.ButtonText,
				Hover:    cfg.Colors.ButtonActive,
				Pressed:  cfg.Colors.ButtonActive,
				Disabled: cfg.Colors.Disabled,
			}),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				if cb.enabled && cb.OnSelect != nil {
					cb.OnSelect(label)
				}
			}),
		)
		cb.buttons = append(cb.buttons, btn)
		row.AddChild(btn)
	}

	rootContainer.AddChild(row)
	cb.UI = &ebitenui.UI{Container: rootContainer}
}

// SetEnabled greys the bar out when commands are not accepted.
func (cb *CommandBar) SetEnabled(enabled bool) {
	if cb.enabled == enabled {
		return
	}
	cb.enabled = enabled
	cb.refresh()
}

// SetSelected moves the keyboard cursor.
func (cb *CommandBar) SetSelected(i int) {
	if i < 0 || i >= len(cb.buttons) || i == cb.selected {
		return
	}
	cb.selected = i
	cb.refresh()
}

func (cb *CommandBar) refresh() {
	for i, btn := range cb.buttons {
		btn.GetWidget().Disabled = !cb.enabled
		if t := btn.Text(); t != nil {
			label := cb.commands[i].Label()
			if cb.enabled && i == cb.selected {
				label = cursorMark + label
			}
			t.Label = label
		}
	}
}

func (cb *CommandBar) Update() {
	cb.UI.Update()
}

func (cb *CommandBar) Draw(screen *ebiten.Image) {
	cb.UI.Draw(screen)
}
