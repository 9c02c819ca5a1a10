package systems

import (
	"github.com/automoto/supertale/components"
	cfg "github.com/automoto/supertale/config"
	"github.com/automoto/supertale/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateGameOver creates the game over menu system. onRestart starts a
// new session straight away; onTitle goes back to the title screen.
func NewUpdateGameOver(onRestart, onTitle func()) ecs.System {
	return func(e *ecs.ECS) {
		battle, ok := GetBattle(e)
		if !ok || battle.Snapshot.Phase != cfg.PhaseGameOver {
			return
		}
		gameOver := GetOrCreateGameOver(e)
		input := GetOrCreateInput(e)

		// Navigate menu with wrap-around using modulo arithmetic
		numOptions := int(components.GameOverTitle) + 1
		if GetAction(input, cfg.ActionMenuUp).JustPressed {
			gameOver.SelectedOption = components.GameOverOption(
				(int(gameOver.SelectedOption) - 1 + numOptions) % numOptions,
			)
			PlaySFX(e, cfg.SoundMenuNavigate)
		}
		if GetAction(input, cfg.ActionMenuDown).JustPressed {
			gameOver.SelectedOption = components.GameOverOption(
				(int(gameOver.SelectedOption) + 1) % numOptions,
			)
			PlaySFX(e, cfg.SoundMenuNavigate)
		}

		if GetAction(input, cfg.ActionConfirm).JustPressed {
			switch gameOver.SelectedOption {
			case components.GameOverRestart:
				onRestart()
			case components.GameOverTitle:
				onTitle()
			}
			gameOver.SelectedOption = components.GameOverRestart
		}
	}
}

// DrawGameOver renders the game over screen
func DrawGameOver(e *ecs.ECS, screen *ebiten.Image) {
	battle, ok := GetBattle(e)
	if !ok || battle.Snapshot.Phase != cfg.PhaseGameOver {
		return
	}
	gameOver := GetOrCreateGameOver(e)

	width := screen.Bounds().Dx()
	height := screen.Bounds().Dy()

	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.GameOver.BackgroundColor,
		false,
	)

	drawCentered(screen, cfg.GameOver.Title, fonts.Title.Get(), int(cfg.GameOver.TitleY), cfg.GameOver.TitleColor)

	menuFont := fonts.Body.Get()
	for i, option := range cfg.GameOver.MenuOptions {
		y := cfg.GameOver.MenuStartY + float64(i)*(cfg.GameOver.MenuItemHeight+cfg.GameOver.MenuItemGap)

		textColor := cfg.GameOver.TextColorNormal
		if components.GameOverOption(i) == gameOver.SelectedOption {
			textColor = cfg.GameOver.TextColorSelected
		}

		x := (width - textWidth(menuFont, option)) / 2
		text.Draw(screen, option, menuFont, x, int(y)+int(cfg.GameOver.MenuItemHeight), textColor)
	}
}

// GetOrCreateGameOver returns the singleton GameOver component, creating if needed
func GetOrCreateGameOver(e *ecs.ECS) *components.GameOverData {
	entry, ok := components.GameOver.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.GameOver))
		components.GameOver.SetValue(entry, components.GameOverData{
			SelectedOption: components.GameOverRestart,
		})
	}
	return components.GameOver.Get(entry)
}
