package assets

import (
	"embed"

	"github.com/automoto/supertale/shared/layout"
)

//go:embed all:layout
var layoutFS embed.FS

// BattleLayoutPath is the embedded screen layout of the battle scene.
const BattleLayoutPath = "layout/battle.tmx"

// LoadLayout parses the embedded battle layout and checks that every region
// the battle scene draws into is present.
func LoadLayout() (*layout.Layout, error) {
	l, err := layout.Load(layoutFS, BattleLayoutPath)
	if err != nil {
		return nil, err
	}
	if err := l.Require(
		layout.RegionArena,
		layout.RegionPortrait,
		layout.RegionDialogue,
		layout.RegionHUD,
		layout.RegionCommands,
	); err != nil {
		return nil, err
	}
	return l, nil
}

func MustLoadLayout() *layout.Layout {
	l, err := LoadLayout()
	if err != nil {
		panic(err)
	}
	return l
}
