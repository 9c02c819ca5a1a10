// Package layout loads the screen layout of the battle scene from a Tiled map.
// Each object in the "Layout" object group is a named screen region. It has no
// dependencies on ebitengine so the headless tools can read it too.
package layout

import (
	"errors"
	"fmt"
	"io/fs"
	"sort"

	"github.com/automoto/supertale/shared/gamemath"
	"github.com/lafriks/go-tiled"
)

const groupName = "Layout"

// Region names used by the battle scene.
const (
	RegionArena    = "arena"
	RegionPortrait = "portrait"
	RegionDialogue = "dialogue"
	RegionHUD      = "hud"
	RegionCommands = "commands"
)

var ErrMissingRegion = errors.New("layout region missing")

// Layout is the set of named regions in screen pixels.
type Layout struct {
	Width   int
	Height  int
	Regions map[string]gamemath.Rect
}

// Region returns the named region.
func (l *Layout) Region(name string) (gamemath.Rect, bool) {
	r, ok := l.Regions[name]
	return r, ok
}

// Names returns the region names in sorted order.
func (l *Layout) Names() []string {
	names := make([]string, 0, len(l.Regions))
	for n := range l.Regions {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Require checks that every named region exists.
func (l *Layout) Require(names ...string) error {
	for _, n := range names {
		if _, ok := l.Regions[n]; !ok {
			return fmt.Errorf("%w: %q", ErrMissingRegion, n)
		}
	}
	return nil
}

// Load parses a TMX file and returns its layout regions. It takes an fs.FS so
// callers can pass embed.FS or os.DirFS.
func Load(fsys fs.FS, tmxPath string) (*Layout, error) {
	m, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	l := &Layout{
		Width:   m.Width * m.TileWidth,
		Height:  m.Height * m.TileHeight,
		Regions: make(map[string]gamemath.Rect),
	}
	for _, og := range m.ObjectGroups {
		if og.Name != groupName {
			continue
		}
		for _, o := range og.Objects {
			if o.Name == "" {
				continue
			}
			if _, dup := l.Regions[o.Name]; dup {
				return nil, fmt.Errorf("load TMX %s: duplicate region %q", tmxPath, o.Name)
			}
			l.Regions[o.Name] = gamemath.Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height}
		}
	}
	return l, nil
}
