package layout

import (
	"testing"
	"testing/fstest"

	"github.com/automoto/supertale/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" tiledversion="1.10.2" orientation="orthogonal" renderorder="right-down" width="40" height="30" tilewidth="16" tileheight="16" infinite="0" nextlayerid="3" nextobjectid="4">
 <objectgroup id="1" name="Layout">
  <object id="1" name="arena" x="220" y="240" width="200" height="150"/>
  <object id="2" name="hud" x="220" y="400" width="200" height="20"/>
 </objectgroup>
 <objectgroup id="2" name="Notes">
  <object id="3" name="ignored" x="0" y="0" width="1" height="1"/>
 </objectgroup>
</map>
`

func TestLoad(t *testing.T) {
	fsys := fstest.MapFS{"layout/battle.tmx": {Data: []byte(testTMX)}}

	l, err := Load(fsys, "layout/battle.tmx")
	require.NoError(t, err)

	assert.Equal(t, 640, l.Width)
	assert.Equal(t, 480, l.Height)
	assert.Equal(t, []string{"arena", "hud"}, l.Names())

	arena, ok := l.Region(RegionArena)
	require.True(t, ok)
	assert.Equal(t, gamemath.Rect{X: 220, Y: 240, W: 200, H: 150}, arena)

	_, ok = l.Region("ignored")
	assert.False(t, ok)

	assert.NoError(t, l.Require(RegionArena, RegionHUD))
	assert.ErrorIs(t, l.Require(RegionArena, RegionCommands), ErrMissingRegion)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(fstest.MapFS{}, "nope.tmx")
	assert.Error(t, err)
}
