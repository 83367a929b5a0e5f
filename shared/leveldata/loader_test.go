package leveldata

import (
	"testing"
	"testing/fstest"

	"github.com/automoto/arena-duel/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMustLoadArena(t *testing.T) {
	arena := MustLoadArena()

	assert.Equal(t, 1030.0, arena.Width)
	assert.Equal(t, 650.0, arena.Height)
	assert.Equal(t, 586.0, arena.GroundHeight)

	require.Len(t, arena.Platforms, 3)
	assert.Equal(t, gamemath.Rect{X: 150, Y: 486, W: 100, H: 10}, arena.Platforms[0])
	assert.Equal(t, gamemath.Rect{X: 400, Y: 436, W: 120, H: 10}, arena.Platforms[1])
	assert.Equal(t, gamemath.Rect{X: 600, Y: 386, W: 150, H: 10}, arena.Platforms[2])

	p1, ok := arena.Spawn(0)
	require.True(t, ok)
	assert.Equal(t, 50.0, p1.X)
	assert.Equal(t, 0.0, p1.Y)
	assert.Equal(t, "Player 1", p1.Name)
	assert.True(t, p1.FacingRight)

	p2, ok := arena.Spawn(1)
	require.True(t, ok)
	assert.Equal(t, 940.0, p2.X)
	assert.Equal(t, "Player 2", p2.Name)
	assert.False(t, p2.FacingRight)

	_, ok = arena.Spawn(2)
	assert.False(t, ok)
}

func TestArenaBounds(t *testing.T) {
	arena := MustLoadArena()
	assert.Equal(t, gamemath.Bounds{Width: 1030, GroundHeight: 586}, arena.Bounds())
}

func TestLoadArenaMissingGround(t *testing.T) {
	fsys := fstest.MapFS{
		"bad.tmx": {Data: []byte(`<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="10" height="10" tilewidth="10" tileheight="10" infinite="0">
 <objectgroup id="1" name="Platforms">
  <object id="1" x="10" y="50" width="20" height="5"/>
 </objectgroup>
</map>`)},
	}

	_, err := LoadArena(fsys, "bad.tmx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing Ground")
}

func TestLoadArenaMissingFile(t *testing.T) {
	_, err := LoadArena(fstest.MapFS{}, "nope.tmx")
	require.Error(t, err)
}
