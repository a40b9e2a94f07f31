package leveldata

import (
	"image"
	"os"
	"testing"

	"github.com/automoto/doomerang-walls/merge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadLevel(t *testing.T) {
	fsys := os.DirFS("testdata")

	level, err := LoadLevel(fsys, "levels/level_0.tmx", "")
	require.NoError(t, err)

	assert.Equal(t, "level_0", level.Name)
	assert.Equal(t, merge.Region("level_0"), level.Region())
	assert.Equal(t, 4, level.Width)
	assert.Equal(t, 3, level.Height)
	assert.Equal(t, 16, level.TileWidth)
	assert.Equal(t, 16, level.TileHeight)

	t.Run("walls are flipped to bottom-up rows", func(t *testing.T) {
		want := map[merge.GridCoord]struct{}{
			{X: 0, Y: 0}: {}, {X: 1, Y: 0}: {}, {X: 2, Y: 0}: {}, {X: 3, Y: 0}: {},
			{X: 0, Y: 1}: {}, {X: 3, Y: 1}: {},
		}
		assert.Equal(t, want, level.Walls)
	})

	t.Run("slope tiles are kept apart", func(t *testing.T) {
		require.Len(t, level.Slopes, 1)
		assert.Equal(t, merge.GridCoord{X: 3, Y: 2}, level.Slopes[0].Coord)
		assert.Equal(t, "45_up_right", level.Slopes[0].SlopeType)
	})

	t.Run("spawn points", func(t *testing.T) {
		require.Len(t, level.SpawnPoints, 1)
		assert.Equal(t, SpawnPoint{X: 24, Y: 8, Index: 0}, level.SpawnPoints[0])
	})
}

func TestLoadLevel_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadLevel(os.DirFS("testdata"), "levels/nope.tmx", "")
		assert.Error(t, err)
	})

	t.Run("missing wall layer", func(t *testing.T) {
		_, err := LoadLevel(os.DirFS("testdata"), "nolayer/broken.tmx", "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), DefaultWallLayer)
	})

	t.Run("custom wall layer", func(t *testing.T) {
		level, err := LoadLevel(os.DirFS("testdata"), "nolayer/broken.tmx", "decoration")
		require.NoError(t, err)
		assert.Len(t, level.Walls, 2)
	})
}

func TestLoadAllLevels(t *testing.T) {
	levels, names, err := LoadAllLevels(os.DirFS("testdata"), "levels", DefaultWallLayer)
	require.NoError(t, err)

	assert.Equal(t, []string{"level_0", "level_1"}, names)
	require.Contains(t, levels, "level_1")

	second := levels["level_1"]
	assert.Equal(t, 64, second.OriginX)
	assert.Equal(t, 16, second.OriginY)
	assert.Equal(t, image.Rect(64, 16, 112, 48), second.Bounds())
	assert.Len(t, second.Walls, 6)

	_, _, err = LoadAllLevels(os.DirFS("testdata"), "empty", DefaultWallLayer)
	assert.Error(t, err)
}

func TestOccupancy(t *testing.T) {
	levels, _, err := LoadAllLevels(os.DirFS("testdata"), "levels", DefaultWallLayer)
	require.NoError(t, err)

	occ, dims := Occupancy(levels)
	assert.Equal(t, []merge.Region{"level_0", "level_1"}, occ.Regions())
	assert.Equal(t, merge.Dimensions{Width: 3, Height: 2}, dims["level_1"])
	assert.Len(t, occ.Cells("level_0"), 6)
}

func TestLevel_Geometry(t *testing.T) {
	level := &Level{Name: "l", Width: 4, Height: 3, TileWidth: 16, TileHeight: 16, OriginX: 100, OriginY: 50}

	t.Run("world rect of bottom row", func(t *testing.T) {
		x, y, w, h := level.WorldRect(merge.Rect{Left: 0, Right: 3, Bottom: 0, Top: 0})
		assert.Equal(t, 100.0, x)
		assert.Equal(t, 82.0, y)
		assert.Equal(t, 64.0, w)
		assert.Equal(t, 16.0, h)
	})

	t.Run("world rect of a tall column", func(t *testing.T) {
		x, y, w, h := level.WorldRect(merge.Rect{Left: 1, Right: 1, Bottom: 1, Top: 2})
		assert.Equal(t, 116.0, x)
		assert.Equal(t, 50.0, y)
		assert.Equal(t, 16.0, w)
		assert.Equal(t, 32.0, h)
	})

	t.Run("contains and cell lookup", func(t *testing.T) {
		assert.True(t, level.Contains(100, 50))
		assert.False(t, level.Contains(164, 50))
		assert.False(t, level.Contains(99.9, 60))

		cell, ok := level.CellAt(140, 90)
		require.True(t, ok)
		assert.Equal(t, merge.GridCoord{X: 2, Y: 0}, cell)

		_, ok = level.CellAt(0, 0)
		assert.False(t, ok)
	})
}
