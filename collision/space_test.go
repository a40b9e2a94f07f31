package collision

import (
	"context"
	"os"
	"testing"

	"github.com/automoto/doomerang-walls/merge"
	"github.com/automoto/doomerang-walls/shared/leveldata"
	"github.com/automoto/doomerang-walls/tags"
	"github.com/solarlune/resolv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLevelSpace(t *testing.T) {
	level := &leveldata.Level{
		Name: "l", Width: 4, Height: 2, TileWidth: 16, TileHeight: 16,
		OriginX: 32,
		Slopes:  []leveldata.SlopeTile{{Coord: merge.GridCoord{X: 3, Y: 1}, SlopeType: tags.Slope45UpLeft}},
	}
	rects := []merge.Rect{
		{Left: 0, Right: 3, Bottom: 0, Top: 0},
		{Left: 0, Right: 0, Bottom: 1, Top: 1},
	}

	ls := NewLevelSpace(level, rects, 16)
	objs := ls.Space.Objects()
	require.Len(t, objs, 3)

	// Space.Objects walks cells, so look objects up by shape rather than order.
	var floor, ramp *resolv.Object
	for _, o := range objs {
		switch {
		case o.HasTags(tags.ResolvRamp):
			ramp = o
		case o.W == 64:
			floor = o
		}
	}

	require.NotNil(t, floor)
	assert.True(t, floor.HasTags(tags.ResolvSolid))
	assert.Equal(t, 32.0, floor.X)
	assert.Equal(t, 16.0, floor.Y)
	assert.Equal(t, 16.0, floor.H)

	require.NotNil(t, ramp)
	assert.True(t, ramp.HasTags(tags.Slope45UpLeft))
	assert.Equal(t, 80.0, ramp.X)
	assert.Equal(t, 0.0, ramp.Y)
}

func TestBuildAll(t *testing.T) {
	levels, _, err := leveldata.LoadAllLevels(os.DirFS("../shared/leveldata/testdata"), "levels", leveldata.DefaultWallLayer)
	require.NoError(t, err)

	spaces, err := BuildAll(context.Background(), levels, 16)
	require.NoError(t, err)
	require.Len(t, spaces, 2)

	first := spaces["level_0"]
	assert.Equal(t, []merge.Rect{
		{Region: "level_0", Left: 0, Right: 3, Bottom: 0, Top: 0},
		{Region: "level_0", Left: 0, Right: 0, Bottom: 1, Top: 1},
		{Region: "level_0", Left: 3, Right: 3, Bottom: 1, Top: 1},
	}, first.Rects)
	// Three walls plus the ramp.
	assert.Len(t, first.Space.Objects(), 4)

	second := spaces["level_1"]
	require.Len(t, second.Rects, 1)
	x, y, w, h := second.Level.WorldRect(second.Rects[0])
	assert.Equal(t, []float64{64, 16, 48, 32}, []float64{x, y, w, h})
}

func TestBuildAll_InvalidLevel(t *testing.T) {
	levels := map[string]*leveldata.Level{
		"bad": {
			Name: "bad", Width: 1, Height: 1, TileWidth: 16, TileHeight: 16,
			Walls: map[merge.GridCoord]struct{}{{X: 2, Y: 0}: {}},
		},
	}

	_, err := BuildAll(context.Background(), levels, 16)
	assert.ErrorIs(t, err, merge.ErrInvalidCoordinate)
}
