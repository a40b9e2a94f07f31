package main

import (
	"context"
	"os"
	"testing"

	"github.com/automoto/doomerang-walls/collision"
	"github.com/automoto/doomerang-walls/shared/leveldata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	levels, names, err := leveldata.LoadAllLevels(os.DirFS("../../shared/leveldata/testdata"), "levels", leveldata.DefaultWallLayer)
	require.NoError(t, err)
	spaces, err := collision.BuildAll(context.Background(), levels, 16)
	require.NoError(t, err)

	report := Summarize(append(names, "missing"), spaces)
	require.Len(t, report, 2)

	first := report[0]
	assert.Equal(t, "level_0", first.Name)
	assert.Equal(t, 6, first.Tiles)
	assert.Equal(t, 1, first.Slopes)
	assert.Equal(t, 2.0, first.Ratio)
	require.Len(t, first.Walls, 3)
	assert.Equal(t, WallJSON{Left: 0, Right: 3, Bottom: 0, Top: 0, X: 0, Y: 32, W: 64, H: 16}, first.Walls[0])

	second := report[1]
	assert.Equal(t, 6.0, second.Ratio)
	assert.Equal(t, WallJSON{Left: 0, Right: 2, Bottom: 0, Top: 1, X: 64, Y: 16, W: 48, H: 32}, second.Walls[0])
}
