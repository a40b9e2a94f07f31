package merge

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeAll(t *testing.T) {
	t.Run("regions with identical coordinates stay independent", func(t *testing.T) {
		occ := OccupancySet{}
		for _, region := range []Region{"a", "b"} {
			occ.Add(region, GridCoord{X: 0, Y: 0})
			occ.Add(region, GridCoord{X: 1, Y: 0})
		}
		occ.Add("b", GridCoord{X: 0, Y: 1})

		dims := map[Region]Dimensions{
			"a": {Width: 2, Height: 2},
			"b": {Width: 2, Height: 2},
		}

		out, err := MergeAll(context.Background(), dims, occ)
		require.NoError(t, err)

		assert.Equal(t, []Rect{{Region: "a", Left: 0, Right: 1, Bottom: 0, Top: 0}}, out["a"])
		assert.Equal(t, []Rect{
			{Region: "b", Left: 0, Right: 1, Bottom: 0, Top: 0},
			{Region: "b", Left: 0, Right: 0, Bottom: 1, Top: 1},
		}, out["b"])
	})

	t.Run("one bad region fails the batch", func(t *testing.T) {
		occ := OccupancySet{}
		occ.Add("ok", GridCoord{X: 0, Y: 0})
		occ.Add("bad", GridCoord{X: 5, Y: 0})

		dims := map[Region]Dimensions{
			"ok":  {Width: 1, Height: 1},
			"bad": {Width: 1, Height: 1},
		}

		out, err := MergeAll(context.Background(), dims, occ)
		assert.ErrorIs(t, err, ErrInvalidCoordinate)
		assert.Nil(t, out)
	})

	t.Run("missing dimensions", func(t *testing.T) {
		occ := OccupancySet{}
		occ.Add("a", GridCoord{})

		_, err := MergeAll(context.Background(), nil, occ)
		assert.Error(t, err)
	})
}

func TestOccupancySet_Regions(t *testing.T) {
	occ := OccupancySet{}
	occ.Add("z", GridCoord{})
	occ.Add("a", GridCoord{})
	occ.Add("m", GridCoord{})

	assert.Equal(t, []Region{"a", "m", "z"}, occ.Regions())
	assert.Nil(t, occ.Cells("missing"))
	assert.Len(t, occ.Cells("a"), 1)
}
