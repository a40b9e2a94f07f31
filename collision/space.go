// Package collision registers merged wall rectangles as static resolv
// objects outside of the ECS, for headless tools and servers.
package collision

import (
	"context"
	"fmt"
	"log"

	"github.com/automoto/doomerang-walls/merge"
	"github.com/automoto/doomerang-walls/shared/leveldata"
	"github.com/automoto/doomerang-walls/tags"
	"github.com/solarlune/resolv"
)

// LevelSpace holds a level's collision space and the rectangles it was built from.
type LevelSpace struct {
	Level *leveldata.Level
	Rects []merge.Rect
	Space *resolv.Space
}

// NewSolidObject creates a static wall object for rect in world pixels.
func NewSolidObject(level *leveldata.Level, rect merge.Rect) *resolv.Object {
	x, y, w, h := level.WorldRect(rect)
	obj := resolv.NewObject(x, y, w, h, tags.ResolvSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	return obj
}

// NewSlopeObject creates a ramp object for a single slope tile.
func NewSlopeObject(level *leveldata.Level, slope leveldata.SlopeTile) *resolv.Object {
	cell := merge.Rect{Left: slope.Coord.X, Right: slope.Coord.X, Bottom: slope.Coord.Y, Top: slope.Coord.Y}
	x, y, w, h := level.WorldRect(cell)
	obj := resolv.NewObject(x, y, w, h, tags.ResolvRamp, slope.SlopeType)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	return obj
}

// NewLevelSpace builds a resolv.Space holding one object per merged rect.
func NewLevelSpace(level *leveldata.Level, rects []merge.Rect, cellSize int) *LevelSpace {
	bounds := level.Bounds()
	space := resolv.NewSpace(bounds.Max.X, bounds.Max.Y, cellSize, cellSize)

	for _, r := range rects {
		space.Add(NewSolidObject(level, r))
	}
	for _, s := range level.Slopes {
		space.Add(NewSlopeObject(level, s))
	}

	log.Printf("Registered level %s: %d wall cells -> %d rects, %d slopes, %dx%d cells",
		level.Name, len(level.Walls), len(rects), len(level.Slopes), level.Width, level.Height)

	return &LevelSpace{
		Level: level,
		Rects: rects,
		Space: space,
	}
}

// BuildAll merges every level concurrently and registers the results.
func BuildAll(ctx context.Context, levels map[string]*leveldata.Level, cellSize int) (map[string]*LevelSpace, error) {
	occ, dims := leveldata.Occupancy(levels)
	merged, err := merge.MergeAll(ctx, dims, occ)
	if err != nil {
		return nil, fmt.Errorf("merge levels: %w", err)
	}

	spaces := make(map[string]*LevelSpace, len(levels))
	for name, level := range levels {
		spaces[name] = NewLevelSpace(level, merged[level.Region()], cellSize)
	}
	return spaces, nil
}
