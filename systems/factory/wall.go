package factory

import (
	"github.com/automoto/doomerang-walls/archetypes"
	"github.com/automoto/doomerang-walls/collision"
	"github.com/automoto/doomerang-walls/components"
	"github.com/automoto/doomerang-walls/merge"
	"github.com/automoto/doomerang-walls/shared/leveldata"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateWall spawns one static wall for a merged rect of level.
func CreateWall(ecs *ecs.ECS, level *leveldata.Level, rect merge.Rect) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)
	register(ecs, wall, collision.NewSolidObject(level, rect), rect)
	return wall
}

// CreateSlopeWall spawns a ramp tile. Ramps are never merged.
func CreateSlopeWall(ecs *ecs.ECS, level *leveldata.Level, slope leveldata.SlopeTile) *donburi.Entry {
	wall := archetypes.Slope.Spawn(ecs)
	cell := merge.Rect{
		Region: level.Region(),
		Left:   slope.Coord.X,
		Right:  slope.Coord.X,
		Bottom: slope.Coord.Y,
		Top:    slope.Coord.Y,
	}
	register(ecs, wall, collision.NewSlopeObject(level, slope), cell)
	return wall
}

func register(ecs *ecs.ECS, wall *donburi.Entry, obj *resolv.Object, rect merge.Rect) {
	obj.Data = wall // Link for O(1) lookup

	components.Object.SetValue(wall, components.ObjectData{Object: obj})
	components.Region.SetValue(wall, components.RegionData{Rect: rect})

	// Add to space if it exists
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}
