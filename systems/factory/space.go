package factory

import (
	"image"

	"github.com/automoto/doomerang-walls/archetypes"
	"github.com/automoto/doomerang-walls/components"
	"github.com/automoto/doomerang-walls/shared/leveldata"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

// WorldBounds returns the union of every level's world rectangle.
func WorldBounds(levels map[string]*leveldata.Level) image.Rectangle {
	var bounds image.Rectangle
	for _, level := range levels {
		bounds = bounds.Union(level.Bounds())
	}
	return bounds
}
