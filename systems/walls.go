package systems

import (
	"fmt"
	"log"

	"github.com/automoto/doomerang-walls/components"
	"github.com/automoto/doomerang-walls/merge"
	"github.com/automoto/doomerang-walls/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

var regionQuery = donburi.NewQuery(filter.Contains(components.Region))

// SetupWallEvents subscribes wall generation to level load and unload.
func SetupWallEvents(e *ecs.ECS) {
	LevelLoaded.Subscribe(e.World, func(w donburi.World, ev LevelEvent) {
		if _, err := SpawnLevelWalls(e, ev.Region); err != nil {
			log.Printf("Warning: no walls for %s: %v", ev.Region, err)
		}
	})
	LevelUnloaded.Subscribe(e.World, func(w donburi.World, ev LevelEvent) {
		DespawnLevelWalls(e, ev.Region)
	})
}

// SpawnLevelWalls merges a region's wall tiles and registers one wall per
// rectangle. A region that already has walls is left alone.
func SpawnLevelWalls(e *ecs.ECS, region merge.Region) ([]merge.Rect, error) {
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return nil, fmt.Errorf("spawn walls %s: no level registry", region)
	}
	levelData := components.Level.Get(levelEntry)
	if rects, ok := levelData.Spawned[region]; ok {
		return rects, nil
	}

	level, ok := levelData.Levels[string(region)]
	if !ok {
		return nil, fmt.Errorf("spawn walls %s: unknown level", region)
	}

	rects, err := merge.MergeRegion(region, level.Width, level.Height, level.Walls)
	if err != nil {
		return nil, err
	}

	for _, r := range rects {
		factory.CreateWall(e, level, r)
	}
	for _, s := range level.Slopes {
		factory.CreateSlopeWall(e, level, s)
	}
	levelData.Spawned[region] = rects

	log.Printf("Spawned walls for %s: %d tiles merged into %d rects", region, len(level.Walls), len(rects))
	return rects, nil
}

// DespawnLevelWalls removes every wall and ramp of region from the world
// and the collision space.
func DespawnLevelWalls(e *ecs.ECS, region merge.Region) int {
	var doomed []*donburi.Entry
	regionQuery.Each(e.World, func(entry *donburi.Entry) {
		if components.Region.Get(entry).Rect.Region == region {
			doomed = append(doomed, entry)
		}
	})

	spaceEntry, hasSpace := components.Space.First(e.World)
	for _, entry := range doomed {
		if hasSpace && entry.HasComponent(components.Object) {
			components.Space.Get(spaceEntry).Remove(components.Object.Get(entry).Object)
		}
		e.World.Remove(entry.Entity())
	}

	if levelEntry, ok := components.Level.First(e.World); ok {
		delete(components.Level.Get(levelEntry).Spawned, region)
	}

	if len(doomed) > 0 {
		log.Printf("Despawned %d walls for %s", len(doomed), region)
	}
	return len(doomed)
}
