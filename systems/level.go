package systems

import (
	"github.com/automoto/doomerang-walls/components"
	cfg "github.com/automoto/doomerang-walls/config"
	"github.com/automoto/doomerang-walls/merge"
	"github.com/automoto/doomerang-walls/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateLevelSelection selects the level under the player. A new selection
// loads that level (and its neighbours when configured) and unloads the rest.
func UpdateLevelSelection(e *ecs.ECS) {
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	x, y := components.Object.Get(playerEntry).Center()

	name := LevelAt(levelData, x, y)
	if name == "" || name == levelData.Selected {
		return
	}
	levelData.Selected = name

	keep := map[string]bool{name: true}
	if cfg.Walls.LoadNeighbors {
		for _, n := range Neighbors(levelData, name) {
			keep[n] = true
		}
	}

	for _, n := range levelData.Names {
		region := merge.Region(n)
		switch {
		case keep[n] && !levelData.IsSpawned(region):
			LevelLoaded.Publish(e.World, LevelEvent{Region: region})
		case !keep[n] && levelData.IsSpawned(region):
			LevelUnloaded.Publish(e.World, LevelEvent{Region: region})
		}
	}

	ShowBanner(e, name)
	_ = SaveSelection(name)
}

// LevelAt returns the first level, in name order, whose bounds contain the
// world point, or "" if none do.
func LevelAt(levelData *components.LevelData, x, y float64) string {
	for _, n := range levelData.Names {
		if levelData.Levels[n].Contains(x, y) {
			return n
		}
	}
	return ""
}

// Neighbors lists the levels whose bounds touch or overlap name's bounds.
func Neighbors(levelData *components.LevelData, name string) []string {
	level, ok := levelData.Levels[name]
	if !ok {
		return nil
	}
	grown := level.Bounds().Inset(-1)

	var out []string
	for _, n := range levelData.Names {
		if n == name {
			continue
		}
		if grown.Overlaps(levelData.Levels[n].Bounds()) {
			out = append(out, n)
		}
	}
	return out
}
