package factory

import (
	"github.com/automoto/doomerang-walls/archetypes"
	"github.com/automoto/doomerang-walls/components"
	cfg "github.com/automoto/doomerang-walls/config"
	"github.com/automoto/doomerang-walls/merge"
	"github.com/automoto/doomerang-walls/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel creates the level registry. No walls exist until a level is
// selected and its LevelLoaded event is processed.
func CreateLevel(ecs *ecs.ECS, levels map[string]*leveldata.Level, names []string) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)

	components.Level.Set(level, &components.LevelData{
		Levels:  levels,
		Names:   names,
		Spawned: make(map[merge.Region][]merge.Rect),
	})
	components.Settings.Set(level, &components.SettingsData{
		ShowInspector: cfg.Debug.ShowInspector,
		ShowPlates:    cfg.Debug.ShowPlates,
	})

	return level
}
