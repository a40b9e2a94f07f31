package systems

import (
	"github.com/automoto/doomerang-walls/components"
	"github.com/automoto/doomerang-walls/shared/leveldata"
)

// StartSpawn picks where the player starts: the first spawn of the
// preferred level if it has one, otherwise the first spawn in name order.
func StartSpawn(levelData *components.LevelData, preferred string) (leveldata.SpawnPoint, bool) {
	if level, ok := levelData.Levels[preferred]; ok && len(level.SpawnPoints) > 0 {
		return level.SpawnPoints[0], true
	}
	for _, name := range levelData.Names {
		if spawns := levelData.Levels[name].SpawnPoints; len(spawns) > 0 {
			return spawns[0], true
		}
	}
	return leveldata.SpawnPoint{}, false
}
