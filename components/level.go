package components

import (
	"github.com/automoto/doomerang-walls/merge"
	"github.com/automoto/doomerang-walls/shared/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Levels map[string]*leveldata.Level
	Names  []string // sorted, the order used for selection ties

	// Spawned holds the merged walls of every level currently registered.
	Spawned map[merge.Region][]merge.Rect

	Selected string // empty until the player enters a level
}

// SelectedLevel returns the selected level, or nil.
func (l *LevelData) SelectedLevel() *leveldata.Level {
	if l.Selected == "" {
		return nil
	}
	return l.Levels[l.Selected]
}

func (l *LevelData) IsSpawned(region merge.Region) bool {
	_, ok := l.Spawned[region]
	return ok
}

var Level = donburi.NewComponentType[LevelData]()
