package assets

import (
	"embed"
	"fmt"

	cfg "github.com/automoto/doomerang-walls/config"
	"github.com/automoto/doomerang-walls/shared/leveldata"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

// LoadLevels parses every embedded level.
func LoadLevels() (map[string]*leveldata.Level, []string, error) {
	levels, names, err := leveldata.LoadAllLevels(assetFS, cfg.Walls.LevelsDir, cfg.Walls.WallLayer)
	if err != nil {
		return nil, nil, fmt.Errorf("load embedded levels: %w", err)
	}
	return levels, names, nil
}

func MustLoadLevels() (map[string]*leveldata.Level, []string) {
	levels, names, err := LoadLevels()
	if err != nil {
		panic(err)
	}
	return levels, names
}
