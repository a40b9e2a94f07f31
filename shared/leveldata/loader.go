package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/automoto/doomerang-walls/merge"
	"github.com/lafriks/go-tiled"
)

// LoadLevel parses a TMX file and returns its wall occupancy. It takes an
// fs.FS so callers can pass embed.FS or os.DirFS.
func LoadLevel(fsys fs.FS, tmxPath, wallLayer string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if wallLayer == "" {
		wallLayer = DefaultWallLayer
	}

	level := &Level{
		Name:       strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width:      levelMap.Width,
		Height:     levelMap.Height,
		TileWidth:  levelMap.TileWidth,
		TileHeight: levelMap.TileHeight,
		Walls:      make(map[merge.GridCoord]struct{}),
	}

	if props := levelMap.Properties; props != nil {
		level.OriginX = props.GetInt("worldX")
		level.OriginY = props.GetInt("worldY")
	}

	found := false
	for _, layer := range levelMap.Layers {
		if layer.Name != wallLayer {
			continue
		}
		found = true
		for row := 0; row < levelMap.Height; row++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[row*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}

				// TMX rows run top to bottom; grid rows run bottom to top.
				coord := merge.GridCoord{X: x, Y: levelMap.Height - 1 - row}

				var slopeType string
				if tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil {
					slopeType = tilesetTile.Properties.GetString("slope")
				}
				if slopeType != "" {
					level.Slopes = append(level.Slopes, SlopeTile{Coord: coord, SlopeType: slopeType})
					continue
				}

				level.Walls[coord] = struct{}{}
			}
		}
		break
	}
	if !found {
		return nil, fmt.Errorf("load TMX %s: no %q layer", tmxPath, wallLayer)
	}

	for _, og := range levelMap.ObjectGroups {
		if og.Name != "PlayerSpawn" {
			continue
		}
		for _, o := range og.Objects {
			level.SpawnPoints = append(level.SpawnPoints, SpawnPoint{
				X:     float64(level.OriginX) + o.X,
				Y:     float64(level.OriginY) + o.Y,
				Index: o.Properties.GetInt("spawnIndex"),
			})
		}
	}

	// Sort spawns left-to-right for consistent assignment
	sort.Slice(level.SpawnPoints, func(i, j int) bool {
		return level.SpawnPoints[i].X < level.SpawnPoints[j].X
	})

	return level, nil
}

// LoadAllLevels discovers all .tmx files in levelsDir within fsys, loads each,
// and returns a map keyed by stem name plus a sorted list of names.
func LoadAllLevels(fsys fs.FS, levelsDir, wallLayer string) (map[string]*Level, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*Level, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		level, err := LoadLevel(fsys, path, wallLayer)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		levels[level.Name] = level
		names = append(names, level.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}

// Occupancy adapts loaded levels into merger input.
func Occupancy(levels map[string]*Level) (merge.OccupancySet, map[merge.Region]merge.Dimensions) {
	occ := make(merge.OccupancySet, len(levels))
	dims := make(map[merge.Region]merge.Dimensions, len(levels))
	for _, level := range levels {
		region := level.Region()
		dims[region] = level.Dimensions()
		occ[region] = level.Walls
	}
	return occ, dims
}
