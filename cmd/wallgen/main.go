// Command wallgen merges the wall tiles of every TMX level in a directory
// and reports, or dumps as JSON, the resulting collision rectangles.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"time"

	"github.com/automoto/doomerang-walls/collision"
	cfg "github.com/automoto/doomerang-walls/config"
	"github.com/automoto/doomerang-walls/shared/leveldata"
)

func main() {
	assetsDir := flag.String("assets", "assets", "Directory containing the levels folder")
	levelsDir := flag.String("levels", cfg.Walls.LevelsDir, "Levels folder inside the assets directory")
	layer := flag.String("layer", cfg.Walls.WallLayer, "Tile layer holding solid walls")
	cellSize := flag.Int("cell", cfg.Walls.SpaceCellSize, "Collision space cell size in pixels")
	asJSON := flag.Bool("json", false, "Print merged walls as JSON to stdout")
	timeout := flag.Duration("timeout", 30*time.Second, "Give up after this long")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	levels, names, err := leveldata.LoadAllLevels(os.DirFS(*assetsDir), *levelsDir, *layer)
	if err != nil {
		log.Fatalf("Failed to load levels: %v", err)
	}

	spaces, err := collision.BuildAll(ctx, levels, *cellSize)
	if err != nil {
		log.Fatalf("Failed to build walls: %v", err)
	}

	report := Summarize(names, spaces)
	for _, lr := range report {
		log.Printf("%s: %d tiles -> %d walls (%.1fx), %d slopes",
			lr.Name, lr.Tiles, len(lr.Walls), lr.Ratio, lr.Slopes)
	}

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			log.Fatalf("Failed to write JSON: %v", err)
		}
	}
}
