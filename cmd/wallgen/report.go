package main

import (
	"github.com/automoto/doomerang-walls/collision"
)

// WallJSON is one merged wall in grid cells and world pixels.
type WallJSON struct {
	Left   int     `json:"left"`
	Right  int     `json:"right"`
	Bottom int     `json:"bottom"`
	Top    int     `json:"top"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	W      float64 `json:"w"`
	H      float64 `json:"h"`
}

// LevelReport summarises the walls generated for one level.
type LevelReport struct {
	Name   string     `json:"name"`
	Tiles  int        `json:"tiles"`
	Slopes int        `json:"slopes"`
	Ratio  float64    `json:"ratio"`
	Walls  []WallJSON `json:"walls"`
}

// Summarize builds per-level reports in names order.
func Summarize(names []string, spaces map[string]*collision.LevelSpace) []LevelReport {
	reports := make([]LevelReport, 0, len(names))
	for _, name := range names {
		ls, ok := spaces[name]
		if !ok {
			continue
		}
		lr := LevelReport{
			Name:   name,
			Tiles:  len(ls.Level.Walls),
			Slopes: len(ls.Level.Slopes),
			Walls:  make([]WallJSON, 0, len(ls.Rects)),
		}
		if len(ls.Rects) > 0 {
			lr.Ratio = float64(lr.Tiles) / float64(len(ls.Rects))
		}
		for _, r := range ls.Rects {
			x, y, w, h := ls.Level.WorldRect(r)
			lr.Walls = append(lr.Walls, WallJSON{
				Left: r.Left, Right: r.Right, Bottom: r.Bottom, Top: r.Top,
				X: x, Y: y, W: w, H: h,
			})
		}
		reports = append(reports, lr)
	}
	return reports
}
