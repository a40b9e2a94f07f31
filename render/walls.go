// Package render draws the merged walls and viewer overlays with ebiten.
package render

import (
	"image/color"

	"github.com/automoto/doomerang-walls/components"
	cfg "github.com/automoto/doomerang-walls/config"
	"github.com/automoto/doomerang-walls/merge"
	"github.com/automoto/doomerang-walls/shared/leveldata"
	"github.com/automoto/doomerang-walls/systems"
	"github.com/automoto/doomerang-walls/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// view converts world coordinates to screen coordinates.
type view struct {
	offX, offY float64
	w, h       float64
	minX, minY float64
}

func newView(e *ecs.ECS, screen *ebiten.Image) (view, bool) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return view{}, false // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	return view{
		offX: width/2 - camera.Position.X,
		offY: height/2 - camera.Position.Y,
		w:    width,
		h:    height,
		minX: camera.Position.X - width/2,
		minY: camera.Position.Y - height/2,
	}, true
}

func (v view) culled(x, y, w, h float64) bool {
	return x+w < v.minX || x > v.minX+v.w || y+h < v.minY || y > v.minY+v.h
}

func (v view) outline(screen *ebiten.Image, x, y, w, h float64, c color.Color) {
	if v.culled(x, y, w, h) {
		return
	}
	x += v.offX
	y += v.offY
	vector.FillRect(screen, float32(x), float32(y), float32(w), 1, c, false)     // Top
	vector.FillRect(screen, float32(x), float32(y+h-1), float32(w), 1, c, false) // Bottom
	vector.FillRect(screen, float32(x), float32(y), 1, float32(h), c, false)     // Left
	vector.FillRect(screen, float32(x+w-1), float32(y), 1, float32(h), c, false) // Right
}

func (v view) fill(screen *ebiten.Image, x, y, w, h float64, c color.Color) {
	if v.culled(x, y, w, h) {
		return
	}
	vector.FillRect(screen, float32(x+v.offX), float32(y+v.offY), float32(w), float32(h), c, false)
}

// DrawLevels outlines every level's bounds, the selected one highlighted.
func DrawLevels(e *ecs.ECS, screen *ebiten.Image) {
	v, ok := newView(e, screen)
	if !ok {
		return
	}
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)

	for _, name := range levelData.Names {
		b := levelData.Levels[name].Bounds()
		c := cfg.Overlay.LevelBounds
		if name == levelData.Selected {
			c = cfg.Overlay.Selected
		}
		v.outline(screen, float64(b.Min.X), float64(b.Min.Y), float64(b.Dx()), float64(b.Dy()), c)
	}
}

// DrawWalls outlines every registered wall and ramp.
func DrawWalls(e *ecs.ECS, screen *ebiten.Image) {
	v, ok := newView(e, screen)
	if !ok {
		return
	}

	tags.Wall.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)
		v.outline(screen, obj.X, obj.Y, obj.W, obj.H, cfg.Overlay.Wall)
	})
	tags.Slope.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)
		v.outline(screen, obj.X, obj.Y, obj.W, obj.H, cfg.Overlay.Slope)
	})
}

// DrawPlates shades the per-row runs of the selected level, showing how
// they were fused into the walls above.
func DrawPlates(e *ecs.ECS, screen *ebiten.Image) {
	settings := systems.GetSettings(e)
	if settings == nil || !settings.ShowPlates {
		return
	}
	v, ok := newView(e, screen)
	if !ok {
		return
	}
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry).SelectedLevel()
	if level == nil {
		return
	}

	for _, row := range merge.RowPlates(level.Width, level.Height, level.Walls) {
		for _, p := range row {
			x, y, w, h := level.WorldRect(plateRect(level, p))
			v.fill(screen, x+1, y+1, w-2, h-2, cfg.Overlay.Plate)
		}
	}
}

func plateRect(level *leveldata.Level, p merge.Plate) merge.Rect {
	return merge.Rect{Region: level.Region(), Left: p.Left, Right: p.Right, Bottom: p.Row, Top: p.Row}
}

// DrawPlayer fills the probe.
func DrawPlayer(e *ecs.ECS, screen *ebiten.Image) {
	v, ok := newView(e, screen)
	if !ok {
		return
	}
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	obj := components.Object.Get(playerEntry)
	v.fill(screen, obj.X, obj.Y, obj.W, obj.H, cfg.Player.Color)
}
