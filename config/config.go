package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the ECS layer every entity and renderer uses.
const Default ecs.LayerID = 0

// Config holds general viewer configuration
type Config struct {
	Width  int
	Height int
}

// WallsConfig controls how levels are loaded and walls registered
type WallsConfig struct {
	LevelsDir     string // directory inside the assets FS holding *.tmx files
	WallLayer     string // tile layer treated as solid
	SpaceCellSize int    // resolv broadphase cell size in pixels
	LoadNeighbors bool   // keep levels touching the selected one loaded
}

// CameraConfig contains camera follow configuration
type CameraConfig struct {
	FollowSmoothing float64 // fraction of the remaining distance covered per tick
}

// PlayerConfig contains the probe player configuration
type PlayerConfig struct {
	Speed  float64 // pixels per tick
	Width  float64
	Height float64
	Color  color.RGBA
}

// BannerConfig contains the "entered level" caption configuration
type BannerConfig struct {
	FadeSeconds float32
	TicksPerSec float32
	Color       color.RGBA
	Y           float64
}

// DebugConfig contains debug/testing options
type DebugConfig struct {
	ShowInspector bool // start with the inspector panel open
	ShowPlates    bool // draw per-row plates under the merged walls
}

// Colors used by the wall overlay
type OverlayConfig struct {
	Wall        color.RGBA
	Slope       color.RGBA
	Plate       color.RGBA
	LevelBounds color.RGBA
	Selected    color.RGBA
}

// Global configuration instances
var C *Config
var Walls WallsConfig
var Camera CameraConfig
var Player PlayerConfig
var Banner BannerConfig
var Debug DebugConfig
var Overlay OverlayConfig

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
	}

	Walls = WallsConfig{
		LevelsDir:     "levels",
		WallLayer:     "wg-tiles",
		SpaceCellSize: 16,
		LoadNeighbors: true,
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.1,
	}

	Player = PlayerConfig{
		Speed:  3.0,
		Width:  12,
		Height: 12,
		Color:  color.RGBA{R: 0, G: 100, B: 255, A: 255},
	}

	Banner = BannerConfig{
		FadeSeconds: 2,
		TicksPerSec: 60,
		Color:       color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Y:           40,
	}

	Debug = DebugConfig{
		ShowInspector: true,
		ShowPlates:    false,
	}

	Overlay = OverlayConfig{
		Wall:        color.RGBA{R: 100, G: 100, B: 100, A: 255},
		Slope:       color.RGBA{R: 255, G: 140, B: 0, A: 255},
		Plate:       color.RGBA{R: 0, G: 255, B: 255, A: 80},
		LevelBounds: color.RGBA{R: 60, G: 100, B: 160, A: 255},
		Selected:    color.RGBA{R: 0, G: 255, B: 60, A: 255},
	}
}
