package systems

import (
	"math"

	"github.com/automoto/doomerang-walls/components"
	"github.com/automoto/doomerang-walls/config"
	"github.com/automoto/doomerang-walls/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera eases the camera toward the player, kept inside the
// selected level so the view never shows past its edges.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	targetX, targetY := components.Object.Get(playerEntry).Center()

	if levelEntry, ok := components.Level.First(e.World); ok {
		if level := components.Level.Get(levelEntry).SelectedLevel(); level != nil {
			b := level.Bounds()
			targetX = clampAxis(targetX, float64(b.Min.X), float64(b.Max.X), float64(config.C.Width))
			targetY = clampAxis(targetY, float64(b.Min.Y), float64(b.Max.Y), float64(config.C.Height))
		}
	}

	camera.Position.X += (targetX - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (targetY - camera.Position.Y) * config.Camera.FollowSmoothing
}

// clampAxis keeps a view of size span centred at v inside [lo, hi]. A level
// smaller than the view is centred instead.
func clampAxis(v, lo, hi, span float64) float64 {
	minV := lo + span/2
	maxV := hi - span/2
	if minV > maxV {
		return (lo + hi) / 2
	}
	return math.Max(minV, math.Min(maxV, v))
}
