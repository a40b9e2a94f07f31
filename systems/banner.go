package systems

import (
	"github.com/automoto/doomerang-walls/components"
	cfg "github.com/automoto/doomerang-walls/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// ShowBanner restarts the level caption fade with a new text.
func ShowBanner(e *ecs.ECS, text string) {
	entry, ok := components.Banner.First(e.World)
	if !ok {
		return
	}
	banner := components.Banner.Get(entry)
	banner.Text = text
	banner.Alpha = 1
	banner.Fade = gween.New(1, 0, cfg.Banner.FadeSeconds, ease.InQuad)
}

func UpdateBanner(e *ecs.ECS) {
	entry, ok := components.Banner.First(e.World)
	if !ok {
		return
	}
	banner := components.Banner.Get(entry)
	if banner.Fade == nil {
		return
	}

	alpha, done := banner.Fade.Update(1 / cfg.Banner.TicksPerSec)
	banner.Alpha = alpha
	if done {
		banner.Alpha = 0
		banner.Fade = nil
	}
}
