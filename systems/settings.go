package systems

import (
	"github.com/automoto/doomerang-walls/components"
	"github.com/automoto/doomerang-walls/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSettings applies the debug toggles requested through input.
func UpdateSettings(e *ecs.ECS) {
	settings := GetSettings(e)
	if settings == nil {
		return
	}
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	input := components.Input.Get(playerEntry)

	if input.ToggleInspector {
		settings.ShowInspector = !settings.ShowInspector
	}
	if input.TogglePlates {
		settings.ShowPlates = !settings.ShowPlates
	}
}

// GetSettings returns the viewer settings, or nil before the level exists.
func GetSettings(e *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		return nil
	}
	return components.Settings.Get(entry)
}
