package systems

import (
	"github.com/automoto/doomerang-walls/merge"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
)

// LevelEvent names the region whose tiles became available or went away.
type LevelEvent struct {
	Region merge.Region
}

var (
	// LevelLoaded fires once a region's tiles are fully known.
	LevelLoaded = events.NewEventType[LevelEvent]()
	// LevelUnloaded fires when a region leaves the world.
	LevelUnloaded = events.NewEventType[LevelEvent]()
)

// ProcessEvents delivers queued level events to their subscribers.
func ProcessEvents(e *ecs.ECS) {
	events.ProcessAllEvents(e.World)
}
