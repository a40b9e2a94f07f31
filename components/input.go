package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// InputData is the movement intent for this tick, each axis in [-1, 1].
type InputData struct {
	Move            math.Vec2
	ToggleInspector bool
	TogglePlates    bool
}

var Input = donburi.NewComponentType[InputData]()
