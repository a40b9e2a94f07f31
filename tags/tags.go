package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Wall   = donburi.NewTag().SetName("Wall")
	Slope  = donburi.NewTag().SetName("Slope")
)

// Resolv tags for physics collision
const (
	ResolvSolid  = "solid"
	ResolvRamp   = "ramp"
	ResolvPlayer = "Player"

	// Slope type tags
	Slope45UpRight = "45_up_right"
	Slope45UpLeft  = "45_up_left"
)
