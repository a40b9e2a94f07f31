package components

import (
	"github.com/automoto/doomerang-walls/merge"
	"github.com/yohamta/donburi"
)

// RegionData links a wall entity back to the merged rect it was built from.
type RegionData struct {
	Rect merge.Rect
}

var Region = donburi.NewComponentType[RegionData]()
