package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData wraps the resolv object registered for an entity. The
// object's Data field points back at the owning entry.
type ObjectData struct {
	*resolv.Object
}

// Center returns the midpoint of the object's bounding box.
func (o ObjectData) Center() (float64, float64) {
	return o.X + o.W/2, o.Y + o.H/2
}

var Object = donburi.NewComponentType[ObjectData]()
