package systems

import (
	"github.com/automoto/doomerang-walls/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects re-buckets every resolv object into the space's cells.
func UpdateObjects(ecs *ecs.ECS) {
	for e := range components.Object.Iter(ecs.World) {
		obj := components.Object.Get(e)
		if obj.Space != nil {
			obj.Update()
		}
	}
}
