package systems

import (
	"math"

	"github.com/automoto/doomerang-walls/components"
	cfg "github.com/automoto/doomerang-walls/config"
	"github.com/automoto/doomerang-walls/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer moves the probe by its input, one axis at a time, stopping
// flush against walls and ramps.
func UpdatePlayer(e *ecs.ECS) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	obj := components.Object.Get(playerEntry).Object
	input := components.Input.Get(playerEntry)

	moveX(obj, input.Move.X*cfg.Player.Speed)
	moveY(obj, input.Move.Y*cfg.Player.Speed)
	obj.Update()
}

func moveX(obj *resolv.Object, dx float64) {
	if dx == 0 {
		return
	}
	if check := obj.Check(dx, 0, tags.ResolvSolid, tags.ResolvRamp); check != nil {
		for _, o := range check.Objects {
			if !overlaps(obj.X+dx, obj.Y, obj.W, obj.H, o) {
				continue
			}
			if dx > 0 {
				dx = math.Min(dx, o.X-(obj.X+obj.W))
			} else {
				dx = math.Max(dx, o.X+o.W-obj.X)
			}
		}
	}
	obj.X += dx
}

func moveY(obj *resolv.Object, dy float64) {
	if dy == 0 {
		return
	}
	if check := obj.Check(0, dy, tags.ResolvSolid, tags.ResolvRamp); check != nil {
		for _, o := range check.Objects {
			if !overlaps(obj.X, obj.Y+dy, obj.W, obj.H, o) {
				continue
			}
			if dy > 0 {
				dy = math.Min(dy, o.Y-(obj.Y+obj.H))
			} else {
				dy = math.Max(dy, o.Y+o.H-obj.Y)
			}
		}
	}
	obj.Y += dy
}

// overlaps is a strict AABB test; touching edges do not count.
func overlaps(x, y, w, h float64, o *resolv.Object) bool {
	return x < o.X+o.W && x+w > o.X && y < o.Y+o.H && y+h > o.Y
}
