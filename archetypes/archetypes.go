package archetypes

import (
	"github.com/automoto/doomerang-walls/components"
	cfg "github.com/automoto/doomerang-walls/config"
	"github.com/automoto/doomerang-walls/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Object,
		components.Input,
	)
	Space = newArchetype(
		components.Space,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
		components.Region,
	)
	Slope = newArchetype(
		tags.Slope,
		components.Object,
		components.Region,
	)
	Level = newArchetype(
		components.Level,
		components.Settings,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Banner = newArchetype(
		components.Banner,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
