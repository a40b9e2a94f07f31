package factory

import (
	"github.com/automoto/doomerang-walls/archetypes"
	"github.com/automoto/doomerang-walls/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateBanner(ecs *ecs.ECS) *donburi.Entry {
	banner := archetypes.Banner.Spawn(ecs)
	components.Banner.Set(banner, &components.BannerData{})
	return banner
}
