package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/doomerang-walls/assets"
	cfg "github.com/automoto/doomerang-walls/config"
	"github.com/automoto/doomerang-walls/components"
	"github.com/automoto/doomerang-walls/input"
	"github.com/automoto/doomerang-walls/render"
	"github.com/automoto/doomerang-walls/systems"
	"github.com/automoto/doomerang-walls/systems/factory"
	"github.com/automoto/doomerang-walls/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// WorldScene lets a probe fly through the levels while walls are merged
// and registered as each level is entered.
type WorldScene struct {
	ecs       *ecs.ECS
	inspector *ui.InspectorUI
	once      sync.Once
}

func NewWorldScene() *WorldScene {
	return &WorldScene{}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	ws.ecs.Update()

	if settings := systems.GetSettings(ws.ecs); settings != nil && settings.ShowInspector {
		levelEntry, _ := components.Level.First(ws.ecs.World)
		ws.inspector.Refresh(components.Level.Get(levelEntry))
		ws.inspector.Update()
	}
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)

	if settings := systems.GetSettings(ws.ecs); settings != nil && settings.ShowInspector {
		ws.inspector.Draw(screen)
	}
}

func (ws *WorldScene) configure() {
	levels, names := assets.MustLoadLevels()

	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(input.UpdateInput)
	ecs.AddSystem(systems.UpdateSettings)
	ecs.AddSystem(systems.UpdatePlayer)
	ecs.AddSystem(systems.UpdateObjects)
	ecs.AddSystem(systems.UpdateLevelSelection)
	ecs.AddSystem(systems.ProcessEvents)
	ecs.AddSystem(systems.UpdateCamera)
	ecs.AddSystem(systems.UpdateBanner)

	ecs.AddRenderer(cfg.Default, render.DrawLevels)
	ecs.AddRenderer(cfg.Default, render.DrawPlates)
	ecs.AddRenderer(cfg.Default, render.DrawWalls)
	ecs.AddRenderer(cfg.Default, render.DrawPlayer)
	ecs.AddRenderer(cfg.Default, render.DrawBanner)

	ws.ecs = ecs

	// The space must exist before any wall is spawned into it.
	bounds := factory.WorldBounds(levels)
	factory.CreateSpace(ws.ecs, bounds.Max.X, bounds.Max.Y, cfg.Walls.SpaceCellSize, cfg.Walls.SpaceCellSize)

	level := factory.CreateLevel(ws.ecs, levels, names)
	systems.SetupWallEvents(ws.ecs)

	preferred, err := systems.LoadSelection()
	if err != nil {
		log.Printf("Warning: ignoring saved selection: %v", err)
	}
	spawn, ok := systems.StartSpawn(components.Level.Get(level), preferred)
	if !ok {
		panic("no player spawn points defined in any level")
	}

	factory.CreatePlayer(ws.ecs, spawn.X, spawn.Y)
	factory.CreateCamera(ws.ecs, spawn.X, spawn.Y)
	factory.CreateBanner(ws.ecs)

	ws.inspector = ui.NewInspectorUI(names)

	log.Printf("Loaded %d levels, starting at (%.0f, %.0f)", len(names), spawn.X, spawn.Y)
}
