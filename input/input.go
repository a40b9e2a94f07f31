// Package input polls the keyboard into ECS input components.
package input

import (
	"github.com/automoto/doomerang-walls/components"
	"github.com/automoto/doomerang-walls/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// UpdateInput polls raw input and updates the player's InputData.
// Must run BEFORE UpdatePlayer in the system order.
func UpdateInput(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	input := components.Input.Get(playerEntry)

	input.Move.X = axis(ebiten.KeyArrowLeft, ebiten.KeyA, ebiten.KeyArrowRight, ebiten.KeyD)
	input.Move.Y = axis(ebiten.KeyArrowUp, ebiten.KeyW, ebiten.KeyArrowDown, ebiten.KeyS)
	input.ToggleInspector = inpututil.IsKeyJustPressed(ebiten.KeyF1)
	input.TogglePlates = inpututil.IsKeyJustPressed(ebiten.KeyF2)
}

func axis(negA, negB, posA, posB ebiten.Key) float64 {
	v := 0.0
	if ebiten.IsKeyPressed(negA) || ebiten.IsKeyPressed(negB) {
		v--
	}
	if ebiten.IsKeyPressed(posA) || ebiten.IsKeyPressed(posB) {
		v++
	}
	return v
}
