package render

import (
	"image/color"

	"github.com/automoto/doomerang-walls/components"
	cfg "github.com/automoto/doomerang-walls/config"
	"github.com/automoto/doomerang-walls/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// DrawBanner draws the fading "entered level" caption centred at the top.
func DrawBanner(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Banner.First(e.World)
	if !ok {
		return
	}
	banner := components.Banner.Get(entry)
	if banner.Alpha <= 0 || banner.Text == "" {
		return
	}

	face := fonts.Banner.Get()
	width := font.MeasureString(face, banner.Text).Round()
	x := (screen.Bounds().Dx() - width) / 2

	c := cfg.Banner.Color
	c.A = uint8(float32(c.A) * banner.Alpha)
	text.Draw(screen, banner.Text, face, x, int(cfg.Banner.Y), color.NRGBA(c))
}
