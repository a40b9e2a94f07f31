package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// BannerData is the fading caption shown when the selected level changes.
type BannerData struct {
	Text  string
	Alpha float32
	Fade  *gween.Tween
}

var Banner = donburi.NewComponentType[BannerData]()
