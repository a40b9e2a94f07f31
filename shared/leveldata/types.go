// Package leveldata provides TMX level parsing for the wall merger.
// It has no dependencies on ebitengine, donburi, or resolv: pure data only.
package leveldata

import (
	"image"

	"github.com/automoto/doomerang-walls/merge"
)

// DefaultWallLayer is the tile layer whose tiles are solid walls.
const DefaultWallLayer = "wg-tiles"

// Level holds the wall occupancy and placement of one TMX map.
type Level struct {
	Name       string
	Width      int // cells
	Height     int // cells
	TileWidth  int // pixels
	TileHeight int // pixels

	// World-space top-left corner of the map, in pixels.
	OriginX int
	OriginY int

	// Walls are grid cells with y == 0 at the bottom row of the map.
	Walls       map[merge.GridCoord]struct{}
	Slopes      []SlopeTile
	SpawnPoints []SpawnPoint
}

// SlopeTile is a ramp tile. Ramps are not rectangular so they are kept out
// of the merged walls.
type SlopeTile struct {
	Coord     merge.GridCoord
	SlopeType string // "45_up_right", "45_up_left"
}

// SpawnPoint is a player spawn location in world pixels.
type SpawnPoint struct {
	X, Y  float64
	Index int
}

func (l *Level) Region() merge.Region {
	return merge.Region(l.Name)
}

func (l *Level) Dimensions() merge.Dimensions {
	return merge.Dimensions{Width: l.Width, Height: l.Height}
}

// Bounds returns the world-space rectangle covered by the level.
func (l *Level) Bounds() image.Rectangle {
	return image.Rect(
		l.OriginX,
		l.OriginY,
		l.OriginX+l.Width*l.TileWidth,
		l.OriginY+l.Height*l.TileHeight,
	)
}

// Contains reports whether the world point lies inside the level.
func (l *Level) Contains(x, y float64) bool {
	b := l.Bounds()
	return x >= float64(b.Min.X) && x < float64(b.Max.X) &&
		y >= float64(b.Min.Y) && y < float64(b.Max.Y)
}

// WorldRect converts a merged rect into world pixels (x, y is top-left).
func (l *Level) WorldRect(r merge.Rect) (x, y, w, h float64) {
	tw := float64(l.TileWidth)
	th := float64(l.TileHeight)
	x = float64(l.OriginX) + float64(r.Left)*tw
	// Grid rows grow upward, screen rows grow downward.
	y = float64(l.OriginY) + float64(l.Height-1-r.Top)*th
	w = float64(r.Width()) * tw
	h = float64(r.Height()) * th
	return x, y, w, h
}

// CellAt returns the grid cell under a world point and whether it is
// inside the level.
func (l *Level) CellAt(x, y float64) (merge.GridCoord, bool) {
	if !l.Contains(x, y) {
		return merge.GridCoord{}, false
	}
	col := int((x - float64(l.OriginX)) / float64(l.TileWidth))
	row := int((y - float64(l.OriginY)) / float64(l.TileHeight))
	return merge.GridCoord{X: col, Y: l.Height - 1 - row}, true
}
