// Package merge turns a grid of solid tiles into a small set of
// axis-aligned rectangles suitable for static collision.
//
// The decomposition is a greedy two-pass scheme: each row is split into
// maximal horizontal runs (plates), then plates with an identical column
// span in consecutive rows are fused vertically. It is deterministic but
// not a minimum rectangle cover.
package merge

import "sort"

// GridCoord identifies one cell of a region's tile grid.
type GridCoord struct {
	X, Y int
}

// Region groups cells that are merged independently, usually one level.
type Region string

// Dimensions is the cell-count bound of a region.
type Dimensions struct {
	Width  int
	Height int
}

// Plate is a maximal horizontal run of occupied cells within one row.
type Plate struct {
	Row   int
	Left  int
	Right int
}

func (p Plate) shape() span {
	return span{p.Left, p.Right}
}

type span struct {
	left, right int
}

// Rect is an inclusive range of cells. Bottom is the lowest row index.
type Rect struct {
	Region Region
	Left   int
	Right  int
	Bottom int
	Top    int
}

func (r Rect) Width() int  { return r.Right - r.Left + 1 }
func (r Rect) Height() int { return r.Top - r.Bottom + 1 }

// Area is the number of cells covered.
func (r Rect) Area() int { return r.Width() * r.Height() }

func (r Rect) Contains(c GridCoord) bool {
	return c.X >= r.Left && c.X <= r.Right && c.Y >= r.Bottom && c.Y <= r.Top
}

// Cells lists every covered cell, row by row.
func (r Rect) Cells() []GridCoord {
	cells := make([]GridCoord, 0, r.Area())
	for y := r.Bottom; y <= r.Top; y++ {
		for x := r.Left; x <= r.Right; x++ {
			cells = append(cells, GridCoord{X: x, Y: y})
		}
	}
	return cells
}

// OccupancySet marks the solid cells of each region.
type OccupancySet map[Region]map[GridCoord]struct{}

func (o OccupancySet) Add(region Region, c GridCoord) {
	cells, ok := o[region]
	if !ok {
		cells = make(map[GridCoord]struct{})
		o[region] = cells
	}
	cells[c] = struct{}{}
}

// Cells returns the solid cells of region, or nil if the region is unknown.
func (o OccupancySet) Cells(region Region) map[GridCoord]struct{} {
	return o[region]
}

// Regions returns the known regions in sorted order.
func (o OccupancySet) Regions() []Region {
	regions := make([]Region, 0, len(o))
	for r := range o {
		regions = append(regions, r)
	}
	sort.Slice(regions, func(i, j int) bool { return regions[i] < regions[j] })
	return regions
}
