package merge

import (
	"fmt"
	"sort"
)

// Merge decomposes occupied into disjoint rectangles that cover it exactly.
// Every coordinate must satisfy 0 <= x < width and 0 <= y < height.
func Merge(width, height int, occupied map[GridCoord]struct{}) ([]Rect, error) {
	if err := validate(width, height, occupied); err != nil {
		return nil, err
	}
	return fuse(RowPlates(width, height, occupied)), nil
}

// MergeRegion is Merge with every rectangle tagged as belonging to region.
func MergeRegion(region Region, width, height int, occupied map[GridCoord]struct{}) ([]Rect, error) {
	rects, err := Merge(width, height, occupied)
	if err != nil {
		return nil, fmt.Errorf("merge region %q: %w", region, err)
	}
	for i := range rects {
		rects[i].Region = region
	}
	return rects, nil
}

func validate(width, height int, occupied map[GridCoord]struct{}) error {
	if width < 0 || height < 0 {
		return fmt.Errorf("grid %dx%d: %w", width, height, ErrInvalidCoordinate)
	}

	// Report the lowest offending cell so the error does not depend on map order.
	var bad []GridCoord
	for c := range occupied {
		if c.X < 0 || c.X >= width || c.Y < 0 || c.Y >= height {
			bad = append(bad, c)
		}
	}
	if len(bad) == 0 {
		return nil
	}
	sort.Slice(bad, func(i, j int) bool {
		if bad[i].Y != bad[j].Y {
			return bad[i].Y < bad[j].Y
		}
		return bad[i].X < bad[j].X
	})
	return &InvalidCoordinateError{Coord: bad[0], Width: width, Height: height}
}

// RowPlates returns the maximal horizontal runs of every row, indexed by row.
// Coordinates outside the grid are ignored.
func RowPlates(width, height int, occupied map[GridCoord]struct{}) [][]Plate {
	if height <= 0 {
		return nil
	}
	rows := make([][]Plate, height)
	for y := 0; y < height; y++ {
		start := -1
		// x == width is a sentinel that closes a run touching the right edge.
		for x := 0; x <= width; x++ {
			_, solid := occupied[GridCoord{X: x, Y: y}]
			solid = solid && x < width
			switch {
			case solid && start < 0:
				start = x
			case !solid && start >= 0:
				rows[y] = append(rows[y], Plate{Row: y, Left: start, Right: x - 1})
				start = -1
			}
		}
	}
	return rows
}

// fuse stacks plates of identical span from consecutive rows into rectangles.
func fuse(rows [][]Plate) []Rect {
	var (
		rects []Rect
		open  = make(map[span]*Rect)
		prev  []Plate
	)

	// One extra empty row closes whatever is still open.
	for y := 0; y <= len(rows); y++ {
		var cur []Plate
		if y < len(rows) {
			cur = rows[y]
		}

		present := make(map[span]struct{}, len(cur))
		for _, p := range cur {
			present[p.shape()] = struct{}{}
		}

		for _, p := range prev {
			if _, ok := present[p.shape()]; ok {
				continue
			}
			rects = append(rects, *open[p.shape()])
			delete(open, p.shape())
		}

		for _, p := range cur {
			if acc, ok := open[p.shape()]; ok {
				acc.Top = p.Row
				continue
			}
			open[p.shape()] = &Rect{Left: p.Left, Right: p.Right, Bottom: p.Row, Top: p.Row}
		}

		prev = cur
	}

	return rects
}
