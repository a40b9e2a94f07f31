package merge

import (
	"errors"
	"fmt"
)

// ErrInvalidCoordinate is returned when an occupied cell lies outside the
// declared grid.
var ErrInvalidCoordinate = errors.New("invalid coordinate")

type InvalidCoordinateError struct {
	Coord  GridCoord
	Width  int
	Height int
}

func (e *InvalidCoordinateError) Error() string {
	return fmt.Sprintf("%v: (%d,%d) outside %dx%d grid",
		ErrInvalidCoordinate, e.Coord.X, e.Coord.Y, e.Width, e.Height)
}

func (e *InvalidCoordinateError) Unwrap() error {
	return ErrInvalidCoordinate
}
