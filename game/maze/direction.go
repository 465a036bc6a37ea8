package maze

import (
	"errors"
	"fmt"
	"strings"
)

// Direction identifies one of the four sides of a cell.
type Direction uint8

const (
	North Direction = iota
	South
	East
	West
)

// AllDirections lists every direction in a fixed order. Iterating this
// array instead of a map keeps generation and solving deterministic for a
// given random seed.
var AllDirections = [4]Direction{North, South, East, West}

// ErrNoSuchDirection is returned when two positions are not exactly one
// grid step apart. Grid-adjacent positions always are, so hitting this
// error indicates a defect in the caller, not bad runtime data.
var ErrNoSuchDirection = errors.New("positions are not one grid step apart")

// Delta returns the row and column offset of a single step in the direction.
func (d Direction) Delta() (row, col int) {
	switch d {
	case North:
		return -1, 0
	case South:
		return 1, 0
	case East:
		return 0, 1
	default:
		return 0, -1
	}
}

// Opposite returns the direction pointing the other way.
// The mapping is involutive: d.Opposite().Opposite() == d.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	default:
		return East
	}
}

// String returns the direction name (North, South, East, West).
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case South:
		return "South"
	case East:
		return "East"
	default:
		return "West"
	}
}

// ParseDirection maps a direction name to its Direction value.
// Matching is case-insensitive on the names returned by String.
func ParseDirection(s string) (Direction, error) {
	for _, d := range AllDirections {
		if strings.EqualFold(d.String(), s) {
			return d, nil
		}
	}
	return North, fmt.Errorf("unknown direction %q", s)
}

// DirectionBetween returns the direction of the single grid step leading
// from one position to an adjacent one.
func DirectionBetween(from, to CellPosition) (Direction, error) {
	for _, d := range AllDirections {
		dr, dc := d.Delta()
		if from.Row+dr == to.Row && from.Col+dc == to.Col {
			return d, nil
		}
	}
	return North, ErrNoSuchDirection
}
