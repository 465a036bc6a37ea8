/*
Package maze provides tools for creating and managing rectangular mazes.

It defines the `BacktrackerMaze` structure, composed of `Cell` objects that
track wall configurations and the start/end markers.

The package includes functionality for random maze generation with an
iterative recursive-backtracking algorithm, wall queries, move validation,
neighbor enumeration, and ASCII visualization of the maze. Generation is
driven by an injectable seed so identical inputs always produce identical
mazes.
*/
package maze

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"
)

var (
	// ErrInvalidDimensions is returned when a maze is constructed with a
	// non-positive width or height.
	ErrInvalidDimensions = errors.New("maze dimensions must be positive")
)

// BacktrackerMaze represents a rectangular perfect maze: every pair of
// cells is connected by exactly one simple path. It is generated once on
// construction and read-only afterwards, so it is safe for concurrent
// readers.
type BacktrackerMaze struct {
	width  int       // Width of the maze (number of columns)
	height int       // Height of the maze (number of rows)
	grid   [][]*Cell // 2D grid of cells forming the maze, indexed [row][col]
	start  CellPosition
	end    CellPosition
	seed   int64
}

// New initializes a new maze of the given dimensions and generates its
// layout from a time-based seed.
func New(width, height int) (*BacktrackerMaze, error) {
	return NewFromSeed(width, height, time.Now().UnixNano())
}

// NewFromSeed initializes a new maze of the given dimensions and generates
// its layout from the given seed. The same dimensions and seed always
// yield the same wall layout.
func NewFromSeed(width, height int, seed int64) (*BacktrackerMaze, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}

	grid := make([][]*Cell, height)
	for i := range grid {
		grid[i] = make([]*Cell, width)
		for j := range grid[i] {
			grid[i][j] = newCell()
		}
	}

	m := &BacktrackerMaze{
		width:  width,
		height: height,
		grid:   grid,
		start:  CellPosition{Row: 0, Col: 0},
		end:    CellPosition{Row: height - 1, Col: width - 1},
		seed:   seed,
	}
	m.generate(rand.New(rand.NewSource(seed)))
	return m, nil
}

// Width returns the number of columns in the maze.
func (m *BacktrackerMaze) Width() int {
	return m.width
}

// Height returns the number of rows in the maze.
func (m *BacktrackerMaze) Height() int {
	return m.height
}

// Start returns the position the maze starts from.
func (m *BacktrackerMaze) Start() CellPosition {
	return m.start
}

// End returns the position the maze ends at.
func (m *BacktrackerMaze) End() CellPosition {
	return m.end
}

// Seed returns the seed the maze was generated from.
func (m *BacktrackerMaze) Seed() int64 {
	return m.seed
}

// InBound reports whether the given row and column fall inside the maze.
func (m *BacktrackerMaze) InBound(row, col int) bool {
	return row >= 0 && row < m.height && col >= 0 && col < m.width
}

// CellAt returns the cell at the given position, or nil if the position is
// out of bounds. The returned cell is a read-only view; callers must not
// mutate it.
func (m *BacktrackerMaze) CellAt(pos CellPosition) *Cell {
	if !m.InBound(pos.Row, pos.Col) {
		return nil
	}
	return m.grid[pos.Row][pos.Col]
}

// HasWall reports whether the cell at the given position has a wall in the
// given direction. Out-of-bounds positions report a wall.
func (m *BacktrackerMaze) HasWall(pos CellPosition, d Direction) bool {
	cell := m.CellAt(pos)
	if cell == nil {
		return true
	}
	return cell.HasWall(d)
}

// Neighbors returns the grid-adjacent positions of the given position,
// clipped to the maze bounds and independent of wall state.
func (m *BacktrackerMaze) Neighbors(pos CellPosition) []CellPosition {
	var result []CellPosition
	for _, d := range AllDirections {
		dr, dc := d.Delta()
		neighbor := CellPosition{Row: pos.Row + dr, Col: pos.Col + dc}
		if m.InBound(neighbor.Row, neighbor.Col) {
			result = append(result, neighbor)
		}
	}
	return result
}

// ConnectedNeighbors returns the neighbors reachable from the given
// position in one step, i.e. the grid-adjacent positions with no wall in
// between. These are the edges of the connectivity graph every solver
// searches.
func (m *BacktrackerMaze) ConnectedNeighbors(pos CellPosition) []CellPosition {
	var result []CellPosition
	for _, d := range AllDirections {
		dr, dc := d.Delta()
		neighbor := CellPosition{Row: pos.Row + dr, Col: pos.Col + dc}
		if m.InBound(neighbor.Row, neighbor.Col) && !m.HasWall(pos, d) {
			result = append(result, neighbor)
		}
	}
	return result
}

// IsValidMove reports whether a single step from the given position in the
// given direction is possible, i.e. both cells are in bounds and the
// connecting wall is down on both sides.
func (m *BacktrackerMaze) IsValidMove(from CellPosition, d Direction) bool {
	dr, dc := d.Delta()
	to := CellPosition{Row: from.Row + dr, Col: from.Col + dc}
	if !m.InBound(from.Row, from.Col) || !m.InBound(to.Row, to.Col) {
		return false
	}
	return !m.HasWall(from, d) && !m.HasWall(to, d.Opposite())
}

// openWall removes the wall pair between a position and its neighbor in
// the given direction, keeping the shared edge symmetric.
func (m *BacktrackerMaze) openWall(from CellPosition, d Direction) {
	dr, dc := d.Delta()
	to := CellPosition{Row: from.Row + dr, Col: from.Col + dc}
	m.grid[from.Row][from.Col].removeWall(d)
	m.grid[to.Row][to.Col].removeWall(d.Opposite())
}

// generate carves a perfect maze with iterative recursive backtracking.
// The explicit stack always holds the path from the carving root to the
// active cell, so the recursion depth is bounded regardless of grid size.
func (m *BacktrackerMaze) generate(rng *rand.Rand) {
	stack := []CellPosition{m.start}
	m.grid[m.start.Row][m.start.Col].Visited = true

	for len(stack) > 0 {
		current := stack[len(stack)-1]

		var unvisited []CellPosition
		for _, neighbor := range m.Neighbors(current) {
			if !m.grid[neighbor.Row][neighbor.Col].Visited {
				unvisited = append(unvisited, neighbor)
			}
		}

		// Subtree fully carved, backtrack.
		if len(unvisited) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		next := unvisited[rng.Intn(len(unvisited))]
		d, err := DirectionBetween(current, next)
		if err != nil {
			// Neighbors only ever yields unit offsets.
			panic(fmt.Sprintf("maze: carving non-adjacent cells %v -> %v", current, next))
		}

		m.openWall(current, d)
		m.grid[next.Row][next.Col].Visited = true
		stack = append(stack, next)
	}

	m.grid[m.start.Row][m.start.Col].IsStart = true
	m.grid[m.end.Row][m.end.Col].IsEnd = true
}

// String provides a textual representation of the maze. The start and end
// cells are marked S and E.
func (m *BacktrackerMaze) String() string {
	var output string

	// Top boundary
	output += "+" + strings.Repeat("---+", m.width) + "\n"

	for row := 0; row < m.height; row++ {
		// Cell rows
		cellRow := "|"
		for col := 0; col < m.width; col++ {
			cell := m.grid[row][col]

			switch {
			case cell.IsStart:
				cellRow += " S "
			case cell.IsEnd:
				cellRow += " E "
			default:
				cellRow += "   "
			}

			// Add east wall or space
			if cell.EastWall {
				cellRow += "|"
			} else {
				cellRow += " "
			}
		}
		output += cellRow + "\n"

		// Wall rows
		wallRow := "+"
		for col := 0; col < m.width; col++ {
			cell := m.grid[row][col]

			// Add south wall or space
			if cell.SouthWall {
				wallRow += "---+"
			} else {
				wallRow += "   +"
			}
		}
		output += wallRow + "\n"
	}

	return output
}
