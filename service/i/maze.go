package i

import (
	"github.com/beka-birhanu/maze-solver-api/game/maze"
)

// Maze is the read-only maze surface the play service and the API rely
// on. It is satisfied by *maze.BacktrackerMaze.
type Maze interface {
	// Width returns the number of columns in the maze.
	Width() int

	// Height returns the number of rows in the maze.
	Height() int

	// Start returns the position the maze starts from.
	Start() maze.CellPosition

	// End returns the position the maze ends at.
	End() maze.CellPosition

	// Seed returns the seed the maze was generated from.
	Seed() int64

	// CellAt returns a read-only view of the cell at the given position,
	// or nil if the position is out of bounds.
	CellAt(maze.CellPosition) *maze.Cell

	// HasWall reports whether the cell at the given position has a wall
	// in the given direction.
	HasWall(maze.CellPosition, maze.Direction) bool

	// ConnectedNeighbors returns the positions reachable from the given
	// position in one step.
	ConnectedNeighbors(maze.CellPosition) []maze.CellPosition

	// IsValidMove reports whether a single step from the given position
	// in the given direction is possible.
	IsValidMove(maze.CellPosition, maze.Direction) bool

	// String returns an ASCII rendering of the maze.
	String() string
}
