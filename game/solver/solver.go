/*
Package solver implements pathfinding over the connectivity graph of a
maze: cells are vertices and shared edges with no wall in between are
edges.

Three interchangeable strategies are provided — breadth-first search,
depth-first search, and A* — selected by a closed Algorithm tag. Every
strategy only reads the maze and keeps its own search state, so a single
maze can be solved concurrently by any number of callers.
*/
package solver

import (
	"fmt"

	"github.com/beka-birhanu/maze-solver-api/game/maze"
)

// Maze is the read-only view of a maze that a solver searches. It is
// satisfied by *maze.BacktrackerMaze and by any hand-built grid, which
// keeps the solvers testable against arbitrary, possibly disconnected
// graphs.
type Maze interface {
	// Start returns the position paths begin at.
	Start() maze.CellPosition

	// End returns the position paths must reach.
	End() maze.CellPosition

	// ConnectedNeighbors returns the positions reachable from the given
	// position in one step. The iteration order must be fixed within a
	// run; it decides tie-breaking between equally good paths.
	ConnectedNeighbors(maze.CellPosition) []maze.CellPosition
}

// Path is an ordered sequence of positions. A non-empty path starts at
// the maze start, ends at the maze end, and every consecutive pair is one
// connected grid step apart. An empty path means the end is unreachable.
type Path []maze.CellPosition

// PathFinder produces a path through a maze. Implementations never mutate
// the maze and return a fresh Path on every call.
type PathFinder interface {
	Solve(m Maze) Path
}

// Algorithm selects a pathfinding strategy.
type Algorithm string

const (
	BFS   Algorithm = "bfs"
	DFS   Algorithm = "dfs"
	AStar Algorithm = "astar"
)

// New returns the PathFinder implementing the given algorithm.
func New(a Algorithm) (PathFinder, error) {
	switch a {
	case BFS:
		return &BFSSolver{}, nil
	case DFS:
		return &DFSSolver{}, nil
	case AStar:
		return &AStarSolver{}, nil
	default:
		return nil, fmt.Errorf("unknown algorithm %q", a)
	}
}

// reconstruct walks the predecessor tree backward from end to start and
// returns the reversed walk. cameFrom must hold a predecessor for every
// position on the walk except start.
func reconstruct(cameFrom map[maze.CellPosition]maze.CellPosition, start, end maze.CellPosition) Path {
	path := Path{end}
	for current := end; current != start; {
		current = cameFrom[current]
		path = append(path, current)
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
