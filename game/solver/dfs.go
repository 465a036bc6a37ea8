package solver

import (
	"github.com/beka-birhanu/maze-solver-api/game/maze"
)

// DFSSolver explores the connectivity graph depth-first. It finds some
// path whenever one exists but offers no bound on its length relative to
// the shortest; it is kept for contrast with BFS and A*.
type DFSSolver struct{}

// Solve returns a path from the maze start to its end, or an empty path
// if the end is unreachable.
func (s *DFSSolver) Solve(m Maze) Path {
	start, end := m.Start(), m.End()

	visited := map[maze.CellPosition]struct{}{start: {}}
	cameFrom := make(map[maze.CellPosition]maze.CellPosition)
	stack := []maze.CellPosition{start}

	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if current == end {
			return reconstruct(cameFrom, start, end)
		}

		for _, neighbor := range m.ConnectedNeighbors(current) {
			if _, seen := visited[neighbor]; !seen {
				visited[neighbor] = struct{}{}
				cameFrom[neighbor] = current
				stack = append(stack, neighbor)
			}
		}
	}

	return nil
}
