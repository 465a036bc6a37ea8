package solver

import (
	"github.com/beka-birhanu/maze-solver-api/game/maze"
)

// BFSSolver explores the connectivity graph in order of increasing number
// of edges from the start, so the path it returns is a shortest path in
// edge count.
type BFSSolver struct{}

// Solve returns a shortest path from the maze start to its end, or an
// empty path if the end is unreachable.
func (s *BFSSolver) Solve(m Maze) Path {
	start, end := m.Start(), m.End()

	visited := map[maze.CellPosition]struct{}{start: {}}
	cameFrom := make(map[maze.CellPosition]maze.CellPosition)
	queue := []maze.CellPosition{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if current == end {
			return reconstruct(cameFrom, start, end)
		}

		for _, neighbor := range m.ConnectedNeighbors(current) {
			if _, seen := visited[neighbor]; !seen {
				visited[neighbor] = struct{}{}
				cameFrom[neighbor] = current
				queue = append(queue, neighbor)
			}
		}
	}

	return nil
}
