package solver

import (
	"container/heap"

	"github.com/beka-birhanu/maze-solver-api/game/maze"
)

// AStarSolver explores the connectivity graph ordered by f = g + h, where
// g is the number of edges walked from the start and h is the Manhattan
// distance to the end. On a 4-connected unit-cost grid that heuristic is
// admissible and consistent, so the returned path is a shortest path.
type AStarSolver struct{}

// Solve returns a shortest path from the maze start to its end, or an
// empty path if the end is unreachable.
func (s *AStarSolver) Solve(m Maze) Path {
	start, end := m.Start(), m.End()

	gScore := map[maze.CellPosition]int{start: 0}
	cameFrom := make(map[maze.CellPosition]maze.CellPosition)

	frontier := &priorityQueue{}
	heap.Init(frontier)
	heap.Push(frontier, &frontierItem{
		pos:      start,
		g:        0,
		priority: start.ManhattanDistance(end),
	})

	for frontier.Len() > 0 {
		item := heap.Pop(frontier).(*frontierItem)
		current := item.pos

		// A better route to this cell was queued after this entry.
		if best, ok := gScore[current]; ok && item.g > best {
			continue
		}

		if current == end {
			return reconstruct(cameFrom, start, end)
		}

		for _, neighbor := range m.ConnectedNeighbors(current) {
			tentativeG := gScore[current] + 1
			if oldG, seen := gScore[neighbor]; !seen || tentativeG < oldG {
				cameFrom[neighbor] = current
				gScore[neighbor] = tentativeG
				heap.Push(frontier, &frontierItem{
					pos:      neighbor,
					g:        tentativeG,
					priority: tentativeG + neighbor.ManhattanDistance(end),
				})
			}
		}
	}

	return nil
}

// frontierItem is one entry in the A* open set.
type frontierItem struct {
	pos      maze.CellPosition
	g        int // edges walked from start
	priority int // f-score
	seq      int // insertion order, breaks remaining ties deterministically
	index    int
}

// priorityQueue is a min-heap of frontier items keyed by f-score, with
// ties broken by lower g and then insertion order.
type priorityQueue struct {
	items  []*frontierItem
	pushed int
}

func (pq *priorityQueue) Len() int { return len(pq.items) }

func (pq *priorityQueue) Less(i, j int) bool {
	a, b := pq.items[i], pq.items[j]
	if a.priority != b.priority {
		return a.priority < b.priority
	}
	if a.g != b.g {
		return a.g < b.g
	}
	return a.seq < b.seq
}

func (pq *priorityQueue) Swap(i, j int) {
	pq.items[i], pq.items[j] = pq.items[j], pq.items[i]
	pq.items[i].index = i
	pq.items[j].index = j
}

func (pq *priorityQueue) Push(x any) {
	item := x.(*frontierItem)
	item.index = len(pq.items)
	item.seq = pq.pushed
	pq.pushed++
	pq.items = append(pq.items, item)
}

func (pq *priorityQueue) Pop() any {
	old := pq.items
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	pq.items = old[:n-1]
	return item
}
