// Package gameapi provides structures and utilities for managing maze session requests and responses.
package gameapi

import (
	"github.com/beka-birhanu/maze-solver-api/game/maze"
	"github.com/beka-birhanu/maze-solver-api/game/solver"
	"github.com/beka-birhanu/maze-solver-api/service/i"
	"github.com/google/uuid"
)

// CreateMazeRequest represents a request to start a new maze session.
// A zero seed asks the server to pick a random one.
type CreateMazeRequest struct {
	Width  int   `json:"width" binding:"required,min=1"`
	Height int   `json:"height" binding:"required,min=1"`
	Seed   int64 `json:"seed"`
}

// MoveRequest represents a request to step the player in a direction.
type MoveRequest struct {
	Direction string `json:"direction" binding:"required"`
}

// SolveRequest represents a request to solve a session's maze.
type SolveRequest struct {
	Algorithm string `json:"algorithm" binding:"required,oneof=bfs dfs astar"`
}

// PositionResponse represents one cell position.
type PositionResponse struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// CellResponse represents the wall configuration and markers of one cell.
type CellResponse struct {
	NorthWall bool `json:"north_wall"`
	SouthWall bool `json:"south_wall"`
	EastWall  bool `json:"east_wall"`
	WestWall  bool `json:"west_wall"`
	IsStart   bool `json:"is_start"`
	IsEnd     bool `json:"is_end"`
}

// SessionResponse represents the full state of a maze session.
type SessionResponse struct {
	ID       uuid.UUID        `json:"id"`
	Width    int              `json:"width"`
	Height   int              `json:"height"`
	Seed     int64            `json:"seed"`
	Start    PositionResponse `json:"start"`
	End      PositionResponse `json:"end"`
	Player   PositionResponse `json:"player"`
	Lives    int              `json:"lives"`
	Moves    int              `json:"moves"`
	Won      bool             `json:"won"`
	GameOver bool             `json:"game_over"`
	Grid     [][]CellResponse `json:"grid"`
}

// SolveResponse represents the path found by a pathfinding algorithm.
type SolveResponse struct {
	Algorithm string             `json:"algorithm"`
	Length    int                `json:"length"`
	Path      []PositionResponse `json:"path"`
}

// newPositionResponse converts a cell position into its response form.
func newPositionResponse(pos maze.CellPosition) PositionResponse {
	return PositionResponse{Row: pos.Row, Col: pos.Col}
}

// newSessionResponse converts a session snapshot into its response form.
func newSessionResponse(state i.SessionState) SessionResponse {
	grid := make([][]CellResponse, state.Maze.Height())
	for row := range grid {
		grid[row] = make([]CellResponse, state.Maze.Width())
		for col := range grid[row] {
			cell := state.Maze.CellAt(maze.CellPosition{Row: row, Col: col})
			grid[row][col] = CellResponse{
				NorthWall: cell.NorthWall,
				SouthWall: cell.SouthWall,
				EastWall:  cell.EastWall,
				WestWall:  cell.WestWall,
				IsStart:   cell.IsStart,
				IsEnd:     cell.IsEnd,
			}
		}
	}

	return SessionResponse{
		ID:       state.ID,
		Width:    state.Maze.Width(),
		Height:   state.Maze.Height(),
		Seed:     state.Maze.Seed(),
		Start:    newPositionResponse(state.Maze.Start()),
		End:      newPositionResponse(state.Maze.End()),
		Player:   newPositionResponse(state.Player),
		Lives:    state.Lives,
		Moves:    state.Moves,
		Won:      state.Won,
		GameOver: state.GameOver,
		Grid:     grid,
	}
}

// newSolveResponse converts a solver path into its response form.
func newSolveResponse(algorithm string, path solver.Path) SolveResponse {
	positions := make([]PositionResponse, 0, len(path))
	for _, pos := range path {
		positions = append(positions, newPositionResponse(pos))
	}
	return SolveResponse{
		Algorithm: algorithm,
		Length:    len(path),
		Path:      positions,
	}
}
