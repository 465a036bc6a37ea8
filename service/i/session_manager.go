package i

import (
	"github.com/beka-birhanu/maze-solver-api/game/maze"
	"github.com/beka-birhanu/maze-solver-api/game/solver"
	"github.com/google/uuid"
)

// SessionState is a snapshot of one maze play session.
type SessionState struct {
	ID       uuid.UUID         // Session identifier
	Maze     Maze              // Read-only view of the session's maze
	Player   maze.CellPosition // Current player position
	Lives    int               // Lives left before the game is lost
	Moves    int               // Valid moves made so far
	Won      bool              // True once the player reached the end
	GameOver bool              // True once the game is won or lost
}

// MazeSessionManager manages maze play sessions and provides
// session-related operations.
type MazeSessionManager interface {
	// NewSession generates a maze of the given dimensions from the given
	// seed and starts a play session on it. A zero seed means a random
	// one.
	NewSession(width, height int, seed int64) (SessionState, error)

	// Session returns a snapshot of the session with the given ID.
	Session(id uuid.UUID) (SessionState, error)

	// Move steps the session's player in the given direction, applying
	// backtrack penalties, and returns the resulting snapshot.
	Move(id uuid.UUID, d maze.Direction) (SessionState, error)

	// Solve runs the given algorithm over the session's maze and returns
	// the path it found. The session itself is left untouched.
	Solve(id uuid.UUID, a solver.Algorithm) (solver.Path, error)

	// EndSession drops the session with the given ID.
	EndSession(id uuid.UUID) error
}
