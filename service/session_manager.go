package service

import (
	"errors"
	"log"
	"sync"

	"github.com/beka-birhanu/maze-solver-api/config"
	"github.com/beka-birhanu/maze-solver-api/game/maze"
	"github.com/beka-birhanu/maze-solver-api/game/solver"
	"github.com/beka-birhanu/maze-solver-api/service/i"
	"github.com/google/uuid"
)

const (
	defaultLives        = 3  // lives a new session starts with
	backtrackWindow     = 5  // re-entering one of this many recent trail cells costs a life
	defaultMaxDimension = 50 // upper bound on maze width/height per session

	// A trail longer than trailBoundFactor times the maze area means the
	// player is wandering; it costs a life and resets them to the start.
	trailBoundFactor = 2
)

// Session-related errors.
var (
	ErrNoSession         = errors.New("no session")
	ErrGameOver          = errors.New("game is over")
	ErrInvalidMove       = errors.New("invalid move request")
	ErrDimensionTooLarge = errors.New("maze dimension too large")
)

// mazeSession is the play state of one maze, guarded by the manager lock.
type mazeSession struct {
	maze     i.Maze
	player   maze.CellPosition
	trail    []maze.CellPosition // positions the player has left, oldest first
	lives    int
	moves    int
	won      bool
	gameOver bool
}

// MazeSessionManager owns all live maze play sessions. Mazes are generated
// through an injected factory so tests can pin seeds and sizes.
type MazeSessionManager struct {
	sessions     map[uuid.UUID]*mazeSession
	mazeFactory  func(width, height int, seed int64) (i.Maze, error)
	maxDimension int
	logger       *log.Logger
	sync.RWMutex
}

// Config holds the dependencies for creating a MazeSessionManager.
type Config struct {
	MazeFactory  func(width, height int, seed int64) (i.Maze, error)
	MaxDimension int // zero means the default
	Logger       *log.Logger
}

// NewMazeSessionManager creates a MazeSessionManager from the given
// configuration.
func NewMazeSessionManager(c *Config) (*MazeSessionManager, error) {
	if c.MazeFactory == nil {
		return nil, errors.New("maze factory is required")
	}

	maxDimension := c.MaxDimension
	if maxDimension <= 0 {
		maxDimension = defaultMaxDimension
	}

	logger := c.Logger
	if logger == nil {
		logger = log.Default()
	}

	return &MazeSessionManager{
		sessions:     make(map[uuid.UUID]*mazeSession),
		mazeFactory:  c.MazeFactory,
		maxDimension: maxDimension,
		logger:       logger,
	}, nil
}

// NewSession generates a maze and starts a play session on it.
func (m *MazeSessionManager) NewSession(width, height int, seed int64) (i.SessionState, error) {
	if max(width, height) > m.maxDimension {
		return i.SessionState{}, ErrDimensionTooLarge
	}

	mz, err := m.mazeFactory(width, height, seed)
	if err != nil {
		m.logger.Printf("%s[ERROR]%s creating maze for a new session: %s", config.LogErrorColor, config.LogColorReset, err)
		return i.SessionState{}, err
	}

	m.Lock()
	defer m.Unlock()

	session := &mazeSession{
		maze:   mz,
		player: mz.Start(),
		lives:  defaultLives,
	}
	id := m.saveSession(session)

	m.logger.Printf("%s[INFO]%s started session %s on a %dx%d maze (seed %d)", config.LogInfoColor, config.LogColorReset, id, width, height, mz.Seed())
	return m.snapshot(id, session), nil
}

// Session returns a snapshot of the session with the given ID.
func (m *MazeSessionManager) Session(id uuid.UUID) (i.SessionState, error) {
	m.RLock()
	defer m.RUnlock()

	session, ok := m.sessions[id]
	if !ok {
		return i.SessionState{}, ErrNoSession
	}
	return m.snapshot(id, session), nil
}

// Move steps the session's player in the given direction. A move blocked
// by a wall or the maze boundary is rejected without penalty; backtracking
// into recently left cells and runaway wandering cost lives.
func (m *MazeSessionManager) Move(id uuid.UUID, d maze.Direction) (i.SessionState, error) {
	m.Lock()
	defer m.Unlock()

	session, ok := m.sessions[id]
	if !ok {
		return i.SessionState{}, ErrNoSession
	}
	if session.gameOver {
		return i.SessionState{}, ErrGameOver
	}
	if !session.maze.IsValidMove(session.player, d) {
		return i.SessionState{}, ErrInvalidMove
	}

	from := session.player
	dr, dc := d.Delta()
	session.player = maze.CellPosition{Row: from.Row + dr, Col: from.Col + dc}
	session.trail = append(session.trail, from)
	session.moves++

	if session.player == session.maze.End() {
		session.won = true
		session.gameOver = true
		m.logger.Printf("%s[INFO]%s session %s reached the end in %d moves", config.LogInfoColor, config.LogColorReset, id, session.moves)
	} else {
		session.applyTrailPenalties()
		if session.gameOver {
			m.logger.Printf("%s[INFO]%s session %s ran out of lives", config.LogInfoColor, config.LogColorReset, id)
		}
	}

	return m.snapshot(id, session), nil
}

// Solve runs the given algorithm over the session's maze. The play state
// is left untouched.
func (m *MazeSessionManager) Solve(id uuid.UUID, a solver.Algorithm) (solver.Path, error) {
	m.RLock()
	session, ok := m.sessions[id]
	m.RUnlock()
	if !ok {
		return nil, ErrNoSession
	}

	pathFinder, err := solver.New(a)
	if err != nil {
		return nil, err
	}

	// Solvers only read the maze, which is immutable after generation, so
	// no lock is held while searching.
	path := pathFinder.Solve(session.maze)
	m.logger.Printf("%s[INFO]%s solved session %s with %s: %d steps", config.LogInfoColor, config.LogColorReset, id, a, len(path))
	return path, nil
}

// EndSession drops the session with the given ID.
func (m *MazeSessionManager) EndSession(id uuid.UUID) error {
	m.Lock()
	defer m.Unlock()

	if _, ok := m.sessions[id]; !ok {
		return ErrNoSession
	}
	delete(m.sessions, id)
	m.logger.Printf("%s[INFO]%s ended session %s", config.LogInfoColor, config.LogColorReset, id)
	return nil
}

// saveSession stores a session under a fresh ID. Caller must hold the
// write lock.
func (m *MazeSessionManager) saveSession(session *mazeSession) uuid.UUID {
	id := uuid.New()
	for {
		if _, ok := m.sessions[id]; !ok {
			break
		}
		id = uuid.New()
	}
	m.sessions[id] = session
	return id
}

// snapshot builds a SessionState for the given session. Caller must hold
// at least the read lock.
func (m *MazeSessionManager) snapshot(id uuid.UUID, session *mazeSession) i.SessionState {
	return i.SessionState{
		ID:       id,
		Maze:     session.maze,
		Player:   session.player,
		Lives:    session.lives,
		Moves:    session.moves,
		Won:      session.won,
		GameOver: session.gameOver,
	}
}

// applyTrailPenalties charges the player for backtracking into one of the
// recently left cells and for wandering far beyond the maze area. Entering
// an old trail cell truncates the trail back to its first visit; a runaway
// trail resets the player to the start.
func (s *mazeSession) applyTrailPenalties() {
	if len(s.trail) < 2 {
		return
	}

	left := s.trail[:len(s.trail)-1]
	revisit := -1
	for idx, pos := range left {
		if pos == s.player {
			revisit = idx
			break
		}
	}

	switch {
	case revisit >= 0:
		// The window test is by membership, not by first-occurrence
		// index: a cell can sit in the trail twice once a truncation
		// kept its first visit, and re-entering it is still recent
		// backtracking.
		windowStart := len(left) - backtrackWindow
		if windowStart < 0 {
			windowStart = 0
		}
		for _, pos := range left[windowStart:] {
			if pos == s.player {
				s.loseLife()
				s.trail = s.trail[:revisit+1]
				break
			}
		}
	case len(s.trail) > s.maze.Width()*s.maze.Height()*trailBoundFactor:
		s.loseLife()
		s.trail = nil
		s.player = s.maze.Start()
	}
}

func (s *mazeSession) loseLife() {
	s.lives--
	if s.lives <= 0 {
		s.gameOver = true
	}
}
