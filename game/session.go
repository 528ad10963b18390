package game

import (
	"errors"
	"fmt"
	"time"

	"github.com/beka-birhanu/maze-game/maze"
	"github.com/google/uuid"
)

// Session-related errors.
var (
	ErrInvalidMove = errors.New("invalid move request")
	ErrNotPlaying  = errors.New("session is not accepting moves")
)

// State is the phase a session is in.
type State int

const (
	StateMenu State = iota
	StatePlaying
	StateWon
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StateWon:
		return "won"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Session drives one single-player game: it owns the board, the player, the
// move counter, and the clock. A session starts in the menu; Start enters
// play, reaching the goal enters the won state, and Restart replaces the
// board wholesale with a fresh one at the same difficulty.
type Session struct {
	id         uuid.UUID
	newBoard   BoardFunc
	board      Board
	player     *Player
	difficulty maze.Difficulty
	state      State
	moves      int
	startedAt  time.Time
	finalTime  time.Duration
	now        func() time.Time
}

// SessionOption configures a Session at construction time.
type SessionOption func(*Session)

// WithClock substitutes the time source, for deterministic elapsed-time
// tests.
func WithClock(now func() time.Time) SessionOption {
	return func(s *Session) {
		s.now = now
	}
}

// NewSession creates a session in the menu state. newBoard supplies a
// generated board on every start and restart; pass NewBoard for the default
// behavior.
func NewSession(newBoard BoardFunc, opts ...SessionOption) *Session {
	s := &Session{
		id:       uuid.New(),
		newBoard: newBoard,
		state:    StateMenu,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ID returns the session's identifier.
func (s *Session) ID() uuid.UUID { return s.id }

// State returns the session's current phase.
func (s *Session) State() State { return s.state }

// Board returns the current board, nil before the first Start.
func (s *Session) Board() Board { return s.board }

// Player returns the current player token, nil before the first Start.
func (s *Session) Player() *Player { return s.player }

// Moves returns the number of accepted moves since the last start.
func (s *Session) Moves() int { return s.moves }

// Difficulty returns the level of the current or most recent game.
func (s *Session) Difficulty() maze.Difficulty { return s.difficulty }

// Start builds a fresh board at the given difficulty, places the player on
// its start position, and enters the playing state.
func (s *Session) Start(difficulty maze.Difficulty) {
	s.difficulty = difficulty
	s.board = s.newBoard(difficulty)
	s.player = NewPlayer(s.board.StartPos())
	s.state = StatePlaying
	s.moves = 0
	s.startedAt = s.now()
	s.finalTime = 0
}

// Restart replays the same difficulty on a new board.
func (s *Session) Restart() {
	s.Start(s.difficulty)
}

// ToMenu abandons the current game and returns to the menu.
func (s *Session) ToMenu() {
	s.state = StateMenu
}

// HandleMove validates and applies one step. It returns ErrNotPlaying
// outside the playing state and ErrInvalidMove when the board rejects the
// step; in both cases nothing changes. Reaching the goal freezes the clock
// and moves the session to the won state.
func (s *Session) HandleMove(dir maze.Direction) error {
	if s.state != StatePlaying {
		return ErrNotPlaying
	}
	if !s.board.IsValidMove(s.player.Position(), dir) {
		return ErrInvalidMove
	}

	s.player.Move(dir)
	s.moves++

	if s.player.Position() == s.board.GoalPos() {
		s.finalTime = s.now().Sub(s.startedAt)
		s.state = StateWon
	}
	return nil
}

// Elapsed returns the time spent in the current game. It keeps counting
// while playing, is frozen at the winning move once won, and is zero in the
// menu.
func (s *Session) Elapsed() time.Duration {
	switch s.state {
	case StatePlaying:
		return s.now().Sub(s.startedAt)
	case StateWon:
		return s.finalTime
	default:
		return 0
	}
}

// FormatElapsed renders a duration as MM:SS.t, truncating to tenths of a
// second. Negative durations render as zero.
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	tenths := int(d / (time.Second / 10))
	minutes := tenths / 600
	seconds := tenths / 10 % 60
	return fmt.Sprintf("%02d:%02d.%d", minutes, seconds, tenths%10)
}
