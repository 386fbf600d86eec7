// Package snake implements the snake game state machine: grid geometry,
// snake body, food placement, score and the terminal condition.
// It advances exactly once per tick and knows nothing about where direction
// proposals come from.
package snake

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"github.com/vovakirdan/gesture-snake/internal/core"
)

// FoodPoints is the score awarded per food eaten.
const FoodPoints = 10

// Minimum grid size whose starting cell (width/2, height/2) lies inside the
// play area once the right column and bottom three rows are reserved.
const (
	MinGridW = 3
	MinGridH = 7
)

// ErrInvalidGrid is returned when a session is built with unusable dimensions.
var ErrInvalidGrid = errors.New("snake: invalid grid dimensions")

// Outcome describes what a single Advance did.
type Outcome int

const (
	OutcomeIdle    Outcome = iota // Session already terminal, nothing changed
	OutcomeMoved                  // Snake moved, length unchanged
	OutcomeAte                    // Snake moved onto food and grew by one
	OutcomeHitWall                // Candidate head left the play area
	OutcomeHitSelf                // Head landed on the body after moving
)

// String returns a short name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeIdle:
		return "idle"
	case OutcomeMoved:
		return "moved"
	case OutcomeAte:
		return "ate"
	case OutcomeHitWall:
		return "hit_wall"
	case OutcomeHitSelf:
		return "hit_self"
	default:
		return "unknown"
	}
}

// Terminal reports whether the outcome ended the game.
func (o Outcome) Terminal() bool {
	return o == OutcomeHitWall || o == OutcomeHitSelf
}

// Session is one game of snake on a fixed grid.
type Session struct {
	id    string
	gridW int
	gridH int
	rng   *rand.Rand
	tick  uint64

	// Snake state
	body      []core.Point // Head at index 0
	direction core.Direction
	nextDir   core.Direction // Pending direction, committed on the next Advance

	food     core.Point
	score    int
	terminal bool
	cause    Outcome // Outcome that made the session terminal
}

// New creates a session on a gridW x gridH grid and resets it.
// The seed drives food placement so equal seeds give equal games.
func New(cfg core.RuntimeConfig) (*Session, error) {
	if cfg.GridW < MinGridW || cfg.GridH < MinGridH {
		return nil, fmt.Errorf("%w: %dx%d (minimum %dx%d)",
			ErrInvalidGrid, cfg.GridW, cfg.GridH, MinGridW, MinGridH)
	}

	s := &Session{
		gridW: cfg.GridW,
		gridH: cfg.GridH,
		rng:   rand.New(rand.NewSource(cfg.Seed)),
	}
	s.Reset()
	return s, nil
}

// Reset replaces snake, food, score and terminal flag with fresh defaults.
// The RNG keeps its stream, so successive games differ in food placement.
func (s *Session) Reset() {
	s.id = uuid.NewString()
	s.tick = 0
	s.body = []core.Point{{X: s.gridW / 2, Y: s.gridH / 2}}
	s.direction = core.DirRight
	s.nextDir = core.DirRight
	s.score = 0
	s.terminal = false
	s.cause = OutcomeIdle
	s.food = s.spawnFood()
}

// spawnFood draws a uniformly random cell from the food region.
// The draw does not avoid the body.
func (s *Session) spawnFood() core.Point {
	maxX := max(1, s.gridW-4)
	maxY := max(1, s.gridH-5)
	return core.Point{
		X: 1 + s.rng.Intn(maxX),
		Y: 1 + s.rng.Intn(maxY),
	}
}

// ProposeDirection requests a direction for the next Advance.
// A proposal opposite to the current (committed) direction is ignored.
func (s *Session) ProposeDirection(d core.Direction) {
	if !d.Valid() || d.IsOpposite(s.direction) {
		return
	}
	s.nextDir = d
}

// PlayArea returns the rectangle of cells the head may occupy.
func (s *Session) PlayArea() core.Rect {
	return core.NewRect(0, 0, s.gridW-1, s.gridH-3)
}

// InBounds reports whether p lies inside the play area:
// x in [0, width-2] and y in [0, height-4].
func (s *Session) InBounds(p core.Point) bool {
	return s.PlayArea().Contains(p.X, p.Y)
}

// Advance performs the single per-tick transition.
func (s *Session) Advance() Outcome {
	if s.terminal {
		return OutcomeIdle
	}
	s.tick++

	dx, dy := s.nextDir.Vector()
	next := s.body[0].Add(dx, dy)

	if !s.InBounds(next) {
		s.end(OutcomeHitWall)
		return OutcomeHitWall
	}

	s.direction = s.nextDir
	s.body = append(s.body, core.Point{})
	copy(s.body[1:], s.body)
	s.body[0] = next

	outcome := OutcomeMoved
	if next == s.food {
		s.score += FoodPoints
		s.food = s.spawnFood()
		outcome = OutcomeAte
	} else {
		s.body = s.body[:len(s.body)-1]
	}

	// Collision is detected after the move; the move stays applied.
	for _, seg := range s.body[1:] {
		if seg == next {
			s.end(OutcomeHitSelf)
			return OutcomeHitSelf
		}
	}

	return outcome
}

func (s *Session) end(cause Outcome) {
	s.terminal = true
	s.cause = cause
}

// ID returns the identifier of the current game, renewed on every Reset.
func (s *Session) ID() string {
	return s.id
}

// Head returns the head cell.
func (s *Session) Head() core.Point {
	return s.body[0]
}

// Len returns the number of body cells.
func (s *Session) Len() int {
	return len(s.body)
}

// Direction returns the committed direction.
func (s *Session) Direction() core.Direction {
	return s.direction
}

// PendingDirection returns the direction the next Advance will use.
func (s *Session) PendingDirection() core.Direction {
	return s.nextDir
}

// Food returns the food cell.
func (s *Session) Food() core.Point {
	return s.food
}

// Score returns the current score.
func (s *Session) Score() int {
	return s.score
}

// Terminal reports whether the game is over.
func (s *Session) Terminal() bool {
	return s.terminal
}

// GridSize returns the grid dimensions.
func (s *Session) GridSize() (w, h int) {
	return s.gridW, s.gridH
}
