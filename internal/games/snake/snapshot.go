package snake

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/gesture-snake/internal/core"
)

// StateType represents the session state for display and logging.
type StateType string

const (
	StatePlaying  StateType = "playing"
	StateGameOver StateType = "game_over"
)

// Snapshot is an immutable copy of the session, safe to hand to the
// presentation layer and to compare in determinism tests.
type Snapshot struct {
	SessionID string
	Tick      uint64
	GridW     int
	GridH     int
	PlayArea  core.Rect
	Score     int
	Body      []core.Point // Head first
	Dir       core.Direction
	Pending   core.Direction
	Food      core.Point
	State     StateType
	Cause     Outcome // Terminal cause, OutcomeIdle while playing
}

// Head returns the head cell of the snapshot.
func (s Snapshot) Head() core.Point {
	if len(s.Body) == 0 {
		return core.Point{}
	}
	return s.Body[0]
}

// Snapshot returns a copy of the current session state.
func (s *Session) Snapshot() Snapshot {
	state := StatePlaying
	if s.terminal {
		state = StateGameOver
	}

	body := make([]core.Point, len(s.body))
	copy(body, s.body)

	return Snapshot{
		SessionID: s.id,
		Tick:      s.tick,
		GridW:     s.gridW,
		GridH:     s.gridH,
		PlayArea:  s.PlayArea(),
		Score:     s.score,
		Body:      body,
		Dir:       s.direction,
		Pending:   s.nextDir,
		Food:      s.food,
		State:     state,
		Cause:     s.cause,
	}
}

// DebugState returns a string representation of the session state.
func (s *Session) DebugState() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Session: %s, Tick: %d, Score: %d\n", s.id, s.tick, s.score))
	b.WriteString(fmt.Sprintf("Snake len: %d, Direction: %s, Pending: %s\n", len(s.body), s.direction, s.nextDir))
	b.WriteString(fmt.Sprintf("Head: %s, Food: %s\n", s.body[0], s.food))
	b.WriteString(fmt.Sprintf("Terminal: %v (%s)\n", s.terminal, s.cause))
	return b.String()
}
