package gesture

import (
	"math"
	"time"

	"github.com/vovakirdan/gesture-snake/internal/core"
)

// Defaults for the classifier.
const (
	DefaultCooldown    = 100 * time.Millisecond
	DefaultHistorySize = 5
)

// Options configures a Classifier.
type Options struct {
	// Cooldown is the minimum interval between two emitted directions.
	// A hand seen at exactly Cooldown after the last emission is still suppressed.
	Cooldown time.Duration

	// HistorySize bounds the hand-presence history.
	HistorySize int
}

// DefaultOptions returns the classifier defaults (100ms cooldown, 5 frames of history).
func DefaultOptions() Options {
	return Options{
		Cooldown:    DefaultCooldown,
		HistorySize: DefaultHistorySize,
	}
}

// Classifier turns landmark samples into rate-limited directions.
// It is not safe for concurrent use; the tick driver owns it.
type Classifier struct {
	cooldown time.Duration
	lastEmit time.Time

	// Wrist positions of consecutive frames with a hand, oldest first.
	history     []Point3D
	historySize int
}

// NewClassifier creates a classifier. Non-positive history sizes fall back
// to the default; a negative cooldown is treated as zero.
func NewClassifier(opts Options) *Classifier {
	if opts.HistorySize <= 0 {
		opts.HistorySize = DefaultHistorySize
	}
	if opts.Cooldown < 0 {
		opts.Cooldown = 0
	}
	return &Classifier{
		cooldown:    opts.Cooldown,
		historySize: opts.HistorySize,
		history:     make([]Point3D, 0, opts.HistorySize),
	}
}

// Classify processes one sample taken at now and returns the direction to
// emit, if any.
//
// Losing the hand clears the presence history but leaves the last emission
// time alone, so a gesture right after the hand comes back can still fall
// inside the cooldown window that started before it was lost.
func (c *Classifier) Classify(s Sample, now time.Time) (core.Direction, bool) {
	hand, ok := s.Hand()
	if !ok {
		c.history = c.history[:0]
		return 0, false
	}

	c.remember(hand[Wrist])

	if !c.lastEmit.IsZero() && now.Sub(c.lastEmit) <= c.cooldown {
		return 0, false
	}

	angle := ThumbAngle(hand)
	if math.IsNaN(angle) {
		return 0, false
	}

	c.lastEmit = now
	return DirectionForAngle(angle), true
}

func (c *Classifier) remember(p Point3D) {
	if len(c.history) == c.historySize {
		copy(c.history, c.history[1:])
		c.history = c.history[:len(c.history)-1]
	}
	c.history = append(c.history, p)
}

// Tracking reports whether the last sample contained a hand.
func (c *Classifier) Tracking() bool {
	return len(c.history) > 0
}

// HistoryLen returns the number of consecutive hand frames remembered.
func (c *Classifier) HistoryLen() int {
	return len(c.history)
}

// LastEmission returns the time of the last emitted direction (zero if none).
func (c *Classifier) LastEmission() time.Time {
	return c.lastEmit
}

// Cooldown returns the configured rate limit.
func (c *Classifier) Cooldown() time.Duration {
	return c.cooldown
}
