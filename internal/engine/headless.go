package engine

import (
	"context"
	"time"

	"github.com/vovakirdan/gesture-snake/internal/core"
	"github.com/vovakirdan/gesture-snake/internal/games/snake"
)

// Result summarizes a finished headless run.
type Result struct {
	SessionID string
	Ticks     int
	Score     int
	Length    int
	Outcome   snake.Outcome
}

// RunHeadless plays without a terminal UI, one tick per interval, until the
// session ends, maxTicks ticks have run (0 = no limit) or ctx is cancelled.
// Input comes from the frame source only.
func (e *Engine) RunHeadless(ctx context.Context, interval time.Duration, maxTicks int) Result {
	if e.mode != ModePlaying {
		e.startGame()
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	ticks := 0
	outcome := snake.OutcomeIdle
	held := core.NewInputFrame()

loop:
	for maxTicks <= 0 || ticks < maxTicks {
		select {
		case <-ctx.Done():
			e.logger.Info("interrupted", "ticks", ticks)
			break loop
		case now := <-ticker.C:
			outcome = e.Tick(now, held)
			ticks++
			if outcome.Terminal() {
				break loop
			}
		}
	}

	res := Result{
		SessionID: e.session.ID(),
		Ticks:     ticks,
		Score:     e.session.Score(),
		Length:    e.session.Len(),
		Outcome:   outcome,
	}
	e.logger.Info("run finished",
		"session", res.SessionID,
		"ticks", res.Ticks,
		"score", res.Score,
		"length", res.Length,
		"outcome", res.Outcome,
	)
	return res
}
