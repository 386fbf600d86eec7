// Package engine drives one gesture snake game: it owns the session, the
// gesture classifier and the menu state, and performs exactly one game
// step per tick.
package engine

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gesture-snake/internal/config"
	"github.com/vovakirdan/gesture-snake/internal/core"
	"github.com/vovakirdan/gesture-snake/internal/games/snake"
	"github.com/vovakirdan/gesture-snake/internal/gesture"
	"github.com/vovakirdan/gesture-snake/internal/sensing"
)

// FrameSource delivers landmark frames. Read must not block.
type FrameSource interface {
	Read() (gesture.Frame, bool)
}

// LandmarkProvider extracts the hand sample from a frame.
type LandmarkProvider interface {
	Detect(gesture.Frame) gesture.Sample
}

// Options configures an Engine.
type Options struct {
	Config   config.Config
	Source   FrameSource      // nil: keyboard only
	Provider LandmarkProvider // nil: first hand, mirrored per config
	Logger   *log.Logger      // nil: discard
	Mode     Mode             // initial mode, ModeMenu or ModePlaying
}

// Engine is the single tick driver. It is not safe for concurrent use.
type Engine struct {
	cfg        config.Config
	session    *snake.Session
	classifier *gesture.Classifier
	source     FrameSource
	provider   LandmarkProvider
	logger     *log.Logger

	skins []config.Skin
	skin  int

	mode   Mode
	cursor int

	tracking    bool
	lastGesture core.Direction
	hasGesture  bool
	lastOutcome snake.Outcome
	tick        uint64
}

// New creates an engine. The config must be valid; a zero seed is replaced
// with a time based one.
func New(opts Options) (*Engine, error) {
	cfg := opts.Config
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	skins, err := cfg.ResolveSkins()
	if err != nil {
		return nil, err
	}

	rc := cfg.Runtime()
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}
	session, err := snake.New(rc)
	if err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	source := opts.Source
	if source == nil {
		source = sensing.NoneSource{}
	}
	provider := opts.Provider
	if provider == nil {
		provider = sensing.NewHandProvider(cfg.Gesture.MirrorInput)
	}

	e := &Engine{
		cfg:     cfg,
		session: session,
		classifier: gesture.NewClassifier(gesture.Options{
			Cooldown:    cfg.Gesture.Cooldown,
			HistorySize: cfg.Gesture.HistorySize,
		}),
		source:   source,
		provider: provider,
		logger:   logger,
		skins:    skins,
		skin:     cfg.SkinIndex(cfg.Skin),
		mode:     ModeMenu,
	}
	if opts.Mode == ModePlaying {
		e.startGame()
	}
	return e, nil
}

// Tick performs one tick at time now. held is the snapshot of navigation
// keys pressed since the previous tick.
//
// In order: read one frame, classify it, merge the gesture with the held
// keys into at most one proposal (keys win), advance the session once. The
// session only moves while playing; frames are still consumed in the menus
// so the hand indicator stays current.
func (e *Engine) Tick(now time.Time, held core.InputFrame) snake.Outcome {
	e.tick++

	var sample gesture.Sample
	frame, ok := e.source.Read()
	if ok {
		sample = e.provider.Detect(frame)
		_, e.tracking = sample.Hand()
	}

	if e.mode != ModePlaying {
		return snake.OutcomeIdle
	}

	var (
		proposal    core.Direction
		hasProposal bool
	)

	if ok {
		if d, emitted := e.classifier.Classify(sample, now); emitted {
			if e.cfg.Gesture.Reverse {
				d = d.Opposite()
			}
			e.lastGesture, e.hasGesture = d, true
			proposal, hasProposal = d, true
			e.logger.Debug("gesture", "dir", d, "frame", frame.Seq)
		}
	}

	if d, pressed := ResolveHeld(e.session.Direction(), held); pressed {
		proposal, hasProposal = d, true
	}

	if hasProposal {
		e.session.ProposeDirection(proposal)
	}

	outcome := e.session.Advance()
	e.lastOutcome = outcome
	e.logger.Debug("tick", "n", e.tick, "outcome", outcome, "head", e.session.Head(), "score", e.session.Score())

	if outcome.Terminal() {
		e.mode = ModeGameOver
		e.cursor = 0
		e.logger.Info("game over",
			"session", e.session.ID(),
			"reason", outcome,
			"score", e.session.Score(),
			"length", e.session.Len(),
		)
	}
	return outcome
}

// ResolveHeld picks the key proposal from the held snapshot: the first of
// up, down, left, right that is held and not opposite to current.
func ResolveHeld(current core.Direction, held core.InputFrame) (core.Direction, bool) {
	for _, d := range core.Directions {
		if held.Has(core.DirectionAction(d)) && !d.IsOpposite(current) {
			return d, true
		}
	}
	return 0, false
}

// HandleAction applies a discrete menu action. It returns true when the
// program should exit.
func (e *Engine) HandleAction(a core.Action) (quit bool) {
	if a == core.ActionQuit {
		return true
	}

	switch e.mode {
	case ModeMenu:
		switch a {
		case core.ActionUp:
			e.cursor = wrap(e.cursor-1, len(MainMenuItems))
		case core.ActionDown:
			e.cursor = wrap(e.cursor+1, len(MainMenuItems))
		case core.ActionConfirm:
			if e.cursor == menuStart {
				e.startGame()
			} else {
				e.mode = ModeSkins
				e.cursor = e.skin
			}
		case core.ActionBack:
			return true
		}

	case ModeSkins:
		switch a {
		case core.ActionUp:
			e.cursor = wrap(e.cursor-1, len(e.skins))
		case core.ActionDown:
			e.cursor = wrap(e.cursor+1, len(e.skins))
		case core.ActionConfirm:
			e.skin = e.cursor
			e.logger.Info("skin selected", "skin", e.skins[e.skin].Name)
			e.toMenu(menuSkins)
		case core.ActionBack:
			e.toMenu(menuSkins)
		}

	case ModePlaying:
		if a == core.ActionBack {
			e.toMenu(menuStart)
		}

	case ModeGameOver:
		switch a {
		case core.ActionUp:
			e.cursor = wrap(e.cursor-1, len(GameOverMenuItems))
		case core.ActionDown:
			e.cursor = wrap(e.cursor+1, len(GameOverMenuItems))
		case core.ActionConfirm:
			if e.cursor == overPlayAgain {
				e.startGame()
			} else {
				e.toMenu(menuStart)
			}
		}
	}
	return false
}

func (e *Engine) startGame() {
	e.session.Reset()
	e.mode = ModePlaying
	e.cursor = 0
	e.lastOutcome = snake.OutcomeIdle
	e.hasGesture = false
	e.logger.Info("session started", "session", e.session.ID(), "skin", e.skins[e.skin].Name)
}

func (e *Engine) toMenu(cursor int) {
	e.mode = ModeMenu
	e.cursor = cursor
}

func wrap(i, n int) int {
	if n <= 0 {
		return 0
	}
	return ((i % n) + n) % n
}

// Mode returns the current mode.
func (e *Engine) Mode() Mode { return e.mode }

// Session exposes the game session.
func (e *Engine) Session() *snake.Session { return e.session }

// Skin returns the active skin.
func (e *Engine) Skin() config.Skin { return e.skins[e.skin] }

// TickInterval returns the configured tick duration.
func (e *Engine) TickInterval() time.Duration { return e.cfg.TickInterval() }
