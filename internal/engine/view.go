package engine

import (
	"github.com/vovakirdan/gesture-snake/internal/config"
	"github.com/vovakirdan/gesture-snake/internal/core"
	"github.com/vovakirdan/gesture-snake/internal/games/snake"
)

// View is everything a renderer needs for one frame.
type View struct {
	Mode     Mode
	Game     snake.Snapshot
	Items    []string // entries of the active menu, nil while playing
	Cursor   int
	Skin     config.Skin
	Skins    []config.Skin
	Tracking bool

	LastGesture core.Direction
	HasGesture  bool
	LastOutcome snake.Outcome
}

// View captures the current state.
func (e *Engine) View() View {
	v := View{
		Mode:        e.mode,
		Game:        e.session.Snapshot(),
		Cursor:      e.cursor,
		Skin:        e.skins[e.skin],
		Skins:       append([]config.Skin(nil), e.skins...),
		Tracking:    e.tracking,
		LastGesture: e.lastGesture,
		HasGesture:  e.hasGesture,
		LastOutcome: e.lastOutcome,
	}

	switch e.mode {
	case ModeMenu:
		v.Items = MainMenuItems
	case ModeSkins:
		v.Items = make([]string, len(e.skins))
		for i, s := range e.skins {
			v.Items[i] = s.Name
		}
	case ModeGameOver:
		v.Items = GameOverMenuItems
	}
	return v
}
