package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gesture-snake/internal/config"
	"github.com/vovakirdan/gesture-snake/internal/core"
	"github.com/vovakirdan/gesture-snake/internal/engine"
)

func TestModelDefaultConfigFitsTerminal(t *testing.T) {
	sizes := []struct{ w, h int }{{80, 24}, {120, 30}, {120, 40}}

	for _, size := range sizes {
		e, err := engine.New(engine.Options{Config: config.Default()})
		if err != nil {
			t.Fatalf("engine.New() failed: %v", err)
		}
		m := NewModel(e, Options{Width: size.w, Height: size.h})

		if out := m.View(); !strings.Contains(out, "Start Game") {
			t.Errorf("%dx%d: main menu not visible:\n%s", size.w, size.h, out)
		}

		m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		if e.Mode() != engine.ModePlaying {
			t.Errorf("%dx%d: enter should start the game, mode = %v", size.w, size.h, e.Mode())
		}
	}
}

func TestModelSteersOnTick(t *testing.T) {
	e := newTestEngine(t, engine.ModePlaying)
	m := NewModel(e, Options{Width: 40, Height: 14, ScreenshotDir: t.TempDir()})

	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	if e.Session().Direction() != core.DirRight {
		t.Error("keys must not steer before the tick")
	}

	m.Update(TickMsg(time.Now()))
	if e.Session().Direction() != core.DirUp {
		t.Errorf("direction after tick = %v, expected up", e.Session().Direction())
	}

	// The held snapshot is cleared after each tick.
	m.Update(TickMsg(time.Now()))
	if e.Session().Direction() != core.DirUp {
		t.Error("direction should stay up without new keys")
	}
}

func TestModelMenuAndQuit(t *testing.T) {
	e := newTestEngine(t, engine.ModeMenu)
	m := NewModel(e, Options{Width: 40, Height: 14})

	if !strings.Contains(m.View(), "Start Game") {
		t.Error("menu should be visible")
	}

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if e.Mode() != engine.ModePlaying {
		t.Fatalf("enter should start the game, mode = %v", e.Mode())
	}

	_, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit should return tea.Quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelSkinsView(t *testing.T) {
	e := newTestEngine(t, engine.ModeMenu)
	m := NewModel(e, Options{Width: 60, Height: 20})

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if e.Mode() != engine.ModeSkins {
		t.Fatalf("mode = %v, expected skins", e.Mode())
	}

	out := m.View()
	for _, want := range []string{"SKINS", "classic *", "neon", "retro", "bright_green"} {
		if !strings.Contains(out, want) {
			t.Errorf("skins view should contain %q", want)
		}
	}
}
