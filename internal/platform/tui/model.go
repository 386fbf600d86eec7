package tui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gesture-snake/internal/core"
	"github.com/vovakirdan/gesture-snake/internal/engine"
)

// Options configures the terminal UI.
type Options struct {
	Width, Height int    // initial terminal size, updated on resize
	ScreenshotDir string // empty: ~/.gsnake/screenshots
	Logger        *log.Logger
}

// Model is the Bubble Tea model for running gesture snake.
type Model struct {
	engine *engine.Engine
	screen *core.Screen
	keys   KeyMap
	help   help.Model
	logger *log.Logger

	// held collects direction keys pressed since the last tick.
	held core.InputFrame

	width, height int
	screenshotDir string
	status        string
	quitting      bool
}

// NewModel creates a new Bubble Tea model driving e.
func NewModel(e *engine.Engine, opts Options) *Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	dir := opts.ScreenshotDir
	if dir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			dir = filepath.Join(home, ".gsnake", "screenshots")
		}
	}

	m := &Model{
		engine:        e,
		keys:          DefaultKeyMap(),
		help:          help.New(),
		logger:        logger,
		held:          core.NewInputFrame(),
		screenshotDir: dir,
	}
	m.screen = core.NewScreen(0, 0)
	m.resize(opts.Width, opts.Height)
	return m
}

// Init starts the tick loop.
func (m *Model) Init() tea.Cmd {
	return tickCmd(m.engine.TickInterval())
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize(m.width, m.height)
		return m, nil
	}

	action := m.keys.MapKey(msg)
	if action == core.ActionNone {
		return m, nil
	}

	// While playing, direction keys are sampled at the next tick.
	if m.engine.Mode() == engine.ModePlaying && IsDirection(action) {
		m.held.Set(action)
		return m, nil
	}

	if m.engine.HandleAction(action) {
		m.quitting = true
		return m, tea.Quit
	}
	m.held.Clear()
	return m, nil
}

// handleTick runs one engine tick with the keys held since the last one.
func (m *Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.engine.Tick(now, m.held)
	m.held.Clear()
	return m, tickCmd(m.engine.TickInterval())
}

// resize updates the terminal size, reserving room for the help footer.
func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	m.help.Width = width
	boardH := max(0, height-lipgloss.Height(m.helpView()))
	m.screen.Resize(width, boardH)
}

func (m *Model) helpView() string {
	footer := m.help.View(m.keys)
	if m.status != "" {
		footer = m.status + "  " + footer
	}
	return helpStyle.Render(footer)
}

// saveScreenshot saves the current screen as plain text.
func (m *Model) saveScreenshot() {
	DrawView(m.screen, m.engine.View())

	path, err := SaveScreenshot(m.screen, m.screenshotDir, m.engine.Session().ID(), time.Now())
	if err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		m.status = "screenshot failed"
		return
	}
	m.logger.Info("screenshot saved", "path", path)
	m.status = "saved " + filepath.Base(path)
}

// SaveScreenshot writes the screen's text to dir and returns the file path.
func SaveScreenshot(s *core.Screen, dir, sessionID string, at time.Time) (string, error) {
	if dir == "" {
		return "", errors.New("tui: no screenshot directory")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: create screenshot dir: %w", err)
	}

	short := sessionID
	if len(short) > 8 {
		short = short[:8]
	}
	name := fmt.Sprintf("gsnake_%s_%s.txt", short, at.Format("20060102_150405"))
	path := filepath.Join(dir, name)

	if err := os.WriteFile(path, []byte(s.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	v := m.engine.View()

	var body string
	if v.Mode == engine.ModeSkins {
		body = renderSkins(v, m.screen.Width(), m.screen.Height())
	} else {
		DrawView(m.screen, v)
		body = RenderScreen(m.screen)
	}

	return lipgloss.JoinVertical(lipgloss.Left, body, m.helpView())
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(e *engine.Engine, opts Options) error {
	model := NewModel(e, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
