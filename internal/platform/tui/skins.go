package tui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/gesture-snake/internal/engine"
)

// skinTable builds the skin picker for the given view. The engine owns the
// cursor; the table only mirrors it.
func skinTable(v engine.View) table.Model {
	columns := []table.Column{
		{Title: "Skin", Width: 12},
		{Title: "Snake", Width: 16},
		{Title: "Food", Width: 16},
	}

	rows := make([]table.Row, len(v.Skins))
	for i, s := range v.Skins {
		name := s.Name
		if s.Name == v.Skin.Name {
			name += " *"
		}
		rows[i] = table.Row{name, s.Snake.String(), s.Food.String()}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(len(rows)+3),
	)

	// Table styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	t.SetCursor(v.Cursor)

	return t
}

// renderSkins renders the skin picker centered in a width x height area,
// with a preview of the highlighted skin below the table.
func renderSkins(v engine.View, width, height int) string {
	t := skinTable(v)

	preview := ""
	if v.Cursor >= 0 && v.Cursor < len(v.Skins) {
		s := v.Skins[v.Cursor]
		snakeStyle := styleFor(s.Snake)
		preview = snakeStyle.Render("▓▓▓▓▓▓██") + "    " + styleFor(s.Food).Render("●")
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render("SKINS"),
		"",
		t.View(),
		"",
		preview,
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
