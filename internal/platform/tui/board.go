package tui

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/gesture-snake/internal/core"
	"github.com/vovakirdan/gesture-snake/internal/engine"
	"github.com/vovakirdan/gesture-snake/internal/games/snake"
)

// Glyphs used on the board.
const (
	glyphHead   = '█'
	glyphBody   = '▓'
	glyphFood   = '●'
	glyphHand   = '●'
	glyphNoHand = '○'
)

// hudRows is the number of screen rows above the board.
const hudRows = 1

// Layout places the play area on the screen.
type Layout struct {
	Origin core.Point // top-left corner of the border
	CellW  int        // screen columns per grid cell (1 or 2)
	Cols   int        // play area columns
	Rows   int        // play area rows
}

// Border returns the rectangle of the play area border.
func (l Layout) Border() core.Rect {
	return core.NewRect(l.Origin.X, l.Origin.Y, l.Cols*l.CellW+2, l.Rows+2)
}

// CellPos converts a grid cell to its leftmost screen position.
func (l Layout) CellPos(p core.Point) (x, y int) {
	return l.Origin.X + 1 + p.X*l.CellW, l.Origin.Y + 1 + p.Y
}

// MinSize returns the smallest screen that can show a play area of the
// given size with single-width cells.
func MinSize(area core.Rect) (w, h int) {
	return area.W + 2, area.H + 2 + hudRows
}

// ComputeLayout fits the play area into a screen. Cells are drawn two
// columns wide when there is room, so the board looks roughly square.
func ComputeLayout(screenW, screenH int, area core.Rect) (Layout, bool) {
	minW, minH := MinSize(area)
	if screenW < minW || screenH < minH {
		return Layout{}, false
	}

	cellW := 1
	if area.W*2+2 <= screenW {
		cellW = 2
	}
	boardW := area.W*cellW + 2
	return Layout{
		Origin: core.Point{X: (screenW - boardW) / 2, Y: hudRows},
		CellW:  cellW,
		Cols:   area.W,
		Rows:   area.H,
	}, true
}

// DrawView renders a complete engine view into the screen buffer.
func DrawView(s *core.Screen, v engine.View) {
	s.Clear()

	layout, ok := ComputeLayout(s.Width(), s.Height(), v.Game.PlayArea)
	overlay := v.Mode == engine.ModeMenu || v.Mode == engine.ModeGameOver
	switch {
	case ok:
		drawHUD(s, v)
		drawBoard(s, layout, v)
	case !overlay:
		drawTooSmall(s, v.Game.PlayArea)
		return
	}

	// Menus stay usable when the board does not fit.
	switch v.Mode {
	case engine.ModeMenu:
		var info []string
		if !ok {
			w, h := MinSize(v.Game.PlayArea)
			info = []string{fmt.Sprintf("Board needs %dx%d", w, h)}
		}
		drawMenu(s, "GESTURE SNAKE", info, v.Items, v.Cursor)
	case engine.ModeGameOver:
		info := []string{
			fmt.Sprintf("Score: %d", v.Game.Score),
			fmt.Sprintf("Length: %d", len(v.Game.Body)),
			causeText(v.Game.Cause),
		}
		drawMenu(s, "GAME OVER", info, v.Items, v.Cursor)
	}
}

func drawHUD(s *core.Screen, v engine.View) {
	x := 1
	put := func(text string, c core.Color) {
		s.DrawText(x, 0, text, c)
		x += len([]rune(text))
	}

	put(fmt.Sprintf("Score: %d", v.Game.Score), core.ColorBrightWhite)
	put(fmt.Sprintf("  Length: %d", len(v.Game.Body)), core.ColorWhite)
	put("  Skin: ", core.ColorWhite)
	put(v.Skin.Name, v.Skin.Snake)

	put("  Hand: ", core.ColorWhite)
	if v.Tracking {
		put(string(glyphHand)+" tracked", core.ColorBrightGreen)
	} else {
		put(string(glyphNoHand)+" none", core.ColorGray)
	}

	gestureText := "-"
	if v.HasGesture {
		gestureText = v.LastGesture.String()
	}
	put("  Gesture: "+gestureText, core.ColorCyan)
}

func drawBoard(s *core.Screen, l Layout, v engine.View) {
	s.DrawBox(l.Border(), core.ColorGray)

	area := v.Game.PlayArea
	plot := func(p core.Point, r rune, c core.Color) {
		if !area.Contains(p.X, p.Y) {
			return
		}
		x, y := l.CellPos(p)
		for i := 0; i < l.CellW; i++ {
			s.SetColored(x+i, y, r, c)
		}
	}

	// Food keeps a single glyph per cell so it reads as a dot.
	if area.Contains(v.Game.Food.X, v.Game.Food.Y) {
		x, y := l.CellPos(v.Game.Food)
		s.SetColored(x, y, glyphFood, v.Skin.Food)
	}

	// Tail first so the head is drawn on top after a self collision.
	for i := len(v.Game.Body) - 1; i >= 1; i-- {
		plot(v.Game.Body[i], glyphBody, v.Skin.Snake)
	}
	if len(v.Game.Body) > 0 {
		plot(v.Game.Body[0], glyphHead, v.Skin.Snake)
	}
}

// drawMenu draws a centered box with a title, optional info lines and
// selectable items.
func drawMenu(s *core.Screen, title string, info, items []string, cursor int) {
	width := len([]rune(title))
	for _, line := range append(append([]string(nil), info...), items...) {
		width = max(width, len([]rune(line))+2)
	}
	width += 6

	height := 4 + len(items)
	if len(info) > 0 {
		height += len(info) + 1
	}

	box := core.NewRect((s.Width()-width)/2, (s.Height()-height)/2, width, height)
	s.FillRect(box, ' ', core.ColorDefault)
	s.DrawBox(box, core.ColorBrightWhite)

	y := box.Y + 1
	s.DrawTextCentered(y, title, core.ColorBrightYellow)
	y += 2

	for _, line := range info {
		s.DrawTextCentered(y, line, core.ColorWhite)
		y++
	}
	if len(info) > 0 {
		y++
	}

	for i, item := range items {
		prefix, c := "  ", core.ColorWhite
		if i == cursor {
			prefix, c = "> ", core.ColorBrightCyan
		}
		s.DrawText(box.X+3, y, prefix+item, c)
		y++
	}
}

func drawTooSmall(s *core.Screen, area core.Rect) {
	w, h := MinSize(area)
	lines := []string{
		"Window too small",
		fmt.Sprintf("need %dx%d, have %dx%d", w, h, s.Width(), s.Height()),
		"resize the terminal or use a smaller grid",
	}
	top := (s.Height() - len(lines)) / 2
	for i, line := range lines {
		s.DrawTextCentered(top+i, line, core.ColorBrightRed)
	}
}

func causeText(o snake.Outcome) string {
	switch o {
	case snake.OutcomeHitWall:
		return "You hit the wall"
	case snake.OutcomeHitSelf:
		return "You bit yourself"
	default:
		return strings.ReplaceAll(o.String(), "_", " ")
	}
}
