package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"

	"github.com/atomicstack/knobmenu/internal/canvas"
)

// half-block glyphs indexed by (top ink << 1 | bottom ink)
var halfBlocks = [4]string{" ", "▄", "▀", "█"}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	rows := renderScreen(m.screen.Frame())
	limit := m.width - 2
	for i, row := range rows {
		if limit > 0 && ansi.StringWidth(row) > limit {
			row = truncate.String(row, uint(limit))
		}
		rows[i] = styles.Screen.Render(row)
	}
	screen := styles.Frame.Render(strings.Join(rows, "\n"))
	if m.width >= inspectorMinWidth {
		screen = lipgloss.JoinHorizontal(lipgloss.Top, screen, m.inspector())
	}
	parts := []string{
		screen,
		m.statusLine(),
		styles.Help.Render(m.help.View(m.keys)),
	}
	if m.err != nil {
		parts = append(parts, styles.Error.Render(m.err.Error()))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// renderScreen packs two pixel rows into each line of half-block glyphs.
func renderScreen(b *canvas.Bitmap) []string {
	r := b.Bounds()
	rows := make([]string, 0, (r.Dy()+1)/2)
	var sb strings.Builder
	for y := r.Min.Y; y < r.Max.Y; y += 2 {
		sb.Reset()
		for x := r.Min.X; x < r.Max.X; x++ {
			idx := 0
			if b.BitAt(x, y) {
				idx |= 2
			}
			if y+1 < r.Max.Y && b.BitAt(x, y+1) {
				idx |= 1
			}
			sb.WriteString(halfBlocks[idx])
		}
		rows = append(rows, sb.String())
	}
	return rows
}

// menuHeader joins the titles on the page stack.
func (m *Model) menuHeader() string {
	stack := m.engine.Navigator().Stack()
	titles := make([]string, 0, len(stack))
	for _, p := range stack {
		titles = append(titles, strings.ToLower(p.Title))
	}
	return strings.Join(titles, menuHeaderSeparator)
}

func (m *Model) mode() string {
	switch {
	case m.engine.Takeover() != nil:
		return "demo"
	case m.engine.Navigator().Editing():
		return "edit"
	default:
		return "menu"
	}
}

// statusLine shows the mode, breadcrumb and frame counters, padded or cut to
// the terminal width.
func (m *Model) statusLine() string {
	mode := styles.StatusMode.Render(" " + m.mode() + " ")
	text := fmt.Sprintf(" %s  %d fps  #%d ", m.menuHeader(), m.engine.FPS(), m.engine.Frames())
	if m.width > 0 {
		room := m.width - ansi.StringWidth(mode)
		switch w := ansi.StringWidth(text); {
		case room <= 0:
			text = ""
		case w > room:
			text = truncate.StringWithTail(text, uint(room), "…")
		case w < room:
			text += strings.Repeat(" ", room-w)
		}
	}
	return mode + styles.Status.Render(text)
}
