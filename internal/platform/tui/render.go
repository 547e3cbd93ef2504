package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/core"
)

type cellStyle struct {
	fg, bg core.Color
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
// Styles come from r, so SSH sessions get their client's color profile;
// a nil renderer uses the default one.
func RenderScreen(s *core.Screen, r *lipgloss.Renderer) string {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	styles := make(map[cellStyle]lipgloss.Style)

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same colors
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			start := cellStyle{fg: cell.Fg, bg: cell.Bg}

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if (cellStyle{fg: cell.Fg, bg: cell.Bg}) != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := styles[start]
			if !ok {
				style = newCellStyle(r, start)
				styles[start] = style
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

func newCellStyle(r *lipgloss.Renderer, cs cellStyle) lipgloss.Style {
	style := r.NewStyle()
	if cs.fg != core.ColorDefault {
		style = style.Foreground(lipgloss.Color(cs.fg))
	}
	if cs.bg != core.ColorDefault {
		style = style.Background(lipgloss.Color(cs.bg))
	}
	return style
}
