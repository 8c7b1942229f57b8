package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/fogscout/internal/core"
)

// cellStyle is the colour pair a run of cells shares.
type cellStyle struct {
	fg, bg core.Color
}

// styleFor builds the lipgloss style for a colour pair. Palette indices and
// "#rrggbb" truecolor values are both valid lipgloss colours; lipgloss
// degrades truecolor on terminals that lack it.
func styleFor(cs cellStyle) lipgloss.Style {
	style := lipgloss.NewStyle()
	if cs.fg != core.ColorDefault {
		style = style.Foreground(lipgloss.Color(cs.fg))
	}
	if cs.bg != core.ColorDefault {
		style = style.Background(lipgloss.Color(cs.bg))
	}
	return style
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colours to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	styles := make(map[cellStyle]lipgloss.Style)

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same colours for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			start := cellStyle{fg: cell.Color, bg: cell.Background}

			// Collect consecutive cells with same colours
			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if (cellStyle{fg: cell.Color, bg: cell.Background}) != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if start == (cellStyle{}) {
				sb.WriteString(run.String())
				continue
			}

			// Apply style to the run
			style, ok := styles[start]
			if !ok {
				style = styleFor(start)
				styles[start] = style
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
