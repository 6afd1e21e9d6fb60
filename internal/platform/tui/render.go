package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/blockwars/internal/core"
)

// palette lists every color a game can draw with.
var palette = []core.Color{
	core.ColorDefault,
	core.ColorDarkGray,
	core.ColorBlue,
	core.ColorRed,
	core.ColorWhite,
	core.ColorOrange,
}

// cellStyles maps a foreground/background pair to its lipgloss style.
var cellStyles = buildCellStyles()

type colorPair struct {
	fg, bg core.Color
}

func buildCellStyles() map[colorPair]lipgloss.Style {
	styles := make(map[colorPair]lipgloss.Style, len(palette)*len(palette))
	for _, fg := range palette {
		for _, bg := range palette {
			styles[colorPair{fg, bg}] = lipgloss.NewStyle().
				Foreground(hexColor(fg)).
				Background(hexColor(bg))
		}
	}
	return styles
}

// hexColor converts a palette entry to a true-color lipgloss color.
// lipgloss degrades it to the terminal's profile.
func hexColor(c core.Color) lipgloss.Color {
	r, g, b, _ := c.RGBA()
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r, g, b))
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())
	bg := s.Background()

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			// Collect consecutive cells with same color
			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := cellStyles[colorPair{startColor, bg}]
			if !ok {
				style = lipgloss.NewStyle()
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
