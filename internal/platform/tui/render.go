package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/frotz/internal/core"
)

// ansiCodes maps palette entries to ANSI 256-color codes. Empty means the
// terminal default.
var ansiCodes = [...]string{
	core.ColorDefault:       "",
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
	core.ColorDarkGray:      "238",
}

// styles holds the plain style of each palette entry followed by its bold
// variant.
var styles = buildStyles()

func buildStyles() []lipgloss.Style {
	n := core.PaletteSize()
	out := make([]lipgloss.Style, 2*n)
	for i := range n {
		st := lipgloss.NewStyle()
		if i < len(ansiCodes) && ansiCodes[i] != "" {
			st = st.Foreground(lipgloss.Color(ansiCodes[i]))
		}
		out[i] = st
		out[n+i] = st.Bold(true)
	}
	return out
}

func styleFor(c core.Color) lipgloss.Style {
	i := int(c.Base())
	if i >= core.PaletteSize() {
		i = int(core.ColorDefault)
	}
	if c.IsBold() {
		i += core.PaletteSize()
	}
	return styles[i]
}

// RenderScreen converts a Screen buffer to a styled string. Runs of cells
// with the same color share one escape sequence.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.Width(); {
			color := s.GetCell(x, y).Color
			run.Reset()
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
			}
			sb.WriteString(styleFor(color).Render(run.String()))
		}
	}
	return sb.String()
}
