package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/led-arcade/internal/core"
)

// cellGlyph draws one LED as two columns so cells look square.
const cellGlyph = "██"

// RenderFrame converts a frame to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderFrame(f *core.Frame) string {
	var sb strings.Builder
	sb.Grow(f.Width()*f.Height()*len(cellGlyph) + f.Height())

	for y := range f.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < f.Width() {
			start := f.At(x, y)
			n := 0
			for x < f.Width() && f.At(x, y) == start {
				n++
				x++
			}
			style := lipgloss.NewStyle().Foreground(lipgloss.Color(start.Hex()))
			sb.WriteString(style.Render(strings.Repeat(cellGlyph, n)))
		}
	}
	return sb.String()
}

// RenderSnapshot paints a snapshot into a frame and renders it.
func RenderSnapshot(s core.StateSnapshot) string {
	f := core.NewFrame(s.Width, s.Height)
	s.Paint(f)
	return RenderFrame(f)
}
