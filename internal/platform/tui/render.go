package tui

import (
	"strings"

	"github.com/vovakirdan/carlot/internal/core"
	"github.com/vovakirdan/carlot/internal/theme"
)

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences
// and skips the right halves of wide glyphs.
func RenderScreen(s *core.Screen, p theme.Palette) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			// Collect consecutive cells with same color
			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor && !s.IsContinuation(x, y) {
					break
				}
				if !s.IsContinuation(x, y) {
					run.WriteRune(cell.Rune)
				}
				x++
			}

			sb.WriteString(p.Color(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
