package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/carlot/internal/core"
	"github.com/vovakirdan/carlot/internal/theme"
)

func TestRenderScreenPlainText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawTextColored(0, 0, "Score", core.ColorAccent)
	s.SetColored(1, 1, '🚗', core.ColorCar)

	out := ansi.Strip(RenderScreen(s, theme.NewPalette(nil, theme.Dark)))
	lines := strings.Split(out, "\n")

	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0] != "Score " {
		t.Errorf("line 0 = %q, expected %q", lines[0], "Score ")
	}
	if lines[1] != " 🚗   " {
		t.Errorf("line 1 = %q, expected %q", lines[1], " 🚗   ")
	}
}
