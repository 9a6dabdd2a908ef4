package theme

import (
	"testing"

	"github.com/vovakirdan/carlot/internal/core"
)

func TestNewPaletteMode(t *testing.T) {
	if p := NewPalette(nil, Dark); p.Mode != Dark {
		t.Errorf("Mode = %v, expected dark", p.Mode)
	}
	// Auto is never rendered directly
	if p := NewPalette(nil, Auto); p.Mode != Light {
		t.Errorf("Mode = %v, expected light fallback", p.Mode)
	}
}

func TestPaletteColor(t *testing.T) {
	p := NewPalette(nil, Dark)

	if p.Color(core.ColorCar).GetForeground() != p.Car.GetForeground() {
		t.Error("ColorCar should map to the car style")
	}
	if p.Color(core.Color(200)).GetForeground() != p.Base.GetForeground() {
		t.Error("unknown colors should fall back to the base style")
	}
}
