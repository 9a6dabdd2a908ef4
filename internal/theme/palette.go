package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/carlot/internal/core"
)

// Palette holds the lipgloss styles for one rendered mode.
type Palette struct {
	Mode Theme

	Base      lipgloss.Style // page background and body text
	Muted     lipgloss.Style
	Accent    lipgloss.Style
	Car       lipgloss.Style
	Obstacle  lipgloss.Style
	Danger    lipgloss.Style
	Success   lipgloss.Style
	Navbar    lipgloss.Style
	NavActive lipgloss.Style
	Button    lipgloss.Style
	Disabled  lipgloss.Style
	Focused   lipgloss.Style
	Border    lipgloss.Style
	Modal     lipgloss.Style
}

type swatch struct {
	fg, bg, muted, accent, car, obstacle, danger, success, navBg, border string
}

var (
	lightSwatch = swatch{
		fg: "235", bg: "255", muted: "244", accent: "25",
		car: "160", obstacle: "166", danger: "124", success: "28",
		navBg: "253", border: "248",
	}
	darkSwatch = swatch{
		fg: "252", bg: "235", muted: "243", accent: "75",
		car: "203", obstacle: "214", danger: "203", success: "78",
		navBg: "237", border: "240",
	}
)

// NewPalette builds styles for mode using renderer r. SSH sessions pass their
// own renderer; nil means the default terminal renderer.
func NewPalette(r *lipgloss.Renderer, mode Theme) Palette {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	sw := lightSwatch
	if mode == Dark {
		sw = darkSwatch
	} else {
		mode = Light
	}

	fg := func(c string) lipgloss.Style {
		return r.NewStyle().Foreground(lipgloss.Color(c)).Background(lipgloss.Color(sw.bg))
	}

	return Palette{
		Mode:      mode,
		Base:      fg(sw.fg),
		Muted:     fg(sw.muted),
		Accent:    fg(sw.accent).Bold(true),
		Car:       fg(sw.car),
		Obstacle:  fg(sw.obstacle),
		Danger:    fg(sw.danger).Bold(true),
		Success:   fg(sw.success),
		Navbar:    r.NewStyle().Foreground(lipgloss.Color(sw.fg)).Background(lipgloss.Color(sw.navBg)),
		NavActive: r.NewStyle().Foreground(lipgloss.Color(sw.accent)).Background(lipgloss.Color(sw.navBg)).Bold(true).Underline(true),
		Button:    r.NewStyle().Foreground(lipgloss.Color(sw.bg)).Background(lipgloss.Color(sw.accent)).Padding(0, 1),
		Disabled:  r.NewStyle().Foreground(lipgloss.Color(sw.bg)).Background(lipgloss.Color(sw.muted)).Padding(0, 1),
		Focused:   fg(sw.accent).Reverse(true),
		Border:    fg(sw.border),
		Modal: r.NewStyle().
			Foreground(lipgloss.Color(sw.fg)).
			Background(lipgloss.Color(sw.navBg)).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(sw.accent)).
			Padding(1, 2),
	}
}

// Color maps a semantic screen color to its style.
func (p Palette) Color(c core.Color) lipgloss.Style {
	switch c {
	case core.ColorMuted:
		return p.Muted
	case core.ColorAccent:
		return p.Accent
	case core.ColorCar:
		return p.Car
	case core.ColorObstacle:
		return p.Obstacle
	case core.ColorDanger:
		return p.Danger
	case core.ColorSuccess:
		return p.Success
	default:
		return p.Base
	}
}
