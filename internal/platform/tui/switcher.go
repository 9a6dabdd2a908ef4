package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/carlot/internal/theme"
)

// minWidthForSwitcher is the narrowest terminal that still shows the theme
// switcher in the navbar. Narrower layouts collapse it, like a mobile navbar.
const minWidthForSwitcher = 60

// switcherPort implements theme.Port for the terminal. It owns the active
// palette and the switcher dropdown state.
type switcherPort struct {
	renderer *lipgloss.Renderer
	spec     theme.SwitcherSpec
	width    int
	palette  theme.Palette
	state    theme.SwitcherState
	shown    bool // state holds a value pushed by the manager
	open     bool // dropdown expanded
	cursor   int  // highlighted option while open
}

func newSwitcherPort(r *lipgloss.Renderer, spec theme.SwitcherSpec, width int) *switcherPort {
	return &switcherPort{
		renderer: r,
		spec:     spec,
		width:    width,
		palette:  theme.NewPalette(r, theme.Light),
	}
}

// ApplyThemeAttribute implements theme.Port.
func (p *switcherPort) ApplyThemeAttribute(mode theme.Theme) {
	if p.palette.Mode == mode {
		return
	}
	p.palette = theme.NewPalette(p.renderer, mode)
}

// Switcher implements theme.Port.
func (p *switcherPort) Switcher() (theme.SwitcherSpec, bool) {
	if p.width < minWidthForSwitcher {
		return theme.SwitcherSpec{}, false
	}
	return p.spec, true
}

// UpdateSwitcher implements theme.Port.
func (p *switcherPort) UpdateSwitcher(state theme.SwitcherState) {
	p.state = state
	p.shown = true
	for i, opt := range state.Options {
		if opt.Active {
			p.cursor = i
		}
	}
}

// Palette returns the styles for the applied mode.
func (p *switcherPort) Palette() theme.Palette {
	return p.palette
}

// SetWidth records the terminal width, which decides whether the switcher
// is present.
func (p *switcherPort) SetWidth(w int) {
	p.width = w
	if w < minWidthForSwitcher {
		p.open = false
	}
}

// Visible reports whether the switcher is on screen.
func (p *switcherPort) Visible() bool {
	_, ok := p.Switcher()
	return ok && p.shown
}

// Toggle opens or closes the dropdown. Returns false when there is no switcher.
func (p *switcherPort) Toggle() bool {
	if !p.Visible() {
		return false
	}
	p.open = !p.open
	return true
}

// Open reports whether the dropdown is expanded.
func (p *switcherPort) Open() bool {
	return p.open
}

// Move shifts the dropdown highlight.
func (p *switcherPort) Move(delta int) {
	n := len(p.spec.Options)
	if n == 0 {
		return
	}
	p.cursor = ((p.cursor+delta)%n + n) % n
}

// Highlighted returns the option under the cursor.
func (p *switcherPort) Highlighted() theme.Theme {
	if len(p.spec.Options) == 0 {
		return theme.Auto
	}
	return p.spec.Options[p.cursor].Value
}

// Close collapses the dropdown.
func (p *switcherPort) Close() {
	p.open = false
}

// Button renders the navbar control: active icon plus its label.
func (p *switcherPort) Button() string {
	if !p.Visible() {
		return ""
	}
	style := p.palette.Navbar
	if p.state.Focus || p.open {
		style = p.palette.NavActive
	}
	return style.Render(fmt.Sprintf(" %s %s ", p.state.Icon, p.state.Label))
}

// Dropdown renders the expanded option list, or "" when closed.
func (p *switcherPort) Dropdown() string {
	if !p.open || !p.Visible() {
		return ""
	}

	lines := make([]string, 0, len(p.state.Options))
	for i, opt := range p.state.Options {
		mark := "  "
		if opt.Active {
			mark = "✓ "
		}
		line := fmt.Sprintf("%s%s %s", mark, opt.Icon, capitalize(string(opt.Value)))
		if i == p.cursor {
			line = p.palette.Focused.Render(line)
		}
		lines = append(lines, line)
	}
	return p.palette.Modal.Padding(0, 1).Render(strings.Join(lines, "\n"))
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
