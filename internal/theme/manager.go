package theme

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/carlot/internal/prefs"
)

// Option is one selectable entry of the theme switcher.
type Option struct {
	Value Theme
	Icon  string
}

// SwitcherSpec describes a switcher present on the current page.
type SwitcherSpec struct {
	Text    string // Label prefix, e.g. "Toggle theme"
	Options []Option
}

// OptionState is the rendered state of one switcher option.
type OptionState struct {
	Value   Theme
	Icon    string
	Active  bool
	Pressed bool
}

// SwitcherState is recomputed on every change and pushed to the Port.
type SwitcherState struct {
	Active  Theme
	Options []OptionState
	Icon    string // Icon of the active option
	Label   string // "<text> (<active>)"
	Focus   bool
}

// Port is implemented by whatever renders the site.
type Port interface {
	// ApplyThemeAttribute sets the rendered mode (always Light or Dark).
	ApplyThemeAttribute(mode Theme)
	// Switcher reports the switcher on the current page, if any.
	Switcher() (SwitcherSpec, bool)
	// UpdateSwitcher pushes new switcher state.
	UpdateSwitcher(state SwitcherState)
}

// Manager wires the preference store, the dark signal and a Port together.
// It is not safe for concurrent use; each UI session owns one.
type Manager struct {
	store  prefs.Store
	port   Port
	dark   bool
	mode   Theme
	logger *log.Logger
}

// NewManager creates a manager. dark is the current terminal signal.
// A nil logger discards output.
func NewManager(store prefs.Store, port Port, dark bool, logger *log.Logger) *Manager {
	if store == nil {
		store = prefs.NewMemory()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Manager{
		store:  store,
		port:   port,
		dark:   dark,
		logger: logger,
	}
}

// Dark returns the last known dark-background signal.
func (m *Manager) Dark() bool {
	return m.dark
}

// CurrentMode returns the mode most recently applied.
func (m *Manager) CurrentMode() Theme {
	return m.mode
}

// Stored returns the persisted theme, if a valid one exists.
// Read errors and invalid values count as "no preference".
func (m *Manager) Stored() (Theme, bool) {
	v, ok, err := m.store.Get(prefs.KeyTheme)
	if err != nil {
		m.logger.Warn("cannot read theme preference", "error", err)
		return "", false
	}
	if !ok {
		return "", false
	}
	t, err := Parse(v)
	if err != nil {
		m.logger.Warn("ignoring stored theme", "value", v)
		return "", false
	}
	return t, true
}

// Preferred returns the theme to show as chosen: the stored value when there
// is one (auto included), otherwise the resolved signal.
func (m *Manager) Preferred() Theme {
	if t, ok := m.Stored(); ok {
		return t
	}
	return Resolve("", m.dark)
}

// Apply renders t on the port.
func (m *Manager) Apply(t Theme) {
	m.mode = Mode(t, m.dark)
	m.logger.Debug("apply theme", "theme", t, "mode", m.mode)
	if m.port != nil {
		m.port.ApplyThemeAttribute(m.mode)
	}
}

// ShowActive marks t as the active switcher option. Pages without a switcher
// are left alone.
func (m *Manager) ShowActive(t Theme, focus bool) {
	if m.port == nil {
		return
	}
	spec, ok := m.port.Switcher()
	if !ok {
		return
	}
	state, ok := BuildSwitcherState(spec, t, focus)
	if !ok {
		m.logger.Debug("switcher has no option for theme", "theme", t)
		return
	}
	m.port.UpdateSwitcher(state)
}

// Load applies and shows the preferred theme, as on page load.
func (m *Manager) Load() Theme {
	t := m.Preferred()
	m.Apply(t)
	m.ShowActive(t, false)
	return t
}

// SchemeChanged records a new dark signal. The page is re-themed only when
// the user has not pinned light or dark.
func (m *Manager) SchemeChanged(dark bool) {
	m.dark = dark
	if t, ok := m.Stored(); ok && t.Explicit() {
		return
	}
	m.Apply(m.Preferred())
}

// Choose handles a click on a switcher option: persist, apply, then show the
// option as active and focus the switcher. The theme is applied even if it
// could not be persisted.
func (m *Manager) Choose(t Theme) error {
	if _, err := Parse(string(t)); err != nil {
		return err
	}

	var persistErr error
	if err := m.store.Set(prefs.KeyTheme, string(t)); err != nil {
		m.logger.Error("cannot persist theme", "theme", t, "error", err)
		persistErr = fmt.Errorf("theme: cannot persist %q: %w", t, err)
	}

	m.Apply(t)
	m.ShowActive(t, true)
	return persistErr
}

// BuildSwitcherState derives the switcher state for active. It returns false
// when no option carries that value.
func BuildSwitcherState(spec SwitcherSpec, active Theme, focus bool) (SwitcherState, bool) {
	state := SwitcherState{
		Active:  active,
		Options: make([]OptionState, len(spec.Options)),
		Focus:   focus,
	}
	found := false
	for i, opt := range spec.Options {
		on := opt.Value == active
		state.Options[i] = OptionState{Value: opt.Value, Icon: opt.Icon, Active: on, Pressed: on}
		if on {
			found = true
			state.Icon = opt.Icon
		}
	}
	if !found {
		return SwitcherState{}, false
	}
	state.Label = fmt.Sprintf("%s (%s)", spec.Text, active)
	return state, true
}

// SpecFromIcons builds a switcher spec in switcher order from an icon map
// keyed by theme value.
func SpecFromIcons(text string, icons map[string]string) SwitcherSpec {
	spec := SwitcherSpec{Text: text}
	for _, v := range Values() {
		spec.Options = append(spec.Options, Option{Value: v, Icon: icons[string(v)]})
	}
	return spec
}
