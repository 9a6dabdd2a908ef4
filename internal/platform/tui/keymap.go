package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/carlot/internal/core"
)

// KeyMap defines the site's key bindings.
type KeyMap struct {
	Left      key.Binding
	Right     key.Binding
	Up        key.Binding
	Down      key.Binding
	Start     key.Binding
	NextCar   key.Binding
	NextPage  key.Binding
	PrevPage  key.Binding
	Select    key.Binding
	Buy       key.Binding
	Accept    key.Binding
	Decline   key.Binding
	Submit    key.Binding
	NextField key.Binding
	PrevField key.Binding
	Theme     key.Binding
	Back      key.Binding
	Quit      key.Binding
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "steer left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "steer right"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Start: key.NewBinding(
			key.WithKeys("s", " "),
			key.WithHelp("s/space", "start"),
		),
		NextCar: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "change car"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("]", "ctrl+n"),
			key.WithHelp("]", "next page"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("[", "ctrl+p"),
			key.WithHelp("[", "prev page"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Buy: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "buy me"),
		),
		Accept: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "ok"),
		),
		Decline: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "cancel"),
		),
		Submit: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "submit"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "prev field"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t", "ctrl+t"),
			key.WithHelp("t", "theme"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Action translates a key message into a site action. While typing into a
// text field, printable keys belong to the field and map to ActionNone.
func (k KeyMap) Action(msg tea.KeyMsg, typing bool) core.Action {
	if typing && (msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace) && !msg.Alt {
		return core.ActionNone
	}

	bindings := []struct {
		b key.Binding
		a core.Action
	}{
		{k.Quit, core.ActionQuit},
		{k.Submit, core.ActionSubmit},
		{k.NextField, core.ActionNextField},
		{k.PrevField, core.ActionPrevField},
		{k.NextPage, core.ActionNextPage},
		{k.PrevPage, core.ActionPrevPage},
		{k.Theme, core.ActionTheme},
		{k.Back, core.ActionBack},
		{k.Select, core.ActionSelect},
		{k.Left, core.ActionLeft},
		{k.Right, core.ActionRight},
		{k.Up, core.ActionUp},
		{k.Down, core.ActionDown},
		{k.Start, core.ActionStart},
		{k.NextCar, core.ActionNextCar},
		{k.Buy, core.ActionBuy},
		{k.Accept, core.ActionAccept},
		{k.Decline, core.ActionDecline},
	}
	for _, entry := range bindings {
		if key.Matches(msg, entry.b) {
			return entry.a
		}
	}
	return core.ActionNone
}

// bindingHelp adapts a list of bindings to help.KeyMap.
type bindingHelp []key.Binding

func (b bindingHelp) ShortHelp() []key.Binding { return b }

func (b bindingHelp) FullHelp() [][]key.Binding { return [][]key.Binding{b} }
