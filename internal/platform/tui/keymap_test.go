package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/carlot/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapAction(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		typing   bool
		expected core.Action
	}{
		{"quit", tea.KeyMsg{Type: tea.KeyCtrlC}, false, core.ActionQuit},
		{"q quits", runeKey('q'), false, core.ActionQuit},
		{"q typed", runeKey('q'), true, core.ActionNone},
		{"ctrl+c while typing", tea.KeyMsg{Type: tea.KeyCtrlC}, true, core.ActionQuit},
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, false, core.ActionLeft},
		{"vim right", runeKey('l'), false, core.ActionRight},
		{"space starts", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, false, core.ActionStart},
		{"space typed", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, true, core.ActionNone},
		{"buy", runeKey('b'), false, core.ActionBuy},
		{"accept", runeKey('y'), false, core.ActionAccept},
		{"decline", runeKey('n'), false, core.ActionDecline},
		{"theme", runeKey('t'), false, core.ActionTheme},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, true, core.ActionNextField},
		{"shift tab", tea.KeyMsg{Type: tea.KeyShiftTab}, true, core.ActionPrevField},
		{"next page", runeKey(']'), false, core.ActionNextPage},
		{"ctrl+n while typing", tea.KeyMsg{Type: tea.KeyCtrlN}, true, core.ActionNextPage},
		{"submit", tea.KeyMsg{Type: tea.KeyCtrlS}, true, core.ActionSubmit},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, true, core.ActionSelect},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, false, core.ActionBack},
		{"unbound", runeKey('z'), false, core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := km.Action(tt.msg, tt.typing)
			if got != tt.expected {
				t.Errorf("Action(%q, typing=%v) = %v, expected %v", tt.msg.String(), tt.typing, got, tt.expected)
			}
		})
	}
}
