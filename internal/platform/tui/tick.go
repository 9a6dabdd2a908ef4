// Package tui provides the Bubble Tea integration for the carlot site.
// It handles the terminal UI loop, input mapping, page routing and the
// rendering ports used by the theme and game packages.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick. Gen ties the tick to
// the Schedule call that armed it.
type TickMsg struct {
	Time time.Time
	Gen  uint64
}

// tickScheduler implements dodge.Scheduler on top of tea.Tick.
//
// Bubble Tea cannot revoke a tick that is already in flight, so every
// Schedule and Cancel bumps a generation counter and ticks from an older
// generation are dropped in Accept.
type tickScheduler struct {
	gen      uint64
	interval time.Duration
	active   bool
	armed    bool // A tick for the current generation is in flight
}

// Schedule implements dodge.Scheduler.
func (s *tickScheduler) Schedule(interval time.Duration) {
	s.gen++
	s.interval = interval
	s.active = true
	s.armed = false
}

// Cancel implements dodge.Scheduler.
func (s *tickScheduler) Cancel() {
	s.gen++
	s.active = false
	s.armed = false
}

// Active reports whether ticks are being delivered.
func (s *tickScheduler) Active() bool {
	return s.active
}

// Cmd returns the command for the next tick, or nil if none is needed.
func (s *tickScheduler) Cmd() tea.Cmd {
	if !s.active || s.armed {
		return nil
	}
	s.armed = true
	gen := s.gen
	return tea.Tick(s.interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Gen: gen}
	})
}

// Accept reports whether msg belongs to the live tick chain.
func (s *tickScheduler) Accept(msg TickMsg) bool {
	if !s.active || msg.Gen != s.gen {
		return false
	}
	s.armed = false
	return true
}

// tickInterval converts a rate in ticks per second to the delay between ticks.
func tickInterval(rate int) time.Duration {
	if rate <= 0 {
		return 0
	}
	return time.Second / time.Duration(rate)
}
