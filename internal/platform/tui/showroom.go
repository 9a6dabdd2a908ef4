package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/carlot/internal/core"
	"github.com/vovakirdan/carlot/internal/purchase"
)

// showroomPage lists the catalog with a "buy me" button per car.
// Pressing a button opens a confirmation dialog; its answer is handed to the
// purchase handler through confirmed.
type showroomPage struct {
	catalog  *purchase.Catalog
	controls []purchase.Control
	cursor   int

	pending *purchase.Control // Control waiting for an answer
	answer  bool
}

func newShowroomPage(c *purchase.Catalog) *showroomPage {
	return &showroomPage{catalog: c, controls: c.Controls()}
}

// confirmed implements purchase.ConfirmFunc with the dialog's answer.
func (p *showroomPage) confirmed(string) bool {
	return p.answer
}

func (p *showroomPage) Enter(*site) tea.Cmd { return nil }

func (p *showroomPage) Leave(*site) {
	p.pending = nil
}

func (p *showroomPage) Typing() bool { return false }

func (p *showroomPage) Modal() bool { return p.pending != nil }

func (p *showroomPage) Help(k KeyMap) []key.Binding {
	if p.pending != nil {
		return []key.Binding{k.Accept, k.Decline}
	}
	return []key.Binding{k.Up, k.Down, k.Buy}
}

func (p *showroomPage) Update(s *site, a core.Action, _ tea.Msg) tea.Cmd {
	if p.pending != nil {
		switch a {
		case core.ActionAccept, core.ActionSelect:
			p.answerDialog(s, true)
		case core.ActionDecline, core.ActionBack:
			p.answerDialog(s, false)
		}
		return nil
	}

	switch a {
	case core.ActionUp:
		if p.cursor > 0 {
			p.cursor--
		}
	case core.ActionDown:
		if p.cursor < len(p.controls)-1 {
			p.cursor++
		}
	case core.ActionBuy, core.ActionSelect:
		p.press(s)
	}
	return nil
}

// press activates the focused car's button.
func (p *showroomPage) press(s *site) {
	if len(p.controls) == 0 {
		return
	}
	c := p.controls[p.cursor]
	if !s.buy.Bound(c.ID) {
		s.notify("This one is already sold.")
		return
	}
	p.pending = &c
}

func (p *showroomPage) answerDialog(s *site, ok bool) {
	c := *p.pending
	p.pending = nil
	p.answer = ok

	if _, err := s.buy.Click(c); err != nil {
		s.fail(err)
	}
}

func (p *showroomPage) View(s *site, width, height int) string {
	pal := s.palette()
	if p.pending != nil {
		return p.dialog(s, width, height)
	}

	var b strings.Builder
	b.WriteString(pal.Accent.Bold(true).Render("Cars in stock"))
	b.WriteString("\n\n")

	cars := p.catalog.All()
	for i, car := range cars {
		button := pal.Button.Render(" Buy me ")
		if !car.Available {
			button = pal.Disabled.Render(" Sold   ")
		}
		line := fmt.Sprintf("%s  %-16s %d  %9s ", car.Symbol, car.Name, car.Year, purchase.FormatPrice(car.Price))

		cursor := "  "
		style := pal.Base
		if i == p.cursor {
			cursor = "> "
			style = pal.Focused
		}
		b.WriteString(style.Render(cursor+line) + button + "\n")
	}

	if p.cursor < len(cars) {
		b.WriteString("\n")
		b.WriteString(pal.Muted.Italic(true).Render(cars[p.cursor].Blurb))
	}
	if len(cars) == 0 {
		b.WriteString(pal.Muted.Render("The lot is empty. Check back soon."))
	}

	return lipgloss.NewStyle().Padding(1, 2).MaxWidth(width).Render(b.String())
}

// dialog renders the confirmation box in the middle of the page.
func (p *showroomPage) dialog(s *site, width, height int) string {
	pal := s.palette()
	car, err := p.catalog.Lookup(p.pending.Car)
	title := p.pending.Car
	if err == nil {
		title = fmt.Sprintf("%s %s, %s", car.Symbol, car.Name, purchase.FormatPrice(car.Price))
	}

	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		pal.Button.Render(" [y] OK "),
		"  ",
		pal.Disabled.Render(" [n] Cancel "),
	)
	box := pal.Modal.Padding(1, 3).Render(lipgloss.JoinVertical(lipgloss.Center,
		pal.Muted.Render(title),
		"",
		pal.Accent.Bold(true).Render(s.buy.Message()),
		"",
		buttons,
	))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
