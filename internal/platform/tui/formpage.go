package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/carlot/internal/core"
	"github.com/vovakirdan/carlot/internal/forms"
)

const inputWidth = 40

// formPage renders a forms.Form with one text input per field. Feedback
// under the fields appears only once the form has been validated.
type formPage struct {
	form    *forms.Form
	inputs  []textinput.Model
	focus   int
	success string // Shown after an accepted submission
	sent    bool
}

func newFormPage(f *forms.Form, success string) *formPage {
	p := &formPage{form: f, success: success}
	p.inputs = make([]textinput.Model, len(f.Fields))
	for i, fld := range f.Fields {
		in := textinput.New()
		in.Placeholder = fld.Placeholder
		in.Prompt = ""
		in.Width = inputWidth
		if fld.MaxLength > 0 {
			in.CharLimit = fld.MaxLength
		}
		in.SetValue(fld.Value)
		p.inputs[i] = in
	}
	return p
}

func (p *formPage) Enter(*site) tea.Cmd {
	p.sent = false
	return p.setFocus(p.focus)
}

func (p *formPage) Leave(*site) {
	for i := range p.inputs {
		p.inputs[i].Blur()
	}
}

// Typing is true while a field has focus, which is always.
func (p *formPage) Typing() bool { return len(p.inputs) > 0 }

func (p *formPage) Modal() bool { return false }

func (p *formPage) Help(k KeyMap) []key.Binding {
	return []key.Binding{k.NextField, k.PrevField, k.Submit, k.Back}
}

func (p *formPage) Update(s *site, a core.Action, msg tea.Msg) tea.Cmd {
	if _, ok := msg.(tea.WindowSizeMsg); ok {
		return nil
	}

	switch a {
	case core.ActionNextField, core.ActionDown:
		return p.setFocus(p.focus + 1)
	case core.ActionPrevField, core.ActionUp:
		return p.setFocus(p.focus - 1)
	case core.ActionSubmit:
		return p.submit(s)
	case core.ActionSelect:
		if p.focus == len(p.inputs)-1 {
			return p.submit(s)
		}
		return p.setFocus(p.focus + 1)
	}

	if len(p.inputs) == 0 {
		return nil
	}
	var cmd tea.Cmd
	p.inputs[p.focus], cmd = p.inputs[p.focus].Update(msg)
	if _, ok := msg.(tea.KeyMsg); ok {
		p.sent = false
	}
	p.sync()
	return cmd
}

func (p *formPage) setFocus(i int) tea.Cmd {
	n := len(p.inputs)
	if n == 0 {
		return nil
	}
	p.focus = (i%n + n) % n
	for j := range p.inputs {
		p.inputs[j].Blur()
	}
	return p.inputs[p.focus].Focus()
}

// sync copies the inputs into the form.
func (p *formPage) sync() {
	for i := range p.inputs {
		p.form.Fields[i].Value = p.inputs[i].Value()
	}
}

// load copies the form into the inputs.
func (p *formPage) load() {
	for i := range p.inputs {
		p.inputs[i].SetValue(p.form.Fields[i].Value)
	}
}

func (p *formPage) submit(s *site) tea.Cmd {
	p.sync()
	err := s.guard.Submit(s.ctx, p.form, s.submit)
	switch {
	case errors.Is(err, forms.ErrInvalid):
		return p.setFocus(p.form.FirstInvalid())
	case err != nil:
		s.fail(err)
		return nil
	}

	s.notify(p.success)
	p.sent = true
	p.form.Reset()
	p.load()
	return p.setFocus(0)
}

func (p *formPage) View(s *site, width, _ int) string {
	pal := s.palette()

	var b strings.Builder
	b.WriteString(pal.Accent.Bold(true).Render(p.form.Title))
	b.WriteString("\n\n")

	for i, fld := range p.form.Fields {
		label := fld.Label
		if fld.Required {
			label += " *"
		}
		labelStyle := pal.Base
		if i == p.focus {
			labelStyle = pal.Accent
		}
		b.WriteString(labelStyle.Render(label))
		b.WriteString("\n")

		border := pal.Border.Border(lipgloss.ThickBorder(), false, false, false, true).BorderForeground(pal.Border.GetForeground())
		if p.form.Validated {
			if fld.Valid() {
				border = border.BorderForeground(pal.Success.GetForeground())
			} else {
				border = border.BorderForeground(pal.Danger.GetForeground())
			}
		}
		b.WriteString(border.Render(p.inputs[i].View()))
		b.WriteString("\n")

		if p.form.Validated {
			if fld.Valid() {
				b.WriteString(pal.Success.Render("  ✓ Looks good!"))
			} else {
				b.WriteString(pal.Danger.Render("  ✗ " + fld.Message()))
			}
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(pal.Button.Render(" Submit (ctrl+s) "))
	if p.sent {
		b.WriteString("  " + pal.Success.Render("✓ Sent"))
	}

	return lipgloss.NewStyle().Padding(1, 2).MaxWidth(width).Render(b.String())
}

// buyPage is the purchase form with the chosen car filled in.
type buyPage struct {
	*formPage
}

func (p *buyPage) Enter(s *site) tea.Cmd {
	if s.car != "" {
		name := s.car
		if car, err := s.catalog.Lookup(s.car); err == nil {
			name = fmt.Sprintf("%s (%s)", car.Name, car.ID)
		}
		//nolint:errcheck // The purchase form always has a car field
		p.form.SetValue("car", name)
		p.form.Validated = false
		p.load()
		p.focus = 1
	}
	return p.formPage.Enter(s)
}
