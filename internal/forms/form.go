package forms

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// ErrInvalid is returned by Guard.Submit when the form fails validation.
var ErrInvalid = errors.New("forms: invalid submission")

// Form groups fields under an ID. Validated corresponds to the
// "was-validated" state: once set, per-field feedback is shown.
type Form struct {
	ID              string
	Title           string
	NeedsValidation bool
	Fields          []Field
	Validated       bool
}

// CheckValidity reports whether every field is valid.
func (f *Form) CheckValidity() bool {
	for _, fld := range f.Fields {
		if !fld.Valid() {
			return false
		}
	}
	return true
}

// FirstInvalid returns the index of the first invalid field, or -1.
func (f *Form) FirstInvalid() int {
	for i, fld := range f.Fields {
		if !fld.Valid() {
			return i
		}
	}
	return -1
}

// Field returns the field with the given name, or nil.
func (f *Form) Field(name string) *Field {
	for i := range f.Fields {
		if f.Fields[i].Name == name {
			return &f.Fields[i]
		}
	}
	return nil
}

// SetValue sets a field's value by name.
func (f *Form) SetValue(name, value string) error {
	fld := f.Field(name)
	if fld == nil {
		return fmt.Errorf("forms: form %q has no field %q", f.ID, name)
	}
	fld.Value = value
	return nil
}

// Reset clears values and the validated state.
func (f *Form) Reset() {
	for i := range f.Fields {
		f.Fields[i].Value = ""
	}
	f.Validated = false
}

// Data snapshots the form's values for a Submitter.
func (f *Form) Data() FormData {
	values := make(map[string]string, len(f.Fields))
	for _, fld := range f.Fields {
		values[fld.Name] = fld.Value
	}
	return FormData{FormID: f.ID, Values: values, SubmittedAt: time.Now()}
}

// FormData is a submitted form.
type FormData struct {
	FormID      string
	Values      map[string]string
	SubmittedAt time.Time
}

// Submitter receives submissions that passed validation.
type Submitter interface {
	Submit(ctx context.Context, data FormData) error
}

// SubmitEvent records what a submit handler did to the event.
type SubmitEvent struct {
	DefaultPrevented   bool
	PropagationStopped bool
}

// PreventDefault cancels the submission.
func (e *SubmitEvent) PreventDefault() { e.DefaultPrevented = true }

// StopPropagation stops the event from reaching outer handlers.
func (e *SubmitEvent) StopPropagation() { e.PropagationStopped = true }

// Guard intercepts submission of forms marked for validation.
type Guard struct {
	bound  map[*Form]bool
	logger *log.Logger
}

// NewGuard creates a guard. A nil logger discards output.
func NewGuard(logger *log.Logger) *Guard {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Guard{bound: make(map[*Form]bool), logger: logger}
}

// Attach binds the guard to every form marked NeedsValidation and returns
// how many were bound. Other forms are left alone.
func (g *Guard) Attach(forms ...*Form) int {
	n := 0
	for _, f := range forms {
		if f == nil || !f.NeedsValidation {
			continue
		}
		g.bound[f] = true
		n++
	}
	return n
}

// Bound reports whether the guard intercepts submissions of f.
func (g *Guard) Bound(f *Form) bool {
	return g.bound[f]
}

// HandleSubmit runs the submit handler for f. An invalid bound form has its
// event cancelled. Bound forms are always marked validated. The return value
// tells whether the submission proceeds.
func (g *Guard) HandleSubmit(f *Form, ev *SubmitEvent) bool {
	if !g.bound[f] {
		return !ev.DefaultPrevented
	}

	if !f.CheckValidity() {
		ev.PreventDefault()
		ev.StopPropagation()
		g.logger.Debug("blocked invalid submission", "form", f.ID, "field", f.Fields[f.FirstInvalid()].Name)
	}

	f.Validated = true
	return !ev.DefaultPrevented
}

// Submit validates f and, if it proceeds, hands the data to sub.
func (g *Guard) Submit(ctx context.Context, f *Form, sub Submitter) error {
	var ev SubmitEvent
	if !g.HandleSubmit(f, &ev) {
		if i := f.FirstInvalid(); i >= 0 {
			return fmt.Errorf("%w: %s: %s", ErrInvalid, f.Fields[i].Name, f.Fields[i].Message())
		}
		return ErrInvalid
	}
	if sub == nil {
		return nil
	}
	if err := sub.Submit(ctx, f.Data()); err != nil {
		return fmt.Errorf("forms: cannot submit %q: %w", f.ID, err)
	}
	g.logger.Info("form submitted", "form", f.ID)
	return nil
}
