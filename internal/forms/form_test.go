package forms

import (
	"context"
	"errors"
	"testing"
)

type recordingSubmitter struct {
	got []FormData
	err error
}

func (r *recordingSubmitter) Submit(_ context.Context, data FormData) error {
	r.got = append(r.got, data)
	return r.err
}

func fillContact(f *Form) {
	f.SetValue("name", "Jane Doe")
	f.SetValue("email", "jane@example.com")
	f.SetValue("message", "Is the roadster still available?")
}

func TestGuardBlocksInvalid(t *testing.T) {
	form := ContactForm()
	g := NewGuard(nil)
	g.Attach(form)

	var ev SubmitEvent
	if g.HandleSubmit(form, &ev) {
		t.Error("HandleSubmit() = true for a form with empty required fields")
	}
	if !ev.DefaultPrevented || !ev.PropagationStopped {
		t.Errorf("event = %+v, expected prevented and stopped", ev)
	}
	if !form.Validated {
		t.Error("form should be marked validated")
	}
}

func TestGuardAllowsValid(t *testing.T) {
	form := ContactForm()
	fillContact(form)
	g := NewGuard(nil)
	g.Attach(form)

	var ev SubmitEvent
	if !g.HandleSubmit(form, &ev) {
		t.Error("HandleSubmit() = false for a valid form")
	}
	if ev.DefaultPrevented || ev.PropagationStopped {
		t.Errorf("event = %+v, expected untouched", ev)
	}
	if !form.Validated {
		t.Error("valid forms are marked validated too")
	}
}

func TestGuardReevaluates(t *testing.T) {
	form := ContactForm()
	g := NewGuard(nil)
	g.Attach(form)

	if g.HandleSubmit(form, &SubmitEvent{}) {
		t.Fatal("first submission should be blocked")
	}
	fillContact(form)
	if !g.HandleSubmit(form, &SubmitEvent{}) {
		t.Error("second submission should proceed after fixing the fields")
	}
}

func TestGuardAttachOnlyMarked(t *testing.T) {
	marked := ContactForm()
	plain := &Form{ID: "newsletter", Fields: []Field{{Name: "email", Required: true}}}
	g := NewGuard(nil)

	if n := g.Attach(marked, plain, nil); n != 1 {
		t.Errorf("Attach() = %d, expected 1", n)
	}
	if g.Bound(plain) {
		t.Error("unmarked form should not be bound")
	}

	var ev SubmitEvent
	if !g.HandleSubmit(plain, &ev) {
		t.Error("unbound forms are not intercepted")
	}
	if plain.Validated || ev.DefaultPrevented {
		t.Error("unbound form should be left untouched")
	}
}

func TestGuardSubmit(t *testing.T) {
	g := NewGuard(nil)
	sub := &recordingSubmitter{}

	form := PurchaseForm("roadster")
	g.Attach(form)

	err := g.Submit(context.Background(), form, sub)
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("Submit() error = %v, expected ErrInvalid", err)
	}
	if len(sub.got) != 0 {
		t.Fatal("invalid form reached the submitter")
	}

	form.SetValue("name", "Jane Doe")
	form.SetValue("email", "jane@example.com")
	form.SetValue("phone", "555-0100-22")
	if err := g.Submit(context.Background(), form, sub); err != nil {
		t.Fatalf("Submit() failed: %v", err)
	}
	if len(sub.got) != 1 || sub.got[0].Values["car"] != "roadster" {
		t.Errorf("submitter got %+v", sub.got)
	}
}

func TestGuardSubmitError(t *testing.T) {
	g := NewGuard(nil)
	sub := &recordingSubmitter{err: errors.New("db locked")}
	form := ContactForm()
	fillContact(form)
	g.Attach(form)

	if err := g.Submit(context.Background(), form, sub); err == nil || errors.Is(err, ErrInvalid) {
		t.Errorf("Submit() error = %v, expected a submitter failure", err)
	}
}

func TestFormSetValueUnknown(t *testing.T) {
	if err := ContactForm().SetValue("fax", "1"); err == nil {
		t.Error("SetValue() on an unknown field should fail")
	}
}

func TestFormReset(t *testing.T) {
	form := ContactForm()
	fillContact(form)
	form.Validated = true

	form.Reset()
	if form.Validated || form.Field("name").Value != "" {
		t.Error("Reset() should clear values and validated state")
	}
}
