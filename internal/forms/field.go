// Package forms implements client-side style validation for the site's
// contact and purchase forms.
//
// Forms marked NeedsValidation are bound to a Guard. On submit the guard checks
// every field, blocks invalid submissions and marks the form validated so
// per-field feedback becomes visible.
package forms

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Kind is the input type of a field.
type Kind int

const (
	KindText Kind = iota
	KindEmail
	KindTel
	KindNumber
)

func (k Kind) String() string {
	switch k {
	case KindEmail:
		return "email"
	case KindTel:
		return "tel"
	case KindNumber:
		return "number"
	default:
		return "text"
	}
}

// emailPattern is the browser's "valid e-mail address" production.
var emailPattern = regexp.MustCompile(
	`^[a-zA-Z0-9.!#$%&'*+/=?^_` + "`" + `{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$`,
)

// Field is a single form control with its constraints.
type Field struct {
	Name        string
	Label       string
	Placeholder string
	Value       string
	Kind        Kind
	Required    bool
	MinLength   int
	MaxLength   int    // 0 means unlimited
	Pattern     string // Must match the whole value
	Feedback    string // Shown instead of the default message when invalid
}

// Validity mirrors the browser's ValidityState flags.
type Validity struct {
	ValueMissing    bool
	TypeMismatch    bool
	TooShort        bool
	TooLong         bool
	PatternMismatch bool
}

// Valid reports whether no constraint failed.
func (v Validity) Valid() bool {
	return !v.ValueMissing && !v.TypeMismatch && !v.TooShort && !v.TooLong && !v.PatternMismatch
}

// Validity evaluates the field's constraints. An empty optional field is
// always valid.
func (f Field) Validity() Validity {
	var v Validity
	value := f.Value
	if f.Kind == KindEmail || f.Kind == KindNumber {
		// Only these kinds strip surrounding whitespace; a text field of
		// blanks still has a value.
		value = strings.TrimSpace(value)
	}

	if value == "" {
		v.ValueMissing = f.Required
		return v
	}

	switch f.Kind {
	case KindEmail:
		v.TypeMismatch = !emailPattern.MatchString(value)
	case KindNumber:
		_, err := strconv.ParseFloat(value, 64)
		v.TypeMismatch = err != nil
	}

	n := utf8.RuneCountInString(value)
	v.TooShort = f.MinLength > 0 && n < f.MinLength
	v.TooLong = f.MaxLength > 0 && n > f.MaxLength

	if f.Pattern != "" {
		re, err := regexp.Compile("^(?:" + f.Pattern + ")$")
		v.PatternMismatch = err == nil && !re.MatchString(value)
	}
	return v
}

// Valid reports whether the field passes all constraints.
func (f Field) Valid() bool {
	return f.Validity().Valid()
}

// Message returns the invalid-feedback text for the field, or "" if valid.
func (f Field) Message() string {
	v := f.Validity()
	if v.Valid() {
		return ""
	}
	if f.Feedback != "" {
		return f.Feedback
	}

	switch {
	case v.ValueMissing:
		return "Please fill out this field."
	case v.TypeMismatch && f.Kind == KindEmail:
		return "Please enter an email address."
	case v.TypeMismatch:
		return "Please enter a number."
	case v.TooShort:
		return fmt.Sprintf("Please use at least %d characters.", f.MinLength)
	case v.TooLong:
		return fmt.Sprintf("Please use no more than %d characters.", f.MaxLength)
	default:
		return "Please match the requested format."
	}
}
