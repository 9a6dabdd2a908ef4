// Package theme resolves and applies the site's light/dark/auto color theme.
//
// A Theme is persisted under prefs.KeyTheme. The effective mode is derived from
// the stored choice and the terminal's dark-background signal, then written to
// a Port that owns the actual rendering (the TUI palette and switcher).
package theme

import (
	"errors"
	"fmt"
	"strings"
)

// Theme is a user-facing display mode.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
	Auto  Theme = "auto"
)

// ErrInvalidTheme is returned when a value is not light, dark or auto.
var ErrInvalidTheme = errors.New("theme: invalid theme")

// Values returns the selectable themes in switcher order.
func Values() []Theme {
	return []Theme{Light, Dark, Auto}
}

// Parse converts a stored or user-typed value into a Theme.
func Parse(s string) (Theme, error) {
	switch t := Theme(strings.ToLower(strings.TrimSpace(s))); t {
	case Light, Dark, Auto:
		return t, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidTheme, s)
}

// Explicit reports whether the theme pins a mode regardless of the signal.
func (t Theme) Explicit() bool {
	return t == Light || t == Dark
}

// Next returns the theme after t in switcher order, wrapping around.
func (t Theme) Next() Theme {
	vals := Values()
	for i, v := range vals {
		if v == t {
			return vals[(i+1)%len(vals)]
		}
	}
	return vals[0]
}

func (t Theme) String() string {
	return string(t)
}

// Resolve computes the effective theme: a stored light or dark wins,
// anything else (absent, auto, garbage) follows the dark signal.
func Resolve(stored string, dark bool) Theme {
	if t := Theme(stored); t.Explicit() {
		return t
	}
	return fromSignal(dark)
}

// Mode returns the mode that is actually rendered for t.
// Auto renders dark iff the signal is dark; explicit themes ignore the signal.
func Mode(t Theme, dark bool) Theme {
	if t == Auto {
		return fromSignal(dark)
	}
	return t
}

func fromSignal(dark bool) Theme {
	if dark {
		return Dark
	}
	return Light
}
