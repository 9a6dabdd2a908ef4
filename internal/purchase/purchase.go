// Package purchase gates "buy" controls behind a confirmation prompt.
// Confirmed clicks navigate to the purchase page with the car preselected.
package purchase

import (
	"fmt"
	"io"
	"net/url"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/carlot/internal/config"
)

// Confirmer asks the user a yes/no question and blocks until answered.
type Confirmer interface {
	Confirm(message string) bool
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(message string) bool

// Confirm implements Confirmer.
func (f ConfirmFunc) Confirm(message string) bool { return f(message) }

// Navigator moves the user to another page.
type Navigator interface {
	Navigate(page string) error
}

// NavigateFunc adapts a function to Navigator.
type NavigateFunc func(page string) error

// Navigate implements Navigator.
func (f NavigateFunc) Navigate(page string) error { return f(page) }

// Control is a clickable element on a page.
type Control struct {
	ID         string
	Car        string // Catalog ID of the car the control belongs to
	BuyTrigger bool
}

// Handler intercepts clicks on buy controls.
type Handler struct {
	confirmer Confirmer
	navigator Navigator
	message   string
	page      string
	bound     map[string]bool
	logger    *log.Logger
}

// NewHandler creates a handler. A nil logger discards output.
func NewHandler(c Confirmer, n Navigator, settings config.PurchaseSettings, logger *log.Logger) *Handler {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Handler{
		confirmer: c,
		navigator: n,
		message:   settings.ConfirmMessage,
		page:      settings.Page,
		bound:     make(map[string]bool),
		logger:    logger,
	}
}

// Bind attaches the handler to every control marked as a buy trigger and
// returns how many were bound.
func (h *Handler) Bind(controls ...Control) int {
	n := 0
	for _, c := range controls {
		if !c.BuyTrigger {
			continue
		}
		h.bound[c.ID] = true
		n++
	}
	return n
}

// Bound reports whether clicks on the control are intercepted.
func (h *Handler) Bound(id string) bool {
	return h.bound[id]
}

// Message returns the confirmation question.
func (h *Handler) Message() string {
	return h.message
}

// Click handles activation of c. It asks for confirmation and navigates to
// the purchase page on yes. The result reports whether navigation happened.
// Clicks on unbound controls are ignored.
func (h *Handler) Click(c Control) (bool, error) {
	if !h.bound[c.ID] {
		return false, nil
	}
	if !h.confirmer.Confirm(h.message) {
		h.logger.Debug("purchase declined", "car", c.Car)
		return false, nil
	}

	dest := Destination(h.page, c.Car)
	if err := h.navigator.Navigate(dest); err != nil {
		return false, fmt.Errorf("purchase: cannot open %s: %w", dest, err)
	}
	h.logger.Info("purchase confirmed", "car", c.Car)
	return true, nil
}

// Destination builds the purchase route for car, e.g. "Buy-Car.html?car=cab".
func Destination(page, car string) string {
	if car == "" {
		return page
	}
	return page + "?" + url.Values{"car": {car}}.Encode()
}

// ParseDestination splits a route built by Destination.
func ParseDestination(route string) (page, car string) {
	u, err := url.Parse(route)
	if err != nil {
		return route, ""
	}
	return u.Path, u.Query().Get("car")
}
