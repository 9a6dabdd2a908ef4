package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/carlot/internal/core"
	"github.com/vovakirdan/carlot/internal/registry"
)

// Page IDs of the site map.
const (
	PageShowroom = "showroom"
	PageGame     = "game"
	PageContact  = "contact"
	PageScores   = "scores"
	PageBuy      = "buy"
)

func init() {
	registry.Register(registry.PageInfo{ID: PageShowroom, Title: "Showroom", Route: "index.html", Order: 0, Nav: true})
	registry.Register(registry.PageInfo{ID: PageGame, Title: "Car Dodge", Route: "game.html", Order: 10, Nav: true})
	registry.Register(registry.PageInfo{ID: PageContact, Title: "Contact", Route: "contact.html", Order: 20, Nav: true})
	registry.Register(registry.PageInfo{ID: PageScores, Title: "Scores", Route: "scores.html", Order: 30, Nav: true})
	// Reached only through a confirmed purchase.
	registry.Register(registry.PageInfo{ID: PageBuy, Title: "Buy a car", Route: "Buy-Car.html", Order: 40})
}

// page is one screen of the site. Pages get the session they belong to on
// every call instead of holding on to it.
type page interface {
	// Enter is called when the page becomes current.
	Enter(s *site) tea.Cmd
	// Leave is called before another page becomes current.
	Leave(s *site)
	// Update handles a message. a is the mapped action for key messages and
	// ActionNone otherwise.
	Update(s *site, a core.Action, msg tea.Msg) tea.Cmd
	// View renders the page body into width x height cells.
	View(s *site, width, height int) string
	// Help lists the page's own bindings for the help bar.
	Help(k KeyMap) []key.Binding
	// Typing reports whether printable keys go to a text field.
	Typing() bool
	// Modal reports whether the page holds a dialog that must be answered
	// before site-wide keys apply.
	Modal() bool
}
