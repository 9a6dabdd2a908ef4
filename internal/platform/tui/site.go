package tui

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/carlot/internal/config"
	"github.com/vovakirdan/carlot/internal/core"
	"github.com/vovakirdan/carlot/internal/forms"
	"github.com/vovakirdan/carlot/internal/prefs"
	"github.com/vovakirdan/carlot/internal/purchase"
	"github.com/vovakirdan/carlot/internal/registry"
	"github.com/vovakirdan/carlot/internal/storage"
	"github.com/vovakirdan/carlot/internal/theme"
)

// Options configures one site session.
type Options struct {
	Site    config.SiteConfig
	Dodge   config.DodgeConfig
	Runtime core.RuntimeConfig

	// Store holds scores and form submissions. Nil disables both.
	Store *storage.Store
	// Prefs persists the theme choice. Nil keeps it in memory.
	Prefs prefs.Store

	Player string // Name recorded with high scores

	// Dark is the terminal's dark-background signal at startup.
	Dark bool
	// Renderer styles output; SSH sessions pass their own. Nil means stdout.
	Renderer *lipgloss.Renderer
	// Probe re-reads the dark signal every Site.Theme.PollInterval.
	// Nil disables polling.
	Probe func() bool

	StartPage string // Page ID or route; empty opens the showroom
	StartCar  string // Car to prefill when StartPage is the purchase page

	Logger *log.Logger
}

// SchemeChangedMsg reports a change of the OS or terminal color scheme.
type SchemeChangedMsg struct {
	Dark bool
}

// site is the shared state of a session. SiteModel is a thin value wrapper
// so that Bubble Tea's value semantics do not copy it.
type site struct {
	opts   Options
	keys   KeyMap
	help   help.Model
	logger *log.Logger

	ctx    context.Context
	cancel context.CancelFunc
	scheme <-chan bool

	width, height int

	port    *switcherPort
	themes  *theme.Manager
	catalog *purchase.Catalog
	buy     *purchase.Handler
	guard   *forms.Guard
	submit  forms.Submitter

	pages   map[string]page
	current string
	car     string // Car carried over by the last navigation

	pending []tea.Cmd // Commands raised outside of Update's return path

	status    string
	statusErr bool
	quitting  bool
}

// SiteModel is the Bubble Tea model for a site session.
type SiteModel struct {
	s *site
}

// NewSiteModel builds a session and applies the preferred theme.
func NewSiteModel(opts Options) (SiteModel, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.Runtime.ScreenW <= 0 || opts.Runtime.ScreenH <= 0 {
		def := core.DefaultConfig()
		opts.Runtime.ScreenW, opts.Runtime.ScreenH = def.ScreenW, def.ScreenH
	}
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}
	if opts.Player == "" {
		opts.Player = "guest"
	}
	if err := opts.Dodge.Validate(); err != nil {
		return SiteModel{}, fmt.Errorf("tui: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	s := &site{
		opts:    opts,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		logger:  logger,
		ctx:     ctx,
		cancel:  cancel,
		width:   opts.Runtime.ScreenW,
		height:  opts.Runtime.ScreenH,
		catalog: purchase.NewCatalog(opts.Site.Cars),
		guard:   forms.NewGuard(logger.WithPrefix("forms")),
	}
	if opts.Store != nil {
		s.submit = opts.Store
	}

	spec := theme.SpecFromIcons(opts.Site.Theme.SwitcherText, opts.Site.Theme.Icons)
	s.port = newSwitcherPort(opts.Renderer, spec, s.width)
	s.themes = theme.NewManager(opts.Prefs, s.port, opts.Dark, logger.WithPrefix("theme"))

	showroom := newShowroomPage(s.catalog)
	s.buy = purchase.NewHandler(
		purchase.ConfirmFunc(showroom.confirmed),
		purchase.NavigateFunc(s.navigate),
		opts.Site.Purchase,
		logger.WithPrefix("purchase"),
	)
	s.buy.Bind(s.catalog.Controls()...)

	contact := newFormPage(forms.ContactForm(), "Thanks! We will get back to you shortly.")
	order := newFormPage(forms.PurchaseForm(""), "Order received. A salesperson will call you to arrange payment.")
	s.guard.Attach(contact.form, order.form)

	s.pages = map[string]page{
		PageShowroom: showroom,
		PageGame:     newGamePage(s),
		PageContact:  contact,
		PageScores:   newScoresPage(),
		PageBuy:      &buyPage{formPage: order},
	}

	s.themes.Load()

	start := PageShowroom
	if opts.StartPage != "" {
		id, err := resolvePage(opts.StartPage)
		if err != nil {
			cancel()
			return SiteModel{}, err
		}
		start = id
	}
	s.current = start
	s.car = opts.StartCar

	return SiteModel{s: s}, nil
}

// resolvePage accepts a page ID or a route.
func resolvePage(ref string) (string, error) {
	if registry.Exists(ref) {
		return ref, nil
	}
	page, _ := purchase.ParseDestination(ref)
	info, err := registry.ByRoute(page)
	if err != nil {
		return "", fmt.Errorf("tui: %w", err)
	}
	return info.ID, nil
}

// Init enters the start page and starts watching the color scheme.
func (m SiteModel) Init() tea.Cmd {
	s := m.s
	cmds := []tea.Cmd{
		tea.SetWindowTitle(s.opts.Site.Title),
		s.page().Enter(s),
	}
	if s.opts.Probe != nil && s.scheme == nil {
		w := theme.NewWatcher(s.opts.Probe, s.opts.Site.Theme.PollInterval)
		s.scheme = w.Watch(s.ctx, s.themes.Dark())
		cmds = append(cmds, waitScheme(s.scheme))
	}
	return tea.Batch(cmds...)
}

func waitScheme(ch <-chan bool) tea.Cmd {
	return func() tea.Msg {
		dark, ok := <-ch
		if !ok {
			return nil
		}
		return SchemeChangedMsg{Dark: dark}
	}
}

// Update handles messages and updates the model state.
func (m SiteModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.s.update(msg)
	if len(m.s.pending) > 0 {
		cmds := append(m.s.pending, cmd)
		m.s.pending = nil
		return m, tea.Batch(cmds...)
	}
	return m, cmd
}

func (s *site) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width, s.height = msg.Width, msg.Height
		s.port.SetWidth(msg.Width)
		s.help.Width = msg.Width
		// The switcher may have appeared or gone away.
		s.themes.ShowActive(s.themes.Preferred(), false)
		var cmds []tea.Cmd
		for _, p := range s.pages {
			cmds = append(cmds, p.Update(s, core.ActionNone, msg))
		}
		return tea.Batch(cmds...)

	case SchemeChangedMsg:
		s.logger.Debug("color scheme changed", "dark", msg.Dark)
		s.themes.SchemeChanged(msg.Dark)
		if s.scheme != nil {
			return waitScheme(s.scheme)
		}
		return nil

	case TickMsg:
		return s.pages[PageGame].Update(s, core.ActionNone, msg)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s.page().Update(s, core.ActionNone, msg)
}

func (s *site) handleKey(msg tea.KeyMsg) tea.Cmd {
	cur := s.page()
	a := s.keys.Action(msg, cur.Typing())
	s.status = ""

	if a == core.ActionQuit {
		return s.quit()
	}

	if s.port.Open() {
		switch a {
		case core.ActionUp, core.ActionLeft:
			s.port.Move(-1)
		case core.ActionDown, core.ActionRight:
			s.port.Move(1)
		case core.ActionSelect:
			s.chooseTheme(s.port.Highlighted())
		case core.ActionTheme, core.ActionBack:
			s.port.Close()
		}
		return nil
	}

	if !cur.Modal() {
		switch a {
		case core.ActionNextPage:
			return s.cycle(1)
		case core.ActionPrevPage:
			return s.cycle(-1)
		case core.ActionTheme:
			if !s.port.Toggle() {
				// No switcher on screen: step through the themes instead.
				s.chooseTheme(s.themes.Preferred().Next())
			}
			return nil
		case core.ActionBack:
			if s.current != PageShowroom {
				return s.show(PageShowroom)
			}
			return nil
		}
	}

	return cur.Update(s, a, msg)
}

func (s *site) chooseTheme(t theme.Theme) {
	s.port.Close()
	if err := s.themes.Choose(t); err != nil {
		s.fail(err)
	}
}

func (s *site) quit() tea.Cmd {
	s.page().Leave(s)
	s.quitting = true
	s.cancel()
	return tea.Quit
}

func (s *site) page() page {
	return s.pages[s.current]
}

// show switches to page id.
func (s *site) show(id string) tea.Cmd {
	next, ok := s.pages[id]
	if !ok {
		return nil
	}
	if id != s.current {
		s.page().Leave(s)
		s.current = id
	}
	s.logger.Debug("show page", "page", id, "car", s.car)
	return next.Enter(s)
}

// cycle moves through the navbar pages.
func (s *site) cycle(delta int) tea.Cmd {
	nav := registry.Nav()
	if len(nav) == 0 {
		return nil
	}
	idx := 0
	for i, p := range nav {
		if p.ID == s.current {
			idx = i
			break
		}
	}
	idx = ((idx+delta)%len(nav) + len(nav)) % len(nav)
	s.car = ""
	return s.show(nav[idx].ID)
}

// navigate opens a route such as "Buy-Car.html?car=cab". It implements
// purchase.Navigator for the buy controls.
func (s *site) navigate(route string) error {
	pageRoute, car := purchase.ParseDestination(route)
	info, err := registry.ByRoute(pageRoute)
	if err != nil {
		return err
	}
	if _, ok := s.pages[info.ID]; !ok {
		return fmt.Errorf("tui: page %q is not served", info.ID)
	}
	s.car = car
	s.pending = append(s.pending, s.show(info.ID))
	return nil
}

func (s *site) palette() theme.Palette {
	return s.port.Palette()
}

func (s *site) notify(msg string) {
	s.status = msg
	s.statusErr = false
}

func (s *site) fail(err error) {
	s.logger.Error("action failed", "error", err)
	s.status = err.Error()
	s.statusErr = true
}

// bodyHeight is the room left between the navbar and the footer.
func (s *site) bodyHeight() int {
	return max(s.height-2, 1)
}

// View renders the current state to a string for display.
func (m SiteModel) View() string {
	s := m.s
	if s.quitting {
		return ""
	}

	pal := s.palette()
	bodyH := s.bodyHeight()

	body := s.page().View(s, s.width, bodyH)
	if dd := s.port.Dropdown(); dd != "" {
		body = lipgloss.JoinVertical(lipgloss.Right, lipgloss.PlaceHorizontal(s.width, lipgloss.Right, dd), body)
	}
	body = pal.Base.Width(s.width).Height(bodyH).MaxHeight(bodyH).Render(body)

	return lipgloss.JoinVertical(lipgloss.Left, s.navbar(), body, s.footer())
}

func (s *site) navbar() string {
	pal := s.palette()

	items := []string{pal.Navbar.Bold(true).Render(" " + s.opts.Site.Title + " ")}
	for _, p := range registry.Nav() {
		style := pal.Navbar
		if p.ID == s.current {
			style = pal.NavActive
		}
		items = append(items, style.Render(" "+p.Title+" "))
	}
	left := lipgloss.JoinHorizontal(lipgloss.Top, items...)
	right := s.port.Button()

	gap := s.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		return pal.Navbar.MaxWidth(s.width).Render(left)
	}
	return left + pal.Navbar.Render(strings.Repeat(" ", gap)) + right
}

func (s *site) footer() string {
	pal := s.palette()
	if s.status != "" {
		style := pal.Success
		if s.statusErr {
			style = pal.Danger
		}
		return style.Width(s.width).MaxHeight(1).Render(s.status)
	}

	bindings := s.page().Help(s.keys)
	if !s.page().Modal() {
		bindings = append(bindings, s.keys.NextPage, s.keys.Theme, s.keys.Quit)
	}
	return pal.Muted.Width(s.width).MaxHeight(1).Render(s.help.View(bindingHelp(bindings)))
}

// Run starts the Bubble Tea program for a local session.
func Run(opts Options) error {
	model, err := NewSiteModel(opts)
	if err != nil {
		return err
	}
	defer model.s.cancel()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(), // The car follows the pointer
	)

	_, err = p.Run()
	return err
}
