package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/carlot/internal/core"
	"github.com/vovakirdan/carlot/internal/games/dodge"
)

// canvasRenderer implements dodge.Renderer on a character screen.
// One cell covers ux by uy canvas units.
type canvasRenderer struct {
	screen       *core.Screen
	ux, uy       float64
	score        int
	startEnabled bool
	gameOver     bool
}

func newCanvasRenderer(ux, uy float64) *canvasRenderer {
	return &canvasRenderer{
		screen:       core.NewScreen(0, 0),
		ux:           ux,
		uy:           uy,
		startEnabled: true,
	}
}

// fit sizes the screen to cover the canvas.
func (r *canvasRenderer) fit(c dodge.Canvas) {
	r.screen.Resize(int(c.W/r.ux), int(c.H/r.uy))
}

// DrawFrame implements dodge.Renderer.
func (r *canvasRenderer) DrawFrame(f dodge.Frame) {
	r.fit(f.Canvas)
	r.screen.Clear()
	r.gameOver = false

	for _, o := range f.Obstacles {
		x, y := o.Cell(r.ux, r.uy)
		r.screen.DrawTextColored(x, y, f.ObstacleSymbol, core.ColorObstacle)
	}
	x, y := f.Car.Cell(r.ux, r.uy)
	r.screen.DrawTextColored(x, y, f.Car.Symbol, core.ColorCar)
}

// UpdateScore implements dodge.Renderer.
func (r *canvasRenderer) UpdateScore(score int) {
	r.score = score
}

// ShowGameOver implements dodge.Renderer. The last frame is wiped first.
func (r *canvasRenderer) ShowGameOver(c dodge.Canvas) {
	r.fit(c)
	r.screen.Clear()
	x, y := core.NewRectF(c.W/2-100, c.H/2-15, 0, 0).Cell(r.ux, r.uy)
	r.screen.DrawTextColored(max(x, 0), max(y, 0), "Game Over", core.ColorDanger)
	r.gameOver = true
}

// SetStartEnabled implements dodge.Renderer.
func (r *canvasRenderer) SetStartEnabled(enabled bool) {
	r.startEnabled = enabled
}

// gamePage hosts the car-dodging game.
type gamePage struct {
	engine *dodge.Engine
	sched  *tickScheduler
	canvas *canvasRenderer

	// Terminal cell of the canvas's top-left corner, for pointer mapping.
	originX, originY int
}

// Rows above the canvas: the navbar, the score line and the frame border.
const canvasTop = 3

func newGamePage(s *site) *gamePage {
	cfg := s.opts.Dodge
	if s.opts.Runtime.TickRate > 0 {
		cfg.Loop.TickInterval = tickInterval(s.opts.Runtime.TickRate)
	}

	g := &gamePage{
		sched:  &tickScheduler{},
		canvas: newCanvasRenderer(cfg.Canvas.UnitsPerCellX, cfg.Canvas.UnitsPerCellY),
	}
	g.engine = dodge.NewEngine(cfg, g.sched, g.canvas, s.opts.Runtime.Seed, s.logger.WithPrefix(dodge.ID))
	g.engine.OnGameOver(func(score int) { s.gameOver(score) })
	return g
}

// layout maps the page body to the game's container and viewport. The frame
// border takes one cell on each side and the score line one row.
func (g *gamePage) layout(s *site) dodge.Layout {
	cfg := g.engine.Config().Canvas
	w := max(s.width-2, 0)
	h := max(s.bodyHeight()-3, 0)
	return dodge.Layout{
		ContainerWidth: float64(w) * cfg.UnitsPerCellX,
		ViewportHeight: float64(h) * cfg.UnitsPerCellY,
	}
}

// place sizes the canvas for the current layout and records where it lands
// on screen. A run in progress is restarted with the same layout, so the
// screen never lags behind the engine's canvas.
func (g *gamePage) place(s *site) dodge.Layout {
	l := g.layout(s)
	g.canvas.fit(dodge.CanvasFor(l, g.engine.Config()))
	cols := g.canvas.screen.Width()
	g.originX = (s.width-cols-2)/2 + 1
	g.originY = canvasTop
	return l
}

func (g *gamePage) Enter(s *site) tea.Cmd {
	g.place(s)
	return nil
}

// Leave abandons a run in progress.
func (g *gamePage) Leave(*site) {
	g.engine.Stop()
	g.canvas.screen.Clear()
	g.canvas.gameOver = false
}

func (g *gamePage) Typing() bool { return false }

func (g *gamePage) Modal() bool { return false }

func (g *gamePage) Help(k KeyMap) []key.Binding {
	return []key.Binding{k.Start, k.Left, k.Right, k.NextCar}
}

func (g *gamePage) Update(s *site, a core.Action, msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case TickMsg:
		if !g.sched.Accept(msg) {
			return nil
		}
		g.engine.Tick()
		return g.sched.Cmd()

	case tea.WindowSizeMsg:
		if g.engine.Resize(g.place(s)) {
			return g.sched.Cmd()
		}
		return nil

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionMotion {
			g.pointer(msg.X, msg.Y)
		}
		return nil
	}

	ux := g.engine.Config().Canvas.UnitsPerCellX
	switch a {
	case core.ActionStart:
		if g.engine.Start(g.place(s)) {
			return g.sched.Cmd()
		}
	case core.ActionLeft:
		g.engine.Nudge(-ux)
	case core.ActionRight:
		g.engine.Nudge(ux)
	case core.ActionNextCar:
		g.engine.NextSymbol()
	}
	return nil
}

// pointer steers the car when the mouse moves over the canvas.
func (g *gamePage) pointer(x, y int) {
	col, row := x-g.originX, y-g.originY
	if col < 0 || col >= g.canvas.screen.Width() || row < 0 || row >= g.canvas.screen.Height() {
		return
	}
	ux := g.engine.Config().Canvas.UnitsPerCellX
	g.engine.MovePointer(float64(col)*ux + ux/2)
}

func (g *gamePage) View(s *site, width, height int) string {
	pal := s.palette()

	start := pal.Button.Render("Start (s)")
	if !g.canvas.startEnabled {
		start = pal.Disabled.Render("Start (s)")
	}
	status := pal.Base.Render(fmt.Sprintf("Score: %d   Car: %s   ", g.canvas.score, g.engine.Symbol())) + start

	body := RenderScreen(g.canvas.screen, pal)
	if g.engine.Phase() == dodge.PhaseIdle && !g.canvas.gameOver {
		hint := core.NewScreen(g.canvas.screen.Width(), g.canvas.screen.Height())
		hint.DrawTextCentered(hint.Height()/2, "Press s to start. Steer with the mouse or ←/→.")
		body = RenderScreen(hint, pal)
	}
	frame := pal.Border.Border(lipgloss.RoundedBorder()).BorderForeground(pal.Border.GetForeground()).Render(body)

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.PlaceHorizontal(width, lipgloss.Center, status),
		lipgloss.PlaceHorizontal(width, lipgloss.Center, frame),
	)
}

// gameOver records the run's score.
func (s *site) gameOver(score int) {
	s.notify(fmt.Sprintf("Game over! Score %d. Press s to play again.", score))
	if s.opts.Store == nil || score <= 0 {
		return
	}
	if _, err := s.opts.Store.SavePlayerScore(dodge.ID, s.opts.Player, score); err != nil {
		s.logger.Warn("cannot save score", "error", err)
	}
}
