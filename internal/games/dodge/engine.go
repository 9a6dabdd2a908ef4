package dodge

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/carlot/internal/config"
)

// Scheduler drives the fixed-tick loop. Schedule arms a repeating tick that
// calls Engine.Tick; Cancel stops it so no further ticks are delivered.
type Scheduler interface {
	Schedule(interval time.Duration)
	Cancel()
}

// Frame is what gets drawn on each tick.
type Frame struct {
	Canvas         Canvas
	Car            Car
	Obstacles      []Obstacle
	ObstacleSymbol string
	Score          int
}

// Renderer receives every visible change. The engine never reads back from it.
type Renderer interface {
	DrawFrame(f Frame)
	UpdateScore(score int)
	ShowGameOver(c Canvas)
	SetStartEnabled(enabled bool)
}

// Engine owns one run of the game and its tick handle.
// It is not safe for concurrent use; callers serialize ticks and input.
type Engine struct {
	cfg      config.DodgeConfig
	sched    Scheduler
	render   Renderer
	rng      *rand.Rand
	logger   *log.Logger
	state    State
	symbol   string
	layout   Layout
	gameOver func(score int)
}

// NewEngine creates an idle engine. A nil logger discards output.
func NewEngine(cfg config.DodgeConfig, sched Scheduler, render Renderer, seed int64, logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Engine{
		cfg:    cfg,
		sched:  sched,
		render: render,
		rng:    rand.New(rand.NewSource(seed)),
		logger: logger,
		symbol: cfg.Car.Symbols[0],
	}
}

// OnGameOver registers a callback that receives the final score once per run.
func (e *Engine) OnGameOver(fn func(score int)) {
	e.gameOver = fn
}

// State returns a snapshot of the current run.
func (e *Engine) State() State {
	return e.state
}

// Phase returns the lifecycle stage.
func (e *Engine) Phase() Phase {
	return e.state.Phase
}

// Symbol returns the selected car glyph.
func (e *Engine) Symbol() string {
	return e.symbol
}

// Config returns the game configuration.
func (e *Engine) Config() config.DodgeConfig {
	return e.cfg
}

// Start begins a new run sized to layout. Starting while a run is in progress
// is ignored, as the start control is disabled then.
func (e *Engine) Start(layout Layout) bool {
	if e.state.Phase == PhaseRunning {
		return false
	}
	e.start(layout)
	return true
}

func (e *Engine) start(layout Layout) {
	e.layout = layout
	e.state = NewState(layout, e.cfg, e.symbol)
	e.render.UpdateScore(0)
	e.sched.Schedule(e.cfg.Loop.TickInterval)
	e.render.SetStartEnabled(false)
	e.logger.Debug("run started", "canvas_w", e.state.Canvas.W, "canvas_h", e.state.Canvas.H)
}

// Tick draws the current frame, then advances the simulation one step.
func (e *Engine) Tick() {
	if e.state.Phase != PhaseRunning {
		return
	}

	e.render.DrawFrame(e.frame())

	next, res := Advance(e.state, e.cfg, e.rng)
	e.state = next

	if res.Scored > 0 {
		e.render.UpdateScore(e.state.Score)
	}
	if res.GameOver {
		e.end()
	}
}

func (e *Engine) end() {
	e.sched.Cancel()
	e.render.ShowGameOver(e.state.Canvas)
	e.render.SetStartEnabled(true)
	e.logger.Info("game over", "score", e.state.Score)
	if e.gameOver != nil {
		e.gameOver(e.state.Score)
	}
}

func (e *Engine) frame() Frame {
	obstacles := make([]Obstacle, len(e.state.Obstacles))
	copy(obstacles, e.state.Obstacles)
	return Frame{
		Canvas:         e.state.Canvas,
		Car:            e.state.Car,
		Obstacles:      obstacles,
		ObstacleSymbol: e.cfg.Obstacle.Symbol,
		Score:          e.state.Score,
	}
}

// MovePointer steers the car so it is centred on x (canvas units from the
// canvas's left edge). Ignored unless a run is in progress.
func (e *Engine) MovePointer(x float64) {
	if e.state.Phase != PhaseRunning {
		return
	}
	e.state = MoveCar(e.state, x)
}

// Nudge moves the car by dx canvas units.
func (e *Engine) Nudge(dx float64) {
	if e.state.Phase != PhaseRunning {
		return
	}
	e.state = MoveCar(e.state, e.state.Car.X+e.state.Car.W/2+dx)
}

// SetSymbol changes the car glyph. The choice carries over to later runs.
func (e *Engine) SetSymbol(symbol string) {
	if symbol == "" {
		return
	}
	e.symbol = symbol
	e.state.Car.Symbol = symbol
}

// NextSymbol cycles through the configured car glyphs and returns the new one.
func (e *Engine) NextSymbol() string {
	syms := e.cfg.Car.Symbols
	next := syms[0]
	for i, s := range syms {
		if s == e.symbol {
			next = syms[(i+1)%len(syms)]
			break
		}
	}
	e.SetSymbol(next)
	return next
}

// Resize restarts a started game with a canvas sized to layout. An engine
// that was never started only remembers the layout.
func (e *Engine) Resize(layout Layout) bool {
	if e.state.Phase == PhaseIdle {
		e.layout = layout
		return false
	}
	e.sched.Cancel()
	e.start(layout)
	return true
}

// Stop abandons the current run without reporting a score and re-enables the
// start control. The layout is kept for the next Start.
func (e *Engine) Stop() {
	if e.state.Phase == PhaseIdle {
		return
	}
	e.sched.Cancel()
	e.state = State{Canvas: e.state.Canvas, Phase: PhaseIdle}
	e.render.SetStartEnabled(true)
	e.logger.Debug("run stopped")
}

// Layout returns the layout of the last start or resize.
func (e *Engine) Layout() Layout {
	return e.layout
}
