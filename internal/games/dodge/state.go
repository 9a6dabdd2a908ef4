// Package dodge implements the car-dodging mini-game: road works fall from the
// top of the canvas and the player steers a car along the bottom to avoid them.
//
// The simulation is a set of pure functions over State measured in canvas
// units. Engine wraps them with the start/tick/game-over lifecycle and talks to
// the outside world through the Scheduler and Renderer interfaces.
package dodge

import (
	"math/rand"

	"github.com/vovakirdan/carlot/internal/config"
	"github.com/vovakirdan/carlot/internal/core"
)

// ID is the score-table identifier for the game.
const ID = "dodge"

// Phase is the lifecycle stage of a run.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Layout is the space the page gives the game, in canvas units.
type Layout struct {
	ContainerWidth float64 // Width of the column holding the canvas
	ViewportHeight float64 // Height of the visible window
}

// Canvas is the playing field size.
type Canvas struct {
	W, H float64
}

// Car is the player's vehicle.
type Car struct {
	core.RectF
	Symbol string
}

// Obstacle is a falling road-works block.
type Obstacle struct {
	core.RectF
}

// State is a snapshot of a run.
type State struct {
	Canvas    Canvas
	Car       Car
	Obstacles []Obstacle
	Score     int
	Phase     Phase
}

// TickResult summarizes what one Advance did.
type TickResult struct {
	Scored   int  // Obstacles that left the canvas this tick
	Spawned  bool // A new obstacle appeared
	GameOver bool // The car was hit
}

// CanvasFor sizes the canvas from the layout.
func CanvasFor(layout Layout, cfg config.DodgeConfig) Canvas {
	return Canvas{
		W: layout.ContainerWidth * cfg.Canvas.WidthRatio,
		H: layout.ViewportHeight * cfg.Canvas.HeightRatio,
	}
}

// NewState creates the state of a fresh run: empty road, zero score, the car
// centred on the container and raised BottomOffset above the canvas bottom.
func NewState(layout Layout, cfg config.DodgeConfig, symbol string) State {
	canvas := CanvasFor(layout, cfg)
	if symbol == "" {
		symbol = cfg.Car.Symbols[0]
	}

	x := layout.ContainerWidth/2 - cfg.Car.Width/2
	car := Car{
		RectF: core.NewRectF(
			ClampCarX(x, canvas.W, cfg.Car.Width),
			canvas.H-cfg.Car.BottomOffset,
			cfg.Car.Width,
			cfg.Car.Height,
		),
		Symbol: symbol,
	}

	return State{
		Canvas:    canvas,
		Car:       car,
		Obstacles: make([]Obstacle, 0, 8),
		Phase:     PhaseRunning,
	}
}

// ClampCarX keeps a car of width carW inside a canvas of width canvasW.
func ClampCarX(x, canvasW, carW float64) float64 {
	return core.ClampF(x, 0, max(canvasW-carW, 0))
}

// MoveCar centres the car on pointerX, measured from the canvas's left edge.
func MoveCar(s State, pointerX float64) State {
	s.Car.X = ClampCarX(pointerX-s.Car.W/2, s.Canvas.W, s.Car.W)
	return s
}

// Collides reports whether two boxes overlap. Touching edges do not count.
func Collides(a, b core.RectF) bool {
	return a.Intersects(b)
}

// Advance runs one tick. Obstacles fall by the configured speed and are tested
// against the car in order; the first hit ends the run. Obstacles below the
// canvas are dropped and scored. Finally a new obstacle may spawn above the
// canvas. Advance on a state that is not running returns it unchanged.
func Advance(s State, cfg config.DodgeConfig, rng *rand.Rand) (State, TickResult) {
	var res TickResult
	if s.Phase != PhaseRunning {
		return s, res
	}

	retained := make([]Obstacle, 0, len(s.Obstacles)+1)
	for i, o := range s.Obstacles {
		o.Y += cfg.Loop.Speed

		if Collides(s.Car.RectF, o.RectF) {
			retained = append(retained, o)
			retained = append(retained, s.Obstacles[i+1:]...)
			s.Obstacles = retained
			s.Phase = PhaseGameOver
			res.GameOver = true
			return s, res
		}

		if o.Y > s.Canvas.H {
			s.Score++
			res.Scored++
			continue
		}
		retained = append(retained, o)
	}

	if rng.Float64() < cfg.Loop.SpawnChance {
		x := rng.Float64() * max(s.Canvas.W-cfg.Obstacle.Width, 0)
		retained = append(retained, Obstacle{
			RectF: core.NewRectF(x, -cfg.Obstacle.Height, cfg.Obstacle.Width, cfg.Obstacle.Height),
		})
		res.Spawned = true
	}

	s.Obstacles = retained
	return s, res
}

// Autopilot picks a pointer position that steers the car away from the
// closest obstacle still above it. Used by the headless simulation.
func Autopilot(s State) float64 {
	center := s.Car.X + s.Car.W/2

	var threat *Obstacle
	for i := range s.Obstacles {
		o := &s.Obstacles[i]
		if o.Bottom() > s.Car.Y || o.Right() <= s.Car.X-s.Car.W || o.X >= s.Car.Right()+s.Car.W {
			continue
		}
		if threat == nil || o.Y > threat.Y {
			threat = o
		}
	}
	if threat == nil {
		return center
	}

	left := threat.X - s.Car.W/2 - 1
	right := threat.Right() + s.Car.W/2 + 1
	if left-s.Car.W/2 < 0 {
		return right
	}
	if right+s.Car.W/2 > s.Canvas.W {
		return left
	}
	if center-left < right-center {
		return left
	}
	return right
}
