package dodge

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/carlot/internal/config"
	"github.com/vovakirdan/carlot/internal/core"
)

// quietConfig returns the default config with spawning disabled so tests
// control every obstacle.
func quietConfig() config.DodgeConfig {
	cfg := config.DefaultDodgeConfig()
	cfg.Loop.SpawnChance = 0
	return cfg
}

func obstacleAt(x, y float64) Obstacle {
	return Obstacle{RectF: core.NewRectF(x, y, 40, 40)}
}

func TestNewState(t *testing.T) {
	cfg := config.DefaultDodgeConfig()
	s := NewState(Layout{ContainerWidth: 500, ViewportHeight: 500}, cfg, "")

	if s.Canvas.W != 450 || s.Canvas.H != 400 {
		t.Errorf("Canvas = %+v, expected 450x400", s.Canvas)
	}
	if s.Car.X != 230 || s.Car.Y != 350 {
		t.Errorf("Car at (%v, %v), expected (230, 350)", s.Car.X, s.Car.Y)
	}
	if s.Car.W != 40 || s.Car.H != 40 {
		t.Errorf("Car size %vx%v, expected 40x40", s.Car.W, s.Car.H)
	}
	if s.Car.Symbol != "🚗" {
		t.Errorf("Car.Symbol = %q, expected the default car", s.Car.Symbol)
	}
	if s.Score != 0 || len(s.Obstacles) != 0 || s.Phase != PhaseRunning {
		t.Errorf("fresh state = %+v", s)
	}
}

func TestCollides(t *testing.T) {
	car := core.NewRectF(100, 100, 40, 40)

	tests := []struct {
		name     string
		other    core.RectF
		expected bool
	}{
		{"same box", core.NewRectF(100, 100, 40, 40), true},
		{"touching right edge", core.NewRectF(140, 100, 40, 40), false},
		{"touching left edge", core.NewRectF(60, 100, 40, 40), false},
		{"touching top edge", core.NewRectF(100, 60, 40, 40), false},
		{"touching bottom edge", core.NewRectF(100, 140, 40, 40), false},
		{"overlap by a fraction", core.NewRectF(139.5, 100, 40, 40), true},
		{"corner overlap", core.NewRectF(130, 61, 40, 40), true},
		{"far away", core.NewRectF(400, 400, 40, 40), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Collides(car, tt.other); got != tt.expected {
				t.Errorf("Collides() = %v, expected %v", got, tt.expected)
			}
			if got := Collides(tt.other, car); got != tt.expected {
				t.Errorf("Collides() reversed = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestMoveCarClamp(t *testing.T) {
	s := NewState(Layout{ContainerWidth: 500, ViewportHeight: 500}, config.DefaultDodgeConfig(), "")

	tests := []struct {
		pointer  float64
		expected float64
	}{
		{-50, 0},
		{0, 0},
		{20, 0},
		{100, 80},
		{430, 410},
		{1000, 410}, // Canvas.W - Car.W
	}

	for _, tt := range tests {
		got := MoveCar(s, tt.pointer).Car.X
		if got != tt.expected {
			t.Errorf("MoveCar(%v).Car.X = %v, expected %v", tt.pointer, got, tt.expected)
		}
	}
}

func TestClampCarXNarrowCanvas(t *testing.T) {
	if got := ClampCarX(15, 30, 40); got != 0 {
		t.Errorf("ClampCarX() = %v, expected 0 on a canvas narrower than the car", got)
	}
}

func TestAdvanceFalls(t *testing.T) {
	cfg := quietConfig()
	s := NewState(Layout{ContainerWidth: 500, ViewportHeight: 500}, cfg, "")
	s.Obstacles = []Obstacle{obstacleAt(0, 10)}

	next, res := Advance(s, cfg, rand.New(rand.NewSource(1)))

	if next.Obstacles[0].Y != 12 {
		t.Errorf("obstacle y = %v, expected 12", next.Obstacles[0].Y)
	}
	if res != (TickResult{}) {
		t.Errorf("TickResult = %+v, expected zero", res)
	}
	if s.Obstacles[0].Y != 10 {
		t.Error("Advance must not mutate the input state's obstacles")
	}
}

func TestAdvanceRemovesPassedAndKeepsNext(t *testing.T) {
	cfg := quietConfig()
	s := NewState(Layout{ContainerWidth: 500, ViewportHeight: 500}, cfg, "")
	s.Car.X = 0
	// The first obstacle leaves the canvas this tick, the second must survive
	// and still move.
	s.Obstacles = []Obstacle{
		obstacleAt(300, s.Canvas.H-1),
		obstacleAt(300, 10),
	}

	next, res := Advance(s, cfg, rand.New(rand.NewSource(1)))

	if next.Score != 1 || res.Scored != 1 {
		t.Errorf("Score = %d (scored %d), expected 1", next.Score, res.Scored)
	}
	if len(next.Obstacles) != 1 {
		t.Fatalf("expected 1 obstacle retained, got %d", len(next.Obstacles))
	}
	if next.Obstacles[0].Y != 12 {
		t.Errorf("retained obstacle y = %v, expected 12", next.Obstacles[0].Y)
	}
}

func TestAdvanceExactlyAtBottomStays(t *testing.T) {
	cfg := quietConfig()
	s := NewState(Layout{ContainerWidth: 500, ViewportHeight: 500}, cfg, "")
	s.Car.X = 0
	s.Obstacles = []Obstacle{obstacleAt(300, s.Canvas.H-2)}

	next, _ := Advance(s, cfg, rand.New(rand.NewSource(1)))
	if len(next.Obstacles) != 1 || next.Score != 0 {
		t.Error("an obstacle at exactly the canvas height is not yet removed")
	}
}

func TestAdvanceCollision(t *testing.T) {
	cfg := quietConfig()
	s := NewState(Layout{ContainerWidth: 500, ViewportHeight: 500}, cfg, "")
	s.Obstacles = []Obstacle{
		obstacleAt(s.Car.X, s.Car.Y-41), // Bottom reaches car.Y+1 after falling
		obstacleAt(0, s.Canvas.H-1),     // Would score, but the hit comes first
	}

	next, res := Advance(s, cfg, rand.New(rand.NewSource(1)))

	if !res.GameOver || next.Phase != PhaseGameOver {
		t.Fatalf("expected game over, got phase %v", next.Phase)
	}
	if next.Score != 0 {
		t.Errorf("Score = %d, expected no scoring after the collision", next.Score)
	}
}

func TestAdvanceSpawn(t *testing.T) {
	cfg := quietConfig()
	cfg.Loop.SpawnChance = 1
	s := NewState(Layout{ContainerWidth: 500, ViewportHeight: 500}, cfg, "")
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 20; i++ {
		var res TickResult
		s, res = Advance(s, cfg, rng)
		if !res.Spawned {
			t.Fatal("expected a spawn every tick with chance 1")
		}
		o := s.Obstacles[len(s.Obstacles)-1]
		if o.Y != -40 || o.W != 40 || o.H != 40 {
			t.Errorf("spawned obstacle = %+v", o.RectF)
		}
		if o.X < 0 || o.X > s.Canvas.W-40 {
			t.Errorf("spawned x = %v outside [0, %v]", o.X, s.Canvas.W-40)
		}
	}
}

func TestAdvanceNotRunning(t *testing.T) {
	cfg := quietConfig()
	s := NewState(Layout{ContainerWidth: 500, ViewportHeight: 500}, cfg, "")
	s.Phase = PhaseGameOver
	s.Obstacles = []Obstacle{obstacleAt(0, 10)}

	next, _ := Advance(s, cfg, rand.New(rand.NewSource(1)))
	if next.Obstacles[0].Y != 10 {
		t.Error("a finished run should not advance")
	}
}

func TestAutopilotDodges(t *testing.T) {
	cfg := quietConfig()
	s := NewState(Layout{ContainerWidth: 500, ViewportHeight: 500}, cfg, "")
	s.Obstacles = []Obstacle{obstacleAt(s.Car.X, 100)}

	moved := MoveCar(s, Autopilot(s))
	if moved.Car.X < s.Obstacles[0].Right() && moved.Car.Right() > s.Obstacles[0].X {
		t.Errorf("car at %v still under the obstacle at %v", moved.Car.X, s.Obstacles[0].X)
	}
}

func TestAutopilotIdle(t *testing.T) {
	s := NewState(Layout{ContainerWidth: 500, ViewportHeight: 500}, quietConfig(), "")
	if got := Autopilot(s); got != s.Car.X+s.Car.W/2 {
		t.Errorf("Autopilot() = %v, expected to hold the centre %v", got, s.Car.X+s.Car.W/2)
	}
}
