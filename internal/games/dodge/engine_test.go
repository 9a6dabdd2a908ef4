package dodge

import (
	"context"
	"testing"
	"time"

	"github.com/vovakirdan/carlot/internal/config"
)

type fakeScheduler struct {
	scheduled []time.Duration
	cancels   int
	active    bool
}

func (s *fakeScheduler) Schedule(d time.Duration) {
	s.scheduled = append(s.scheduled, d)
	s.active = true
}

func (s *fakeScheduler) Cancel() {
	s.cancels++
	s.active = false
}

type fakeRenderer struct {
	frames       []Frame
	scores       []int
	gameOvers    int
	startEnabled []bool
}

func (r *fakeRenderer) DrawFrame(f Frame) { r.frames = append(r.frames, f) }
func (r *fakeRenderer) UpdateScore(score int) { r.scores = append(r.scores, score) }
func (r *fakeRenderer) ShowGameOver(Canvas) { r.gameOvers++ }
func (r *fakeRenderer) SetStartEnabled(on bool) { r.startEnabled = append(r.startEnabled, on) }
func (r *fakeRenderer) lastStartEnabled() bool { return r.startEnabled[len(r.startEnabled)-1] }
func (r *fakeRenderer) lastScore() int { return r.scores[len(r.scores)-1] }

var testLayout = Layout{ContainerWidth: 500, ViewportHeight: 500}

func newTestEngine() (*Engine, *fakeScheduler, *fakeRenderer) {
	sched := &fakeScheduler{}
	render := &fakeRenderer{}
	return NewEngine(quietConfig(), sched, render, 1, nil), sched, render
}

func TestEngineStart(t *testing.T) {
	e, sched, render := newTestEngine()

	if !e.Start(testLayout) {
		t.Fatal("Start() = false on an idle engine")
	}

	if e.Phase() != PhaseRunning {
		t.Errorf("Phase() = %v, expected running", e.Phase())
	}
	if len(sched.scheduled) != 1 || sched.scheduled[0] != 20*time.Millisecond {
		t.Errorf("scheduled = %v, expected one 20ms tick", sched.scheduled)
	}
	if len(render.scores) != 1 || render.scores[0] != 0 {
		t.Errorf("scores = %v, expected [0]", render.scores)
	}
	if render.lastStartEnabled() {
		t.Error("start control should be disabled while running")
	}
}

func TestEngineStartWhileRunningIgnored(t *testing.T) {
	e, sched, _ := newTestEngine()
	e.Start(testLayout)

	if e.Start(testLayout) {
		t.Error("Start() while running should be ignored")
	}
	if len(sched.scheduled) != 1 {
		t.Errorf("scheduled %d ticks, expected a single loop", len(sched.scheduled))
	}
}

func TestEngineTickDrawsBeforeAdvance(t *testing.T) {
	e, _, render := newTestEngine()
	e.Start(testLayout)
	e.state.Obstacles = []Obstacle{obstacleAt(0, 10)}

	e.Tick()

	if len(render.frames) != 1 {
		t.Fatalf("expected 1 frame, got %d", len(render.frames))
	}
	f := render.frames[0]
	if f.Obstacles[0].Y != 10 {
		t.Errorf("frame obstacle y = %v, expected the pre-advance 10", f.Obstacles[0].Y)
	}
	if f.ObstacleSymbol != "🚧" {
		t.Errorf("ObstacleSymbol = %q", f.ObstacleSymbol)
	}
	if e.State().Obstacles[0].Y != 12 {
		t.Errorf("state obstacle y = %v, expected 12", e.State().Obstacles[0].Y)
	}
}

func TestEngineScoreUpdates(t *testing.T) {
	e, _, render := newTestEngine()
	e.Start(testLayout)
	e.state.Car.X = 0
	e.state.Obstacles = []Obstacle{obstacleAt(300, e.state.Canvas.H-1)}

	e.Tick()

	if render.lastScore() != 1 {
		t.Errorf("displayed score = %d, expected 1", render.lastScore())
	}
}

func TestEngineScoreShownBeforeCrash(t *testing.T) {
	e, _, render := newTestEngine()
	e.Start(testLayout)
	e.state.Car.X = 0
	e.state.Obstacles = []Obstacle{
		obstacleAt(300, e.state.Canvas.H-1),
		obstacleAt(0, e.state.Car.Y-2),
	}

	e.Tick()

	if e.Phase() != PhaseGameOver {
		t.Fatalf("Phase() = %v, expected game over", e.Phase())
	}
	if e.State().Score != 1 || render.lastScore() != 1 {
		t.Errorf("score = %d, displayed = %d, expected both 1", e.State().Score, render.lastScore())
	}
}

func TestEngineCollisionEndsRun(t *testing.T) {
	e, sched, render := newTestEngine()
	var saved []int
	e.OnGameOver(func(score int) { saved = append(saved, score) })

	e.Start(testLayout)
	e.state.Score = 3
	e.state.Obstacles = []Obstacle{obstacleAt(e.state.Car.X, e.state.Car.Y-41)}

	e.Tick()

	if e.Phase() != PhaseGameOver {
		t.Fatalf("Phase() = %v, expected game over", e.Phase())
	}
	if sched.active || sched.cancels != 1 {
		t.Errorf("scheduler active=%v cancels=%d, expected cancelled once", sched.active, sched.cancels)
	}
	if render.gameOvers != 1 {
		t.Errorf("ShowGameOver called %d times, expected 1", render.gameOvers)
	}
	if !render.lastStartEnabled() {
		t.Error("start control should be re-enabled after game over")
	}
	if len(saved) != 1 || saved[0] != 3 {
		t.Errorf("game over callback got %v, expected [3]", saved)
	}

	// Late ticks are ignored
	e.Tick()
	if render.gameOvers != 1 || len(saved) != 1 {
		t.Error("ticks after game over should do nothing")
	}
}

func TestEngineRestartAfterGameOver(t *testing.T) {
	e, sched, _ := newTestEngine()
	e.Start(testLayout)
	e.state.Obstacles = []Obstacle{obstacleAt(e.state.Car.X, e.state.Car.Y-41)}
	e.Tick()

	if !e.Start(testLayout) {
		t.Fatal("Start() after game over should begin a new run")
	}
	if e.State().Score != 0 || len(e.State().Obstacles) != 0 {
		t.Error("new run should start from a clean state")
	}
	if len(sched.scheduled) != 2 {
		t.Errorf("scheduled = %d, expected 2", len(sched.scheduled))
	}
}

func TestEngineMovePointer(t *testing.T) {
	e, _, _ := newTestEngine()

	e.MovePointer(100)
	if e.Phase() != PhaseIdle {
		t.Error("pointer moves must not start the game")
	}

	e.Start(testLayout)
	e.MovePointer(-50)
	if e.State().Car.X != 0 {
		t.Errorf("Car.X = %v, expected 0", e.State().Car.X)
	}
	e.MovePointer(10_000)
	if want := e.State().Canvas.W - 40; e.State().Car.X != want {
		t.Errorf("Car.X = %v, expected %v", e.State().Car.X, want)
	}

	e.Nudge(-10)
	if want := e.State().Canvas.W - 50; e.State().Car.X != want {
		t.Errorf("Car.X after nudge = %v, expected %v", e.State().Car.X, want)
	}
}

func TestEngineResize(t *testing.T) {
	bigger := Layout{ContainerWidth: 800, ViewportHeight: 600}

	t.Run("idle", func(t *testing.T) {
		e, sched, _ := newTestEngine()
		if e.Resize(bigger) {
			t.Error("Resize() should not start an idle game")
		}
		if len(sched.scheduled) != 0 || e.Phase() != PhaseIdle {
			t.Error("idle engine was started by resize")
		}
	})

	t.Run("running", func(t *testing.T) {
		e, sched, _ := newTestEngine()
		e.Start(testLayout)
		e.state.Score = 5

		if !e.Resize(bigger) {
			t.Fatal("Resize() should restart a running game")
		}
		if sched.cancels != 1 || len(sched.scheduled) != 2 {
			t.Errorf("cancels=%d scheduled=%d, expected 1 and 2", sched.cancels, len(sched.scheduled))
		}
		if e.State().Canvas.W != 720 || e.State().Score != 0 {
			t.Errorf("state after resize = %+v", e.State().Canvas)
		}
	})

	t.Run("game over", func(t *testing.T) {
		e, _, _ := newTestEngine()
		e.Start(testLayout)
		e.state.Obstacles = []Obstacle{obstacleAt(e.state.Car.X, e.state.Car.Y-41)}
		e.Tick()

		if !e.Resize(bigger) || e.Phase() != PhaseRunning {
			t.Error("Resize() after game over should restart")
		}
	})
}

func TestEngineSymbol(t *testing.T) {
	e, _, _ := newTestEngine()
	e.SetSymbol("🚕")
	e.Start(testLayout)

	if e.State().Car.Symbol != "🚕" {
		t.Errorf("Car.Symbol = %q, expected the selected symbol", e.State().Car.Symbol)
	}
	if got := e.NextSymbol(); got != "🚓" {
		t.Errorf("NextSymbol() = %q, expected 🚓", got)
	}
	if e.State().Car.Symbol != "🚓" {
		t.Error("changing the symbol mid-run should update the car")
	}

	e.SetSymbol("🚚")
	if got := e.NextSymbol(); got != "🚗" {
		t.Errorf("NextSymbol() = %q, expected wrap-around to 🚗", got)
	}
}

func TestRunHeadless(t *testing.T) {
	cfg := config.DefaultDodgeConfig()
	cfg.Loop.TickInterval = time.Millisecond
	cfg.Loop.SpawnChance = 1
	cfg.Loop.Speed = 10

	sched := NewTimerScheduler()
	e := NewEngine(cfg, sched, &fakeRenderer{}, 3, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// A canvas barely wider than the car leaves nowhere to hide.
	final, err := RunHeadless(ctx, e, sched, Layout{ContainerWidth: 50, ViewportHeight: 100}, nil)
	if err != nil {
		t.Fatalf("RunHeadless() failed: %v", err)
	}
	if final.Phase != PhaseGameOver {
		t.Errorf("Phase = %v, expected game over", final.Phase)
	}
	if sched.Active() {
		t.Error("scheduler should be cancelled at game over")
	}
}

func TestRunHeadlessContextDone(t *testing.T) {
	cfg := config.DefaultDodgeConfig()
	cfg.Loop.SpawnChance = 0

	sched := NewTimerScheduler()
	e := NewEngine(cfg, sched, &fakeRenderer{}, 3, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	final, err := RunHeadless(ctx, e, sched, testLayout, Autopilot)
	if err == nil {
		t.Fatal("expected the context error")
	}
	if final.Phase != PhaseRunning {
		t.Errorf("Phase = %v, expected the run to still be in progress", final.Phase)
	}
}

func TestEngineStop(t *testing.T) {
	e, sched, render := newTestEngine()
	called := false
	e.OnGameOver(func(int) { called = true })

	e.Stop()
	if sched.cancels != 0 {
		t.Error("Stop() on an idle engine should not touch the scheduler")
	}

	e.Start(testLayout)
	e.Stop()

	if e.Phase() != PhaseIdle {
		t.Errorf("Phase() = %v, expected idle", e.Phase())
	}
	if sched.active {
		t.Error("scheduler still active after Stop()")
	}
	if !render.lastStartEnabled() {
		t.Error("start control should be re-enabled")
	}
	if called {
		t.Error("Stop() must not report a score")
	}
	if e.Layout() != testLayout {
		t.Errorf("Layout() = %+v, expected %+v", e.Layout(), testLayout)
	}
	if e.Resize(testLayout) {
		t.Error("Resize() after Stop() should not restart")
	}
}
