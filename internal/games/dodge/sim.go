package dodge

import (
	"context"
)

// Steer returns the pointer position to use before a tick.
type Steer func(State) float64

// RunHeadless starts e at layout and ticks it from sched until the run ends or
// ctx is done. steer may be nil to leave the car where it is.
func RunHeadless(ctx context.Context, e *Engine, sched *TimerScheduler, layout Layout, steer Steer) (State, error) {
	e.Start(layout)

	for e.Phase() == PhaseRunning {
		select {
		case <-ctx.Done():
			sched.Cancel()
			return e.State(), ctx.Err()
		case <-sched.C():
			if steer != nil {
				e.MovePointer(steer(e.State()))
			}
			e.Tick()
		}
	}
	return e.State(), nil
}
