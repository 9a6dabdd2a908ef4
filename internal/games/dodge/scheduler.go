package dodge

import (
	"sync"
	"time"
)

// TimerScheduler is a Scheduler backed by time.Ticker for headless loops.
// The owner selects on C and calls Engine.Tick for each value.
type TimerScheduler struct {
	mu     sync.Mutex
	ticker *time.Ticker
}

// NewTimerScheduler creates a stopped scheduler.
func NewTimerScheduler() *TimerScheduler {
	return &TimerScheduler{}
}

// Schedule implements Scheduler. Any previous ticker is stopped first.
func (s *TimerScheduler) Schedule(interval time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ticker != nil {
		s.ticker.Stop()
	}
	s.ticker = time.NewTicker(interval)
}

// Cancel implements Scheduler.
func (s *TimerScheduler) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ticker != nil {
		s.ticker.Stop()
		s.ticker = nil
	}
}

// C returns the tick channel, or nil while cancelled. Receiving from a nil
// channel blocks, so a select over C simply stops firing.
func (s *TimerScheduler) C() <-chan time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ticker == nil {
		return nil
	}
	return s.ticker.C
}

// Active reports whether a tick is armed.
func (s *TimerScheduler) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.ticker != nil
}
