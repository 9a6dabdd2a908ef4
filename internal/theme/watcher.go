package theme

import (
	"context"
	"time"
)

// Watcher polls the dark-background signal and reports changes.
// Terminals have no change notification, so polling stands in for one.
type Watcher struct {
	probe    func() bool
	interval time.Duration
}

// NewWatcher creates a watcher that calls probe every interval.
func NewWatcher(probe func() bool, interval time.Duration) *Watcher {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	return &Watcher{probe: probe, interval: interval}
}

// Watch sends the new signal value whenever it differs from the last one seen,
// starting from initial. The channel is closed when ctx is done.
func (w *Watcher) Watch(ctx context.Context, initial bool) <-chan bool {
	ch := make(chan bool)
	go func() {
		defer close(ch)

		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		last := initial
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				dark := w.probe()
				if dark == last {
					continue
				}
				last = dark
				select {
				case ch <- dark:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return ch
}
