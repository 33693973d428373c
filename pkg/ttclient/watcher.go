package ttclient

import (
	"context"
	"sync"
	"time"

	"github.com/heartmarshall/timetrack-backend/pkg/clock"
	"github.com/heartmarshall/timetrack-backend/pkg/elapsed"
)

type activePoller interface {
	Active(ctx context.Context) Poll
}

// Update is what the watcher reports after each poll.
type Update struct {
	// State is the outcome of this poll.
	State State
	// Session is the believed open session. It survives StateUnknown polls.
	Session *Entry
	Elapsed time.Duration
	// Remind is true on the one update where the session crosses the
	// reminder threshold.
	Remind bool
	Err    error
}

// Watcher polls the active session and tracks the reminder. The believed
// session is only dropped on an explicit StateNone.
type Watcher struct {
	client   activePoller
	clock    clock.Clock
	reminder *elapsed.Reminder

	mu       sync.Mutex
	believed *Entry
}

// NewWatcher creates a watcher. A nil clk uses the wall clock.
func NewWatcher(client activePoller, clk clock.Clock, threshold time.Duration) *Watcher {
	if clk == nil {
		clk = clock.Real{}
	}
	return &Watcher{
		client:   client,
		clock:    clk,
		reminder: elapsed.NewReminder(threshold),
	}
}

// Tick polls once.
func (w *Watcher) Tick(ctx context.Context) Update {
	p := w.client.Active(ctx)
	now := w.clock.Now()

	w.mu.Lock()
	defer w.mu.Unlock()

	u := Update{State: p.State, Err: p.Err}
	switch p.State {
	case StateNone:
		w.believed = nil
		w.reminder.Clear()
	case StateActive:
		w.believed = p.Session
		u.Remind = w.reminder.Observe(p.Session.StartTime, now)
	}

	u.Session = w.believed
	if w.believed != nil {
		u.Elapsed = elapsed.Since(w.believed.StartTime, now)
	}
	return u
}

// Run polls every interval until ctx is done, calling fn with each update.
// The first poll happens immediately.
func (w *Watcher) Run(ctx context.Context, interval time.Duration, fn func(Update)) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		fn(w.Tick(ctx))

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
