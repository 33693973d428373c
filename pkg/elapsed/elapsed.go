// Package elapsed derives the running time of a session and the one-shot
// "still running" reminder from the persisted start time alone.
package elapsed

import (
	"fmt"
	"sync"
	"time"
)

// DefaultThreshold is how long a session runs before the reminder fires.
const DefaultThreshold = time.Hour

// Since returns now-start, or zero when the clocks disagree and start lies
// in the future.
func Since(start, now time.Time) time.Duration {
	d := now.Sub(start)
	if d < 0 {
		return 0
	}
	return d
}

// Format renders d as HH:MM:SS. Hours keep growing past 99.
func Format(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int64(d / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, total/60%60, total%60)
}

// Hours renders d as a decimal hour count with two places.
func Hours(d time.Duration) string {
	return fmt.Sprintf("%.2f", d.Hours())
}

// Reminder fires at most once per session. A session is identified by its
// start time; observing a different start time or no session re-arms it.
// Safe for concurrent use.
type Reminder struct {
	threshold time.Duration

	mu    sync.Mutex
	key   time.Time
	fired bool
}

// NewReminder creates a reminder. A non-positive threshold means DefaultThreshold.
func NewReminder(threshold time.Duration) *Reminder {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Reminder{threshold: threshold}
}

// Threshold returns the configured threshold.
func (r *Reminder) Threshold() time.Duration {
	return r.threshold
}

// Observe records a poll that found a session started at start. It returns
// true exactly once per session, on the first observation at or past the
// threshold.
func (r *Reminder) Observe(start, now time.Time) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !start.Equal(r.key) {
		r.key = start
		r.fired = false
	}
	if r.fired || Since(start, now) < r.threshold {
		return false
	}
	r.fired = true
	return true
}

// Clear records a poll that confirmed no session is open.
func (r *Reminder) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.key = time.Time{}
	r.fired = false
}
