package snake

import "time"

// Timer gates simulation ticks on a monotonic clock, independent of the
// render frame rate.
type Timer struct {
	now     func() time.Time
	last    time.Time
	started bool
}

// NewTimer creates a timer on the wall clock.
func NewTimer() *Timer {
	return NewTimerWithClock(time.Now)
}

// NewTimerWithClock creates a timer reading the given clock.
func NewTimerWithClock(now func() time.Time) *Timer {
	return &Timer{now: now}
}

// EventTriggered returns true on the first call and then at most once per
// interval. The reference time moves to now whenever it fires.
func (t *Timer) EventTriggered(interval time.Duration) bool {
	now := t.now()
	if t.started && now.Sub(t.last) < interval {
		return false
	}
	t.started = true
	t.last = now
	return true
}
