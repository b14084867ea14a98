package puzzle

import "time"

// Timer counts down from a fixed limit. Once stopped, the remaining time is
// frozen and never recomputed from the clock again.
type Timer struct {
	limit   time.Duration
	start   time.Time
	stopped bool
	frozen  time.Duration
}

// NewTimer starts a countdown of limit at start.
func NewTimer(limit time.Duration, start time.Time) Timer {
	return Timer{limit: limit, start: start}
}

// Remaining returns max(0, limit - elapsed), or the frozen value once stopped.
func (t *Timer) Remaining(now time.Time) time.Duration {
	if t.stopped {
		return t.frozen
	}
	left := t.limit - now.Sub(t.start)
	if left < 0 {
		return 0
	}
	if left > t.limit {
		// clock went backwards
		return t.limit
	}
	return left
}

// Expired reports whether the countdown reached zero.
func (t *Timer) Expired(now time.Time) bool {
	return !t.stopped && t.Remaining(now) == 0
}

// Stop freezes the remaining time at now. Later calls are no-ops.
func (t *Timer) Stop(now time.Time) {
	if t.stopped {
		return
	}
	t.frozen = t.Remaining(now)
	t.stopped = true
}

// Stopped reports whether the timer was frozen by Stop.
func (t *Timer) Stopped() bool {
	return t.stopped
}

func (t *Timer) Limit() time.Duration {
	return t.limit
}
