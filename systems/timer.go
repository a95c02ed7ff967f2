package systems

import (
	"math"
	"time"
)

// Timer is a repeating countdown driven by frame deltas. Time is kept in
// integer nanoseconds so that a period made of many small frames adds up
// exactly.
type Timer struct {
	period  time.Duration
	elapsed time.Duration
	fired   int
}

// NewTimer creates a repeating timer with the given period in seconds.
func NewTimer(period float64) *Timer {
	p := seconds(period)
	if p < 1 {
		p = 1
	}
	return &Timer{period: p}
}

// seconds converts a float second count to a Duration, rounding to the
// nearest nanosecond.
func seconds(s float64) time.Duration {
	return time.Duration(math.Round(s * float64(time.Second)))
}

// Tick accumulates dt and reports whether the period elapsed during this
// call. Several periods elapsing in one call still fire once; the remainder
// carries over.
func (t *Timer) Tick(dt float64) bool {
	if dt > 0 {
		t.elapsed += seconds(dt)
	}
	if t.elapsed < t.period {
		return false
	}
	t.elapsed %= t.period
	t.fired++
	return true
}

// Elapsed returns the seconds accumulated toward the next firing.
func (t *Timer) Elapsed() float64 { return t.elapsed.Seconds() }

// Period returns the timer period in seconds.
func (t *Timer) Period() float64 { return t.period.Seconds() }

// Fired returns how many times the timer has fired.
func (t *Timer) Fired() int { return t.fired }

// Reset clears accumulated time.
func (t *Timer) Reset() {
	t.elapsed = 0
}
