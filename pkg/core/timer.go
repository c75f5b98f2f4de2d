package core

import (
	"math"
	"time"
)

// FixedStep paces simulation updates inside a frame loop that runs faster
// than the desired generation rate.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time

	now func() time.Time
}

// NewFixedStep constructs a FixedStep targeting rate generations per second.
func NewFixedStep(rate float64) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetRate(rate)
	fs.accumulator = fs.step
	return fs
}

// SetRate changes the target rate. Non-positive rates fall back to one
// generation per second. It is safe to call from the main loop.
func (f *FixedStep) SetRate(rate float64) {
	f.step = Interval(rate)
}

// Step reports the current interval between generations.
func (f *FixedStep) Step() time.Duration { return f.step }

// Reset drops any accumulated time so that resuming playback does not
// trigger a burst of catch-up steps.
func (f *FixedStep) Reset() {
	f.accumulator = 0
	f.last = time.Time{}
}

// ShouldStep reports whether the simulation should advance by one generation.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		// Keep at most one pending generation after a stall.
		if f.accumulator > f.step {
			f.accumulator = f.step
		}
		return true
	}
	return false
}

// Interval converts a rate in generations per second into the wait between
// generations.
func Interval(rate float64) time.Duration {
	if rate <= 0 || math.IsNaN(rate) || math.IsInf(rate, 0) {
		return time.Second
	}
	d := time.Duration(float64(time.Second) / rate)
	if d <= 0 {
		d = time.Nanosecond
	}
	return d
}
