package core

import (
	"context"
	"time"
)

// Player is what a playback driver needs from a simulation.
type Player interface {
	// StepIfRunning advances one generation when playback is active and
	// reports whether it did so. The check and the step must be atomic with
	// respect to a concurrent pause.
	StepIfRunning() bool
	// Rate reports the desired generations per second.
	Rate() float64
}

// Play drives p at its configured rate until p reports that playback is
// paused or ctx is cancelled. The rate is re-read before every wait so rate
// changes apply from the next tick. onStep, when non-nil, runs after each
// generation and is typically used to render.
func Play(ctx context.Context, p Player, onStep func()) error {
	timer := time.NewTimer(Interval(p.Rate()))
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
		if !p.StepIfRunning() {
			return nil
		}
		if onStep != nil {
			onStep()
		}
		timer.Reset(Interval(p.Rate()))
	}
}
