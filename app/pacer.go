package app

import (
	"time"

	"m3u/hal"
)

// Pacer caps the loop rate by sleeping off whatever is left of the frame
// budget. It never skips frames or catches up.
type Pacer struct {
	budget time.Duration
	clock  hal.Clock
}

func NewPacer(budget time.Duration, clock hal.Clock) Pacer {
	return Pacer{budget: budget, clock: clock}
}

// Remaining is the sleep owed for an iteration that started at start.
func (p Pacer) Remaining(start, now time.Time) time.Duration {
	elapsed := now.Sub(start)
	if elapsed < 0 || elapsed >= p.budget {
		return 0
	}
	return p.budget - elapsed
}

// Wait sleeps until the budget of the iteration started at start is
// spent and returns the time slept.
func (p Pacer) Wait(start time.Time) time.Duration {
	d := p.Remaining(start, p.clock.Now())
	if d > 0 {
		p.clock.Sleep(d)
	}
	return d
}
