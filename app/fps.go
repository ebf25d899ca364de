package app

import (
	"fmt"
	"time"
)

// fpsCounter counts frames and reports a rate once per interval.
type fpsCounter struct {
	interval time.Duration
	frames   int
	last     time.Time
	fps      float64
}

func newFPSCounter(interval time.Duration, now time.Time) fpsCounter {
	return fpsCounter{interval: interval, last: now}
}

// tick records one frame. Intervals are measured from the time the counter
// was created. ok is true when a new rate was computed.
func (c *fpsCounter) tick(now time.Time) (fps float64, ok bool) {
	c.frames++
	if now.Sub(c.last) < c.interval {
		return c.fps, false
	}
	c.fps = float64(c.frames) / c.interval.Seconds()
	c.frames = 0
	c.last = now
	return c.fps, true
}

// FormatTitle renders the window title for a frame rate.
func FormatTitle(title string, fps float64) string {
	return fmt.Sprintf("%s - FPS: %.0f", title, fps)
}
