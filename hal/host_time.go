package hal

import "time"

// Clock is the time source of the frame loop.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

type hostClock struct{}

// SystemClock returns a Clock backed by the wall clock.
func SystemClock() Clock { return hostClock{} }

func (hostClock) Now() time.Time        { return time.Now() }
func (hostClock) Sleep(d time.Duration) { time.Sleep(d) }
