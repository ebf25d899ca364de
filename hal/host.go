package hal

import (
	"fmt"
	"io"
	"sync"
)

type hostLogger struct {
	mu sync.Mutex
	w  io.Writer
}

// NewLogger returns a Logger that writes each line to w.
func NewLogger(w io.Writer) Logger {
	return &hostLogger{w: w}
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}

// eventQueue is the pending event list shared by the host backends.
type eventQueue struct {
	pending []Event
}

func (q *eventQueue) push(ev Event) {
	q.pending = append(q.pending, ev)
}

func (q *eventQueue) PollEvent() (Event, bool) {
	if len(q.pending) == 0 {
		return Event{}, false
	}
	ev := q.pending[0]
	q.pending = q.pending[1:]
	return ev, true
}

// focusTracker turns a sampled focus flag into gained/lost events.
type focusTracker struct {
	focused bool
}

func (t *focusTracker) update(focused bool) (Event, bool) {
	if focused == t.focused {
		return Event{}, false
	}
	t.focused = focused
	if focused {
		return Event{Type: EventFocusGained}, true
	}
	return Event{Type: EventFocusLost}, true
}

// guardStep runs step, converting a panic into an error after logging it.
func guardStep(logger Logger, step func() error) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		logPanic(logger, r)
		err = fmt.Errorf("panic in frame step: %v", r)
	}()
	return step()
}
