package hal

import "errors"

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var (
	// ErrQuit is returned by a step once the quit state has been observed.
	ErrQuit = errors.New("quit")

	ErrNoWindow = errors.New("window mode requires cgo (build/run with CGO_ENABLED=1)")
)

// EventType identifies a window or input event.
type EventType uint8

const (
	EventNone EventType = iota
	EventQuit
	EventFocusGained
	EventFocusLost
)

// Event is a window or input event.
type Event struct {
	Type EventType
}

// EventSource yields pending events until drained.
type EventSource interface {
	PollEvent() (Event, bool)
}

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
	KeyBackspace
	KeyTab
	KeyDelete
	KeyHome
	KeyEnd
	KeyF1
	KeyF2
	KeyF3

	keyCount
)

// KeyState is a snapshot of which keys are held.
type KeyState [keyCount]bool

// Pressed reports whether code was held when the snapshot was taken.
func (s KeyState) Pressed(code KeyCode) bool {
	if code >= keyCount {
		return false
	}
	return s[code]
}

// Keyboard provides the current keyboard snapshot.
type Keyboard interface {
	KeyState() KeyState
}

// Presenter uploads a framebuffer to the display surface and shows it.
type Presenter interface {
	Present(fb *Framebuffer) error
}

// SelfPaced is implemented by backends that cap the frame rate on their
// own, in which case the loop does not sleep.
type SelfPaced interface {
	SelfPaced() bool
}

// Backend is everything the frame loop needs from the outside world.
type Backend interface {
	EventSource
	Keyboard
	Presenter
	SetTitle(title string)
	Logger() Logger
}
