package hal

import (
	"context"
	"errors"
	"io"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled bool
	// Frames stops the loop after N presented frames (0 = run until quit).
	Frames uint64
	Logger Logger
}

// Headless is a Backend without a window. Titles go to the logger and the
// last presented frame is kept for inspection.
type Headless struct {
	eventQueue
	cfg      HeadlessConfig
	logger   Logger
	keys     KeyState
	title    string
	presents uint64
	last     []uint32
	quitSent bool
}

// NewHeadless returns a headless backend that starts focused.
func NewHeadless(cfg HeadlessConfig) *Headless {
	h := &Headless{cfg: cfg, logger: cfg.Logger}
	if h.logger == nil {
		h.logger = NewLogger(io.Discard)
	}
	h.push(Event{Type: EventFocusGained})
	return h
}

func (h *Headless) Logger() Logger      { return h.logger }
func (h *Headless) KeyState() KeyState  { return h.keys }
func (h *Headless) Title() string       { return h.title }
func (h *Headless) Presents() uint64    { return h.presents }
func (h *Headless) LastFrame() []uint32 { return h.last }

func (h *Headless) SetTitle(title string) {
	if title == h.title {
		return
	}
	h.title = title
	h.logger.WriteLineString("title: " + title)
}

func (h *Headless) Present(fb *Framebuffer) error {
	if fb == nil {
		return errors.New("present: nil framebuffer")
	}
	if len(h.last) != len(fb.Pixels()) {
		h.last = make([]uint32, len(fb.Pixels()))
	}
	copy(h.last, fb.Pixels())
	h.presents++
	if h.cfg.Frames > 0 && h.presents >= h.cfg.Frames {
		h.Quit()
	}
	return nil
}

// Quit enqueues a single quit event.
func (h *Headless) Quit() {
	if h.quitSent {
		return
	}
	h.quitSent = true
	h.push(Event{Type: EventQuit})
}

// PressKey marks code as held in subsequent keyboard snapshots.
func (h *Headless) PressKey(code KeyCode) {
	if code < keyCount {
		h.keys[code] = true
	}
}

// ReleaseKey clears code from subsequent keyboard snapshots.
func (h *Headless) ReleaseKey(code KeyCode) {
	if code < keyCount {
		h.keys[code] = false
	}
}

// SetFocused enqueues a focus gained or lost event.
func (h *Headless) SetFocused(focused bool) {
	if focused {
		h.push(Event{Type: EventFocusGained})
		return
	}
	h.push(Event{Type: EventFocusLost})
}

// RunHeadless runs the frame loop without opening a window. Cancelling ctx
// enqueues a quit event, which the loop observes on its next poll.
func RunHeadless(ctx context.Context, newStep func(Backend) func() error, cfg HeadlessConfig) error {
	return RunHeadlessBackend(ctx, NewHeadless(cfg), newStep)
}

// RunHeadlessBackend is RunHeadless over a caller-owned backend.
func RunHeadlessBackend(ctx context.Context, h *Headless, newStep func(Backend) func() error) error {
	step := newStep(h)
	if step == nil {
		return errors.New("headless: no step function")
	}
	for {
		select {
		case <-ctx.Done():
			h.Quit()
		default:
		}
		err := guardStep(h.logger, step)
		if errors.Is(err, ErrQuit) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}
