package app

import (
	"errors"
	"time"

	"m3u/hal"
)

var (
	errFontMetrics   = errors.New("font: glyph metrics are empty")
	errSessionClosed = errors.New("session closed")
)

// Session is the state owned by one run of the frame loop: the
// framebuffer, the backend it presents to, the last keyboard snapshot and
// the focus and quit flags.
type Session struct {
	cfg     Config
	backend hal.Backend
	fb      *hal.Framebuffer
	scene   Scene
	keys    hal.KeyState
	focused bool
	quit    bool
	closed  bool

	fps    fpsCounter
	frames uint64
}

// NewSession allocates the framebuffer for cfg. now seeds the title timer.
func NewSession(cfg Config, backend hal.Backend, scene Scene, now time.Time) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if backend == nil {
		return nil, errors.New("session: nil backend")
	}
	if scene == nil {
		scene = PixelScene()
	}
	return &Session{
		cfg:     cfg,
		backend: backend,
		fb:      hal.NewFramebuffer(cfg.BufferWidth(), cfg.BufferHeight()),
		scene:   scene,
		fps:     newFPSCounter(cfg.FrameInterval, now),
	}, nil
}

func (s *Session) Framebuffer() *hal.Framebuffer { return s.fb }
func (s *Session) Focused() bool                 { return s.focused }
func (s *Session) Quit() bool                    { return s.quit }
func (s *Session) Keys() hal.KeyState            { return s.keys }
func (s *Session) Frames() uint64                { return s.frames }

// RequestQuit moves the session to the quit state.
func (s *Session) RequestQuit() { s.quit = true }

// PollEvents drains every pending backend event.
func (s *Session) PollEvents() {
	if s.closed {
		return
	}
	for {
		ev, ok := s.backend.PollEvent()
		if !ok {
			return
		}
		switch ev.Type {
		case hal.EventQuit:
			s.quit = true
		case hal.EventFocusGained:
			s.focused = true
		case hal.EventFocusLost:
			s.focused = false
		}
	}
}

// PollKeyboard snapshots the keyboard while focused. Escape requests quit,
// which the loop observes before rendering the next frame.
func (s *Session) PollKeyboard() {
	if s.closed || !s.focused {
		return
	}
	s.keys = s.backend.KeyState()
	if s.keys.Pressed(hal.KeyEscape) {
		s.RequestQuit()
	}
}

// UpdateTitle counts a frame and refreshes the title once per interval.
func (s *Session) UpdateTitle(now time.Time) {
	fps, ok := s.fps.tick(now)
	if !ok || s.closed {
		return
	}
	s.backend.SetTitle(FormatTitle(s.cfg.Title, fps))
}

// RenderFrame clears the framebuffer, draws the scene and presents it.
func (s *Session) RenderFrame() error {
	if s.closed {
		return errSessionClosed
	}
	s.fb.Clear()
	s.scene.Draw(s.fb, FrameStats{Frame: s.frames, FPS: s.fps.fps})
	if err := s.backend.Present(s.fb); err != nil {
		return err
	}
	s.frames++
	return nil
}

// Close releases the backend. The framebuffer stays readable.
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.backend = nil
}
