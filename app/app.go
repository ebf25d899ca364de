package app

import (
	"errors"
	"fmt"

	"m3u/hal"
)

// Loop runs one session at a time: poll, render, present, then sleep off
// the rest of the frame budget.
type Loop struct {
	s     *Session
	clock hal.Clock
	pacer Pacer
	pace  bool
}

func NewLoop(s *Session, clock hal.Clock) *Loop {
	l := &Loop{
		s:     s,
		clock: clock,
		pacer: NewPacer(s.cfg.FrameBudget(), clock),
		pace:  true,
	}
	if p, ok := s.backend.(hal.SelfPaced); ok && p.SelfPaced() {
		l.pace = false
	}
	return l
}

func (l *Loop) Session() *Session { return l.s }

// Step runs one iteration. It returns hal.ErrQuit, without rendering, once
// the quit state has been observed.
func (l *Loop) Step() error {
	start := l.clock.Now()

	l.s.PollEvents()
	if l.s.Quit() {
		return hal.ErrQuit
	}
	l.s.PollKeyboard()
	l.s.UpdateTitle(l.clock.Now())

	if err := l.s.RenderFrame(); err != nil {
		return fmt.Errorf("render frame %d: %w", l.s.Frames(), err)
	}

	if l.pace {
		l.pacer.Wait(start)
	}
	return nil
}

// App wires a configuration and scene to whichever backend runs it.
type App struct {
	cfg   Config
	clock hal.Clock
	face  fontFace
	scene Scene
	loop  *Loop
}

// New validates cfg and prepares the scene. The font is always loaded, so
// a broken font fails before any window opens even without the overlay.
func New(cfg Config, clock hal.Clock) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if clock == nil {
		clock = hal.SystemClock()
	}
	face, err := initFont()
	if err != nil {
		return nil, err
	}
	scene := PixelScene()
	if cfg.Overlay {
		scene = newOverlayScene(scene, face)
	}
	return &App{cfg: cfg, clock: clock, face: face, scene: scene}, nil
}

// Attach starts a session on b and returns its step function. It matches
// the newStep argument of hal.RunWindow and hal.RunHeadless.
func (a *App) Attach(b hal.Backend) func() error {
	s, err := NewSession(a.cfg, b, a.scene, a.clock.Now())
	if err != nil {
		return func() error { return err }
	}
	a.loop = NewLoop(s, a.clock)
	if l := b.Logger(); l != nil {
		l.WriteLineString(fmt.Sprintf("m3u: %dx%d window, %dx%d buffer, %d fps cap",
			a.cfg.ScreenWidth, a.cfg.ScreenHeight, a.cfg.BufferWidth(), a.cfg.BufferHeight(), a.cfg.FrameLimit))
	}
	return a.loop.Step
}

// Session returns the attached session, if any.
func (a *App) Session() *Session {
	if a.loop == nil {
		return nil
	}
	return a.loop.s
}

// Close tears down the attached session.
func (a *App) Close() error {
	s := a.Session()
	if s == nil {
		return errors.New("app: no session")
	}
	s.Close()
	return nil
}
