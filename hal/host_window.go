//go:build cgo

package hal

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
)

const windowSupported = true

// RunWindow opens a desktop window that displays the framebuffer and
// forwards focus, close and keyboard state. It blocks until the loop quits
// or the window closes.
func RunWindow(cfg WindowConfig, newStep func(Backend) func() error) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	w := &hostWindow{cfg: cfg, logger: cfg.logger()}
	step := newStep(w)
	if step == nil {
		return errors.New("window: no step function")
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetVsyncEnabled(cfg.VSync)
	if cfg.FrameLimit > 0 {
		ebiten.SetTPS(cfg.FrameLimit)
	} else {
		ebiten.SetTPS(ebiten.SyncWithFPS)
	}
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetRunnableOnUnfocused(true)
	return ebiten.RunGame(&hostGame{w: w, step: step})
}

type hostWindow struct {
	eventQueue
	hostKeyboard
	cfg     WindowConfig
	logger  Logger
	focus   focusTracker
	closing bool

	img     *ebiten.Image
	scratch []byte
}

func (w *hostWindow) Logger() Logger        { return w.logger }
func (w *hostWindow) SetTitle(title string) { ebiten.SetWindowTitle(title) }

// SelfPaced reports whether ebiten's tick rate caps the loop.
func (w *hostWindow) SelfPaced() bool { return w.cfg.FrameLimit > 0 }

func (w *hostWindow) Present(fb *Framebuffer) error {
	if fb == nil {
		return errors.New("present: nil framebuffer")
	}
	if w.img == nil || w.img.Bounds().Dx() != fb.Width() || w.img.Bounds().Dy() != fb.Height() {
		if w.img != nil {
			w.img.Deallocate()
		}
		w.img = ebiten.NewImage(fb.Width(), fb.Height())
		w.scratch = make([]byte, fb.Width()*fb.Height()*4)
	}
	premultiply(w.scratch, fb.Bytes())
	w.img.WritePixels(w.scratch)
	return nil
}

// sample turns the window state of this tick into events.
func (w *hostWindow) sample() {
	if ebiten.IsWindowBeingClosed() && !w.closing {
		w.closing = true
		w.push(Event{Type: EventQuit})
	}
	if ev, ok := w.focus.update(ebiten.IsFocused()); ok {
		w.push(ev)
	}
}

type hostGame struct {
	w    *hostWindow
	step func() error
}

func (g *hostGame) Update() error {
	g.w.sample()
	err := guardStep(g.w.logger, g.step)
	if errors.Is(err, ErrQuit) {
		return ebiten.Termination
	}
	return err
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	if g.w.img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.w.cfg.PixelSize), float64(g.w.cfg.PixelSize))
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(g.w.img, op)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.w.cfg.Width, g.w.cfg.Height
}
