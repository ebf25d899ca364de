package hal

import (
	"fmt"
	"io"
)

// WindowConfig describes the desktop window. FrameLimit is the update
// rate; 0 means one update per displayed frame.
type WindowConfig struct {
	Title      string
	Width      int
	Height     int
	PixelSize  int
	FrameLimit int
	VSync      bool
	Logger     Logger
}

// BufferSize returns the framebuffer resolution shown in the window.
func (c WindowConfig) BufferSize() (int, int) {
	if c.PixelSize <= 0 {
		return 0, 0
	}
	return c.Width / c.PixelSize, c.Height / c.PixelSize
}

func (c WindowConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("window: invalid size %dx%d", c.Width, c.Height)
	}
	if c.PixelSize <= 0 {
		return fmt.Errorf("window: invalid pixel size %d", c.PixelSize)
	}
	if c.FrameLimit < 0 {
		return fmt.Errorf("window: invalid frame limit %d", c.FrameLimit)
	}
	if w, h := c.BufferSize(); w == 0 || h == 0 {
		return fmt.Errorf("window: pixel size %d leaves an empty %dx%d buffer", c.PixelSize, w, h)
	}
	return nil
}

func (c WindowConfig) logger() Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return NewLogger(io.Discard)
}

// InitVideo checks that the requested display backend is available.
func InitVideo(headless bool) error {
	if headless || windowSupported {
		return nil
	}
	return ErrNoWindow
}
