package app

import (
	"fmt"
	"time"

	"m3u/hal"
)

// Config holds the fixed parameters of the frame loop.
type Config struct {
	Title         string
	ScreenWidth   int
	ScreenHeight  int
	PixelSize     int
	FrameLimit    int
	FrameInterval time.Duration
	VSync         bool
	Overlay       bool
}

func DefaultConfig() Config {
	return Config{
		Title:         "M3U",
		ScreenWidth:   800,
		ScreenHeight:  600,
		PixelSize:     5,
		FrameLimit:    60,
		FrameInterval: 500 * time.Millisecond,
		VSync:         true,
	}
}

func (c Config) BufferWidth() int  { return c.ScreenWidth / c.PixelSize }
func (c Config) BufferHeight() int { return c.ScreenHeight / c.PixelSize }

// FrameBudget is the time allotted to one iteration at FrameLimit.
func (c Config) FrameBudget() time.Duration {
	return time.Second / time.Duration(c.FrameLimit)
}

func (c Config) Validate() error {
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		return fmt.Errorf("config: invalid screen size %dx%d", c.ScreenWidth, c.ScreenHeight)
	}
	if c.PixelSize <= 0 {
		return fmt.Errorf("config: invalid pixel size %d", c.PixelSize)
	}
	if c.BufferWidth() == 0 || c.BufferHeight() == 0 {
		return fmt.Errorf("config: pixel size %d leaves an empty buffer", c.PixelSize)
	}
	if c.FrameLimit <= 0 {
		return fmt.Errorf("config: invalid frame limit %d", c.FrameLimit)
	}
	if c.FrameInterval <= 0 {
		return fmt.Errorf("config: invalid frame interval %s", c.FrameInterval)
	}
	return nil
}

// Window returns the window description for c.
func (c Config) Window(logger hal.Logger) hal.WindowConfig {
	return hal.WindowConfig{
		Title:      c.Title,
		Width:      c.ScreenWidth,
		Height:     c.ScreenHeight,
		PixelSize:  c.PixelSize,
		FrameLimit: c.FrameLimit,
		VSync:      c.VSync,
		Logger:     logger,
	}
}
