package app

import (
	"image/color"
	"strconv"

	"m3u/hal"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// FrameStats is what the loop knows about the frame being drawn.
type FrameStats struct {
	Frame uint64
	FPS   float64
}

// Scene draws one frame into a cleared framebuffer.
type Scene interface {
	Draw(fb *hal.Framebuffer, st FrameStats)
}

// SceneFunc adapts a function to Scene.
type SceneFunc func(fb *hal.Framebuffer, st FrameStats)

func (f SceneFunc) Draw(fb *hal.Framebuffer, st FrameStats) { f(fb, st) }

const (
	markerX = 10
	markerY = 10
)

var (
	markerColor  = hal.Color{R: 200, G: 80, B: 0, A: 80}
	overlayText  = hal.Color{R: 255, G: 255, B: 255, A: 255}
	overlayStrip = hal.Color{A: 160}
)

// PixelScene draws the single translucent marker pixel.
func PixelScene() Scene {
	return SceneFunc(func(fb *hal.Framebuffer, _ FrameStats) {
		fb.DrawPixel(markerX, markerY, markerColor)
	})
}

type fontFace struct {
	font   tinyfont.Fonter
	width  int16
	height int16
	offset int16
}

// initFont loads the overlay font and checks its metrics.
func initFont() (fontFace, error) {
	f := fontFace{
		font:   &proggy.TinySZ8pt7b,
		height: 10,
		offset: 7,
	}
	_, outboxWidth := tinyfont.LineWidth(f.font, "0")
	f.width = int16(outboxWidth)
	if f.width <= 0 || f.height <= 0 {
		return fontFace{}, errFontMetrics
	}
	return f, nil
}

// overlayScene draws base, then the frame rate on a dark strip in the
// bottom-left corner.
type overlayScene struct {
	base  Scene
	face  fontFace
	text  color.RGBA
	strip color.RGBA
}

func newOverlayScene(base Scene, face fontFace) *overlayScene {
	return &overlayScene{
		base:  base,
		face:  face,
		text:  overlayText.ToRGBA(),
		strip: overlayStrip.ToRGBA(),
	}
}

func (o *overlayScene) Draw(fb *hal.Framebuffer, st FrameStats) {
	o.base.Draw(fb, st)
	text := "FPS " + strconv.Itoa(int(st.FPS+0.5))
	_, w := tinyfont.LineWidth(o.face.font, text)
	top := int16(fb.Height()) - o.face.height
	fb.FillRectangle(0, top, int16(w)+2, o.face.height, o.strip)
	tinyfont.WriteLine(fb, o.face.font, 1, top+o.face.offset, text, o.text)
}
