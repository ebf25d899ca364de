package hal

import (
	"encoding/binary"
	"image/color"

	"tinygo.org/x/drivers"
)

// Framebuffer is a fixed-size grid of packed RGBA pixels, stored row-major
// and indexed y*width+x. It is not safe for concurrent use.
type Framebuffer struct {
	width  int
	height int
	pix    []uint32
	bytes  []byte
}

var _ drivers.Displayer = (*Framebuffer)(nil)

// NewFramebuffer allocates a cleared width x height framebuffer.
func NewFramebuffer(width, height int) *Framebuffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Framebuffer{
		width:  width,
		height: height,
		pix:    make([]uint32, width*height),
		bytes:  make([]byte, width*height*4),
	}
}

func (f *Framebuffer) Width() int  { return f.width }
func (f *Framebuffer) Height() int { return f.height }

// Pixels returns the backing packed pixel slice.
func (f *Framebuffer) Pixels() []uint32 { return f.pix }

func (f *Framebuffer) inBounds(x, y int) bool {
	return x >= 0 && x < f.width && y >= 0 && y < f.height
}

// DrawPixel stores c at (x, y). Writes outside the buffer are dropped.
func (f *Framebuffer) DrawPixel(x, y int, c Color) {
	if !f.inBounds(x, y) {
		return
	}
	f.pix[y*f.width+x] = c.Pack()
}

// At returns the packed value at (x, y), or 0 outside the buffer.
func (f *Framebuffer) At(x, y int) uint32 {
	if !f.inBounds(x, y) {
		return 0
	}
	return f.pix[y*f.width+x]
}

// ColorAt returns the unpacked color at (x, y).
func (f *Framebuffer) ColorAt(x, y int) Color {
	return UnpackColor(f.At(x, y))
}

// Clear sets every pixel to transparent black.
func (f *Framebuffer) Clear() {
	clear(f.pix)
}

// Bytes encodes the buffer as little-endian 32-bit words, which yields
// R, G, B, A byte order per pixel. The returned slice is reused by the
// next call.
func (f *Framebuffer) Bytes() []byte {
	for i, p := range f.pix {
		binary.LittleEndian.PutUint32(f.bytes[i*4:], p)
	}
	return f.bytes
}

// Size implements drivers.Displayer.
func (f *Framebuffer) Size() (x, y int16) {
	return int16(f.width), int16(f.height)
}

// SetPixel implements drivers.Displayer.
func (f *Framebuffer) SetPixel(x, y int16, c color.RGBA) {
	f.DrawPixel(int(x), int(y), colorFromRGBA(c))
}

// Display implements drivers.Displayer. Presentation is owned by the
// frame loop, so there is nothing to flush here.
func (f *Framebuffer) Display() error { return nil }

// FillRectangle sets the width x height block at (x, y) to c, clipped to
// the buffer.
func (f *Framebuffer) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	x0 := clampInt(int(x), 0, f.width)
	y0 := clampInt(int(y), 0, f.height)
	x1 := clampInt(int(x)+int(width), 0, f.width)
	y1 := clampInt(int(y)+int(height), 0, f.height)
	if x0 >= x1 || y0 >= y1 {
		return nil
	}

	p := colorFromRGBA(c).Pack()
	for yy := y0; yy < y1; yy++ {
		row := f.pix[yy*f.width : (yy+1)*f.width]
		for xx := x0; xx < x1; xx++ {
			row[xx] = p
		}
	}
	return nil
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
