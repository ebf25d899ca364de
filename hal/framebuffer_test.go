package hal

import (
	"encoding/binary"
	"image/color"
	"testing"
)

const (
	testWidth  = 160
	testHeight = 120
)

func TestFramebufferDrawPixelInBounds(t *testing.T) {
	fb := NewFramebuffer(testWidth, testHeight)
	c := Color{R: 200, G: 80, B: 0, A: 80}
	want := uint32(80)<<24 | uint32(0)<<16 | uint32(80)<<8 | uint32(200)

	points := [][2]int{{0, 0}, {10, 10}, {testWidth - 1, 0}, {0, testHeight - 1}, {testWidth - 1, testHeight - 1}}
	for _, p := range points {
		fb.DrawPixel(p[0], p[1], c)
		if got := fb.At(p[0], p[1]); got != want {
			t.Fatalf("At(%d,%d) = %#08x, want %#08x", p[0], p[1], got, want)
		}
		if got := fb.Pixels()[p[1]*testWidth+p[0]]; got != want {
			t.Fatalf("Pixels()[%d] = %#08x, want %#08x", p[1]*testWidth+p[0], got, want)
		}
		if got := fb.ColorAt(p[0], p[1]); got != c {
			t.Fatalf("ColorAt(%d,%d) = %+v, want %+v", p[0], p[1], got, c)
		}
	}
}

func TestFramebufferDrawPixelEveryCell(t *testing.T) {
	fb := NewFramebuffer(testWidth, testHeight)
	for y := 0; y < testHeight; y++ {
		for x := 0; x < testWidth; x++ {
			c := Color{R: uint8(x), G: uint8(y), B: uint8(x + y), A: 255}
			fb.DrawPixel(x, y, c)
			if got := fb.At(x, y); got != c.Pack() {
				t.Fatalf("At(%d,%d) = %#08x, want %#08x", x, y, got, c.Pack())
			}
		}
	}
}

func TestFramebufferDrawPixelOutOfBounds(t *testing.T) {
	fb := NewFramebuffer(testWidth, testHeight)
	fb.FillRectangle(0, 0, testWidth, testHeight, color.RGBA{R: 1, G: 2, B: 3, A: 4})
	before := append([]uint32(nil), fb.Pixels()...)

	points := [][2]int{
		{-1, 0}, {0, -1}, {-1, -1},
		{testWidth, 0}, {0, testHeight}, {testWidth, testHeight},
		{testWidth + 100, 5}, {5, -1000},
	}
	for _, p := range points {
		fb.DrawPixel(p[0], p[1], Color{R: 255, G: 255, B: 255, A: 255})
	}
	for i, v := range fb.Pixels() {
		if v != before[i] {
			t.Fatalf("cell %d changed to %#08x", i, v)
		}
	}
	if got := fb.At(-1, -1); got != 0 {
		t.Fatalf("At(-1,-1) = %#08x, want 0", got)
	}
}

func TestFramebufferClear(t *testing.T) {
	fb := NewFramebuffer(testWidth, testHeight)
	fb.FillRectangle(0, 0, testWidth, testHeight, color.RGBA{R: 9, G: 9, B: 9, A: 9})
	fb.Clear()
	for i, v := range fb.Pixels() {
		if v != 0 {
			t.Fatalf("cell %d = %#08x after Clear, want 0", i, v)
		}
	}
}

func TestFramebufferBytesLittleEndian(t *testing.T) {
	fb := NewFramebuffer(4, 2)
	c := Color{R: 0x11, G: 0x22, B: 0x33, A: 0x44}
	fb.DrawPixel(3, 1, c)

	b := fb.Bytes()
	if len(b) != 4*2*4 {
		t.Fatalf("len(Bytes()) = %d, want %d", len(b), 4*2*4)
	}
	off := (1*4 + 3) * 4
	if got := b[off : off+4]; got[0] != 0x11 || got[1] != 0x22 || got[2] != 0x33 || got[3] != 0x44 {
		t.Fatalf("pixel bytes = %x, want 11223344", got)
	}
	if got := binary.LittleEndian.Uint32(b[off:]); got != c.Pack() {
		t.Fatalf("word = %#08x, want %#08x", got, c.Pack())
	}
}

func TestFramebufferDisplayer(t *testing.T) {
	fb := NewFramebuffer(testWidth, testHeight)
	w, h := fb.Size()
	if w != testWidth || h != testHeight {
		t.Fatalf("Size() = %d,%d, want %d,%d", w, h, testWidth, testHeight)
	}

	fb.SetPixel(3, 4, color.RGBA{R: 1, G: 2, B: 3, A: 4})
	if got, want := fb.At(3, 4), (Color{R: 1, G: 2, B: 3, A: 4}).Pack(); got != want {
		t.Fatalf("At(3,4) = %#08x, want %#08x", got, want)
	}
	fb.SetPixel(-1, 500, color.RGBA{R: 255})
	if err := fb.Display(); err != nil {
		t.Fatalf("Display: %v", err)
	}
}

func TestFramebufferFillRectangleClips(t *testing.T) {
	fb := NewFramebuffer(8, 8)
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	if err := fb.FillRectangle(6, 6, 10, 10, white); err != nil {
		t.Fatalf("FillRectangle: %v", err)
	}
	n := 0
	for _, v := range fb.Pixels() {
		if v != 0 {
			n++
		}
	}
	if n != 4 {
		t.Fatalf("filled %d cells, want 4", n)
	}
	before := append([]uint32(nil), fb.Pixels()...)
	if err := fb.FillRectangle(-5, -5, 2, 2, white); err != nil {
		t.Fatalf("FillRectangle: %v", err)
	}
	if err := fb.FillRectangle(2, 2, 0, 3, white); err != nil {
		t.Fatalf("FillRectangle: %v", err)
	}
	for i, v := range fb.Pixels() {
		if v != before[i] {
			t.Fatalf("cell %d changed to %#08x by an empty rectangle", i, v)
		}
	}
}

func TestFramebufferFillRectangleExact(t *testing.T) {
	fb := NewFramebuffer(8, 8)
	c := color.RGBA{R: 1, G: 2, B: 3, A: 4}
	fb.FillRectangle(1, 2, 3, 2, c)
	want := (Color{R: 1, G: 2, B: 3, A: 4}).Pack()
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			in := x >= 1 && x < 4 && y >= 2 && y < 4
			got := fb.At(x, y)
			if in && got != want {
				t.Fatalf("At(%d,%d) = %#08x, want %#08x", x, y, got, want)
			}
			if !in && got != 0 {
				t.Fatalf("At(%d,%d) = %#08x outside the rectangle, want 0", x, y, got)
			}
		}
	}
}
