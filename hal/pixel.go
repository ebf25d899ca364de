package hal

import "image/color"

// Color is an 8-bit per channel RGBA color.
type Color struct {
	R, G, B, A uint8
}

// Pack returns c as A<<24 | B<<16 | G<<8 | R.
func (c Color) Pack() uint32 {
	return uint32(c.A)<<24 | uint32(c.B)<<16 | uint32(c.G)<<8 | uint32(c.R)
}

// UnpackColor is the inverse of Color.Pack.
func UnpackColor(p uint32) Color {
	return Color{
		R: uint8(p),
		G: uint8(p >> 8),
		B: uint8(p >> 16),
		A: uint8(p >> 24),
	}
}

// ToRGBA converts c for image/color consumers. Channels are passed through
// unchanged, so the result is not alpha-premultiplied.
func (c Color) ToRGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

func colorFromRGBA(c color.RGBA) Color {
	return Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

// premultiply converts straight-alpha RGBA bytes in src to premultiplied
// RGBA bytes in dst. len(dst) must be at least len(src).
func premultiply(dst, src []byte) {
	for i := 0; i+3 < len(src); i += 4 {
		a := uint16(src[i+3])
		dst[i+0] = uint8((uint16(src[i+0])*a + 127) / 255)
		dst[i+1] = uint8((uint16(src[i+1])*a + 127) / 255)
		dst[i+2] = uint8((uint16(src[i+2])*a + 127) / 255)
		dst[i+3] = src[i+3]
	}
}
