package hal

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	xdraw "golang.org/x/image/draw"
)

// Snapshotter writes framebuffers as PNG images, upscaled the way the
// window shows them.
type Snapshotter struct {
	path  string
	scale int
}

// NewSnapshotter checks that path can be created and scale is usable.
func NewSnapshotter(path string, scale int) (*Snapshotter, error) {
	if path == "" {
		return nil, errors.New("snapshot: empty path")
	}
	if scale <= 0 {
		return nil, fmt.Errorf("snapshot: invalid scale %d", scale)
	}
	dir := filepath.Dir(path)
	st, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("snapshot: %w", err)
	}
	if !st.IsDir() {
		return nil, fmt.Errorf("snapshot: %s is not a directory", dir)
	}
	return &Snapshotter{path: path, scale: scale}, nil
}

func (s *Snapshotter) Path() string { return s.path }

// Save writes fb to the configured path.
func (s *Snapshotter) Save(fb *Framebuffer) error {
	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	if err := EncodePNG(f, fb, s.scale); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	return nil
}

// Image copies fb into a straight-alpha RGBA image.
func Image(fb *Framebuffer) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.Width(), fb.Height()))
	copy(img.Pix, fb.Bytes())
	return img
}

// EncodePNG writes fb scaled by scale with nearest-neighbor filtering.
func EncodePNG(w io.Writer, fb *Framebuffer, scale int) error {
	if fb == nil {
		return errors.New("snapshot: nil framebuffer")
	}
	if scale <= 0 {
		return fmt.Errorf("snapshot: invalid scale %d", scale)
	}
	src := Image(fb)
	dst := image.NewNRGBA(image.Rect(0, 0, fb.Width()*scale, fb.Height()*scale))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	if err := png.Encode(w, dst); err != nil {
		return fmt.Errorf("snapshot: encode: %w", err)
	}
	return nil
}

// InitImage runs a one-pixel frame through the scale and encode path.
func InitImage() error {
	return EncodePNG(io.Discard, NewFramebuffer(1, 1), 2)
}
