package render

import (
	"image"
	"image/color"
	"image/draw"
)

// PixelSurface is a core.Surface backed by a single RGBA buffer. Its raw
// drawing context is the *image.RGBA itself.
type PixelSurface struct {
	img *image.RGBA
}

// NewPixelSurface allocates a w*h surface cleared to transparent black.
func NewPixelSurface(w, h int) *PixelSurface {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &PixelSurface{img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

// Size returns the surface dimensions in pixels.
func (s *PixelSurface) Size() (int, int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

// Pix exposes the RGBA bytes, row-major, four bytes per pixel.
func (s *PixelSurface) Pix() []byte { return s.img.Pix }

// Image returns the backing image.
func (s *PixelSurface) Image() *image.RGBA { return s.img }

// PaintRect fills the size*size square at (x, y), clipped to the surface.
func (s *PixelSurface) PaintRect(x, y, size int, c color.Color) {
	if size <= 0 {
		return
	}
	r := image.Rect(x, y, x+size, y+size).Intersect(s.img.Bounds())
	if r.Empty() {
		return
	}
	fillRectRGBA(s.img, r, color.RGBAModel.Convert(c).(color.RGBA))
}

// ClearAll resets every pixel to transparent black.
func (s *PixelSurface) ClearAll() {
	clear(s.img.Pix)
}

// WithRawContext passes the backing image to fn as a draw.Image.
func (s *PixelSurface) WithRawContext(fn func(ctx any)) {
	fn(draw.Image(s.img))
}

// fillRectRGBA writes col into every pixel of r.
func fillRectRGBA(img *image.RGBA, r image.Rectangle, col color.RGBA) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		base := img.PixOffset(r.Min.X, y)
		for x := r.Min.X; x < r.Max.X; x++ {
			img.Pix[base+0] = col.R
			img.Pix[base+1] = col.G
			img.Pix[base+2] = col.B
			img.Pix[base+3] = col.A
			base += 4
		}
	}
}
