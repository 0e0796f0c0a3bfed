//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads a PixelSurface into a single ebiten image.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
}

// NewGridPainter allocates a painter for a w*h pixel surface.
func NewGridPainter(w, h int) *GridPainter {
	return &GridPainter{w: w, h: h, img: ebiten.NewImage(w, h)}
}

// Blit uploads src and draws it at the origin of dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, src *PixelSurface) {
	sw, sh := src.Size()
	if sw != gp.w || sh != gp.h {
		return
	}
	gp.img.ReplacePixels(src.Pix())
	dst.DrawImage(gp.img, &ebiten.DrawImageOptions{})
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
