//go:build ebiten

package ui

import (
	"image/color"

	"caengine/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay draws optional debugging visuals on top of the grid: cell borders
// and the neighborhood of the cell under the cursor.
type Overlay struct {
	showGrid   bool
	showNeigh  bool
	shape      core.Shape
	radius     int
	pixel      *ebiten.Image
	cursorCell [2]int
	hasCursor  bool
}

// NewOverlay constructs a new overlay instance.
func NewOverlay() *Overlay {
	o := &Overlay{radius: 1}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update handles the overlay's toggle keys and tracks the cursor cell.
func (o *Overlay) Update(g *core.Grid) {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showGrid = !o.showGrid
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showNeigh = !o.showNeigh
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit3) {
		if o.shape == core.Square {
			o.shape = core.Diamond
		} else {
			o.shape = core.Square
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) && o.radius < 8 {
		o.radius++
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) && o.radius > 1 {
		o.radius--
	}
	mx, my := ebiten.CursorPosition()
	i, j, ok := cellAt(mx, my, g.Pitch(), g.W, g.H)
	o.hasCursor = ok
	o.cursorCell = [2]int{i, j}
}

// Draw renders the enabled layers onto screen.
func (o *Overlay) Draw(screen *ebiten.Image, g *core.Grid) {
	p := g.Pitch()
	if o.showGrid && p >= 4 {
		line := color.RGBA{R: 80, G: 80, B: 90, A: 110}
		for i := 0; i <= g.W; i++ {
			o.fill(screen, float64(i*p), 0, 1, float64(g.H*p), line)
		}
		for j := 0; j <= g.H; j++ {
			o.fill(screen, 0, float64(j*p), float64(g.W*p), 1, line)
		}
	}
	if o.showNeigh && o.hasCursor {
		ci, cj := o.cursorCell[0], o.cursorCell[1]
		tint := color.RGBA{R: 64, G: 164, B: 223, A: 110}
		for _, pt := range neighborhoodCells(o.shape, o.radius, ci, cj, g.W, g.H) {
			o.fill(screen, float64(pt.X*p), float64(pt.Y*p), float64(p), float64(p), tint)
		}
		o.fill(screen, float64(ci*p), float64(cj*p), float64(p), float64(p), color.RGBA{R: 255, G: 120, B: 40, A: 140})
	}
}

func (o *Overlay) fill(screen *ebiten.Image, x, y, w, h float64, col color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}
