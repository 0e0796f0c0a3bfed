package ecology

import (
	"image"
	"image/color"
	"image/draw"

	"caengine/internal/core"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	markerTint = colorful.Color{R: 0.55, G: 0.75, B: 1}
)

// Color maps a forest cell to its fill: red by fire intensity when burning,
// otherwise a vegetation shade tinted by petrification state.
func Color(c core.Cell) color.Color {
	s := stateOf(c)
	if s.Fire > 0 {
		return core.RGB(40+min(s.Fire*2, 200), 0, 0)
	}
	v := 0
	if s.Veg > 0 {
		v = min(20+s.Veg*2, 250)
	}
	switch s.Petr {
	case PetrBlue:
		return core.RGB(0, 0, v)
	case PetrGray:
		return core.Gray(v)
	default:
		return core.RGB(0, v, 0)
	}
}

// Overlay marks blue-petrified cells with a dot so they stay visible on bare
// ground where their fill is black.
func Overlay(s core.Surface, x, y, size int, c core.Cell) {
	if c.Int(Petr) != PetrBlue || size < 3 {
		return
	}
	fill, _ := colorful.MakeColor(Color(c))
	mark := fill.BlendRgb(markerTint, 0.7).Clamped()
	s.WithRawContext(func(ctx any) {
		if img, ok := ctx.(draw.Image); ok {
			drawDot(img, x+size/2, y+size/2, size/4, mark)
			return
		}
		s.PaintRect(x+size/4, y+size/4, size/2, mark)
	})
}

func drawDot(img draw.Image, cx, cy, r int, c color.Color) {
	b := img.Bounds()
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy > r*r {
				continue
			}
			p := image.Pt(cx+dx, cy+dy)
			if p.In(b) {
				img.Set(p.X, p.Y, c)
			}
		}
	}
}
