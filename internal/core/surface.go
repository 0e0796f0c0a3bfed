package core

import "image/color"

// Surface is the drawing target a grid renders into. Coordinates are pixels.
type Surface interface {
	PaintRect(x, y, size int, c color.Color)
	ClearAll()
	// WithRawContext hands the implementation's native drawing context to fn
	// for overlays that need more than solid squares.
	WithRawContext(fn func(ctx any))
}

// Scheduler is provided by hosts that only tick when asked to.
type Scheduler interface {
	RequestTick()
	CancelTick()
}

// ColorAttr is the attribute read by the default color map, packed as 0xRRGGBB.
const ColorAttr = "color"

var fallbackColor = color.RGBA{A: 255}

// DefaultColor derives a cell color from its ColorAttr, falling back to black.
func DefaultColor(c Cell) color.Color {
	v, ok := c[ColorAttr]
	if !ok {
		return fallbackColor
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}
}

// Gray is a convenience for rule palettes.
func Gray(v int) color.RGBA {
	return RGB(v, v, v)
}

// RGB builds an opaque color, clamping each channel to [0,255].
func RGB(r, g, b int) color.RGBA {
	return color.RGBA{R: clampByte(r), G: clampByte(g), B: clampByte(b), A: 255}
}

func clampByte(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
