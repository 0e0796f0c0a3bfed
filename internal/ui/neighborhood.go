package ui

import (
	"image"

	"caengine/internal/core"
)

// neighborhoodCells lists the wrapped cells around (ci, cj) that a rule with
// the given shape and radius would read, in enumeration order.
func neighborhoodCells(shape core.Shape, radius, ci, cj, w, h int) []image.Point {
	out := make([]image.Point, 0, core.NeighborCount(shape, radius))
	core.ForNeighborhood(shape, ci, cj, w, h, radius, func(_, _, i2, j2 int) {
		out = append(out, image.Pt(i2, j2))
	})
	return out
}

// cellAt maps a cursor position to grid coordinates.
func cellAt(px, py, pitch, w, h int) (int, int, bool) {
	if pitch <= 0 || px < 0 || py < 0 {
		return 0, 0, false
	}
	i, j := px/pitch, py/pitch
	if i >= w || j >= h {
		return 0, 0, false
	}
	return i, j, true
}
