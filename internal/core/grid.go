package core

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// Grid stores a toroidal 2D array of cells in row-major order.
//
// Writes made with Stage go to a second buffer and only become visible when
// Commit runs, so every update in a step reads the previous step's state.
type Grid struct {
	W, H  int
	pitch int

	cur   []Cell
	next  []Cell
	dirty []int

	schema schema
	rng    *rand.Rand
}

// NewGrid allocates a square grid covering extent pixels with cells of pitch
// pixels. rule may be nil, in which case the grid accepts any attribute.
func NewGrid(extent, pitch int, rule *Rule, seed int64) (*Grid, error) {
	if pitch <= 0 || extent <= 0 {
		return nil, fmt.Errorf("%w: extent %d, pitch %d", ErrInvalidConfiguration, extent, pitch)
	}
	return NewGridSize(extent/pitch, extent/pitch, pitch, rule, seed)
}

// NewGridSize allocates a w x h grid directly.
func NewGridSize(w, h, pitch int, rule *Rule, seed int64) (*Grid, error) {
	if w <= 0 || h <= 0 || pitch <= 0 {
		return nil, fmt.Errorf("%w: %dx%d cells, pitch %d", ErrInvalidConfiguration, w, h, pitch)
	}
	g := &Grid{
		W:     w,
		H:     h,
		pitch: pitch,
		cur:   make([]Cell, w*h),
		next:  make([]Cell, w*h),
		rng:   NewRand(seed),
	}
	for i := range g.cur {
		g.cur[i] = Cell{}
	}
	if rule != nil {
		g.schema = newSchema(rule.attrs)
	}
	return g, nil
}

// Pitch returns the cell size in pixels.
func (g *Grid) Pitch() int { return g.pitch }

// Rand is the grid's random source. Rules must draw from it so a seeded grid
// steps deterministically.
func (g *Grid) Rand() *rand.Rand { return g.rng }

// Index returns the linear index for coordinates (i, j).
func (g *Grid) Index(i, j int) int { return j*g.W + i }

// InBounds reports whether (i, j) addresses a cell without wrapping.
func (g *Grid) InBounds(i, j int) bool {
	return i >= 0 && i < g.W && j >= 0 && j < g.H
}

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(i, j int) (int, int) {
	return mod(i, g.W), mod(j, g.H)
}

func (g *Grid) index(i, j int) int {
	if !g.InBounds(i, j) {
		panic(&CoordError{I: i, J: j, W: g.W, H: g.H})
	}
	return g.Index(i, j)
}

// Get returns a copy of the committed cell at (i, j). It panics with a
// *CoordError when the coordinate is outside the grid.
func (g *Grid) Get(i, j int) Cell {
	return g.cur[g.index(i, j)].Clone()
}

// SetImmediate merges partial into the committed cell at (i, j). It exists for
// one-time lazy initialization; transitions must go through Stage.
func (g *Grid) SetImmediate(i, j int, partial Cell) {
	idx := g.index(i, j)
	g.schema.check(partial)
	g.cur[idx].Merge(partial)
	if g.next[idx] != nil {
		g.next[idx].Merge(partial)
	}
}

// Stage records a change to (i, j) that takes effect at the next Commit.
// Repeated stages to one cell apply in call order.
func (g *Grid) Stage(i, j int, partial Cell) {
	idx := g.index(i, j)
	g.schema.check(partial)
	if g.next[idx] == nil {
		g.next[idx] = g.cur[idx].Clone()
		g.dirty = append(g.dirty, idx)
	}
	g.next[idx].Merge(partial)
}

// Pending reports how many cells have staged changes.
func (g *Grid) Pending() int { return len(g.dirty) }

// Commit makes every staged change visible and clears the staging buffer.
func (g *Grid) Commit() {
	for _, idx := range g.dirty {
		g.cur[idx], g.next[idx] = g.next[idx], nil
	}
	g.dirty = g.dirty[:0]
}

func (g *Grid) discard() {
	for _, idx := range g.dirty {
		g.next[idx] = nil
	}
	g.dirty = g.dirty[:0]
}

// Step calls update for every cell against the previous state and commits the
// staged result. A coordinate or schema violation inside update aborts the
// step, discards its staged changes and is returned as an error.
func (g *Grid) Step(update UpdateFunc) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		e, ok := r.(error)
		if !ok || !(errors.Is(e, ErrOutOfRange) || errors.Is(e, ErrUnknownAttribute)) {
			panic(r)
		}
		g.discard()
		err = e
	}()
	for j := 0; j < g.H; j++ {
		for i := 0; i < g.W; i++ {
			update(g, i, j)
		}
	}
	g.Commit()
	return nil
}

// Render paints every cell with the rule's color and then its overlay.
func (g *Grid) Render(s Surface, r *Rule) {
	p := g.pitch
	for j := 0; j < g.H; j++ {
		for i := 0; i < g.W; i++ {
			c := g.cur[g.Index(i, j)]
			x, y := i*p, j*p
			if r == nil {
				s.PaintRect(x, y, p, DefaultColor(c))
				continue
			}
			s.PaintRect(x, y, p, r.Color(c))
			if r.overlay != nil {
				r.overlay(s, x, y, p, c.Clone())
			}
		}
	}
}

// Cells calls fn with a copy of every committed cell in row-major order.
func (g *Grid) Cells(fn func(i, j int, c Cell)) {
	for j := 0; j < g.H; j++ {
		for i := 0; i < g.W; i++ {
			fn(i, j, g.cur[g.Index(i, j)].Clone())
		}
	}
}
