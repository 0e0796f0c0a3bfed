// Package term hosts an engine in a terminal: a lipgloss-styled surface and a
// bubbletea model that drives the clock.
package term

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Marker is drawn when a paint covers less than a whole cell.
const Marker = '•'

type glyph struct {
	bg     string
	fg     string
	marker bool
}

// Surface maps pixel paints onto a grid of terminal cells, one cell per grid
// cell, each two columns wide. Its raw drawing context is the *Surface.
type Surface struct {
	cols, rows int
	pitch      int
	cells      []glyph
	styles     map[glyph]lipgloss.Style
}

// NewSurface creates a surface for a cols*rows grid whose cells are pitch
// pixels wide.
func NewSurface(cols, rows, pitch int) *Surface {
	if pitch <= 0 {
		pitch = 1
	}
	return &Surface{
		cols:   cols,
		rows:   rows,
		pitch:  pitch,
		cells:  make([]glyph, cols*rows),
		styles: map[glyph]lipgloss.Style{},
	}
}

// Size returns the surface dimensions in cells.
func (s *Surface) Size() (int, int) { return s.cols, s.rows }

func (s *Surface) at(x, y int) *glyph {
	if x < 0 || y < 0 {
		return nil
	}
	col, row := x/s.pitch, y/s.pitch
	if col >= s.cols || row >= s.rows {
		return nil
	}
	return &s.cells[row*s.cols+col]
}

// PaintRect fills the cell containing (x, y). A square smaller than the
// pitch marks the cell with a foreground dot instead.
func (s *Surface) PaintRect(x, y, size int, c color.Color) {
	g := s.at(x, y)
	if g == nil || size <= 0 {
		return
	}
	hex := toHex(c)
	if size < s.pitch {
		g.fg = hex
		g.marker = true
		return
	}
	*g = glyph{bg: hex}
}

// ClearAll blanks every cell.
func (s *Surface) ClearAll() {
	clear(s.cells)
}

// WithRawContext passes the surface itself to fn.
func (s *Surface) WithRawContext(fn func(ctx any)) { fn(s) }

// Mark places the marker glyph in the cell at grid coordinates (i, j).
func (s *Surface) Mark(i, j int, c color.Color) {
	s.PaintRect(i*s.pitch, j*s.pitch, 1, c)
}

// Background returns the hex fill of the cell at grid coordinates (i, j).
func (s *Surface) Background(i, j int) string {
	if g := s.at(i*s.pitch, j*s.pitch); g != nil {
		return g.bg
	}
	return ""
}

// Marked reports whether the cell at grid coordinates (i, j) carries a marker.
func (s *Surface) Marked(i, j int) bool {
	g := s.at(i*s.pitch, j*s.pitch)
	return g != nil && g.marker
}

func (s *Surface) style(g glyph) lipgloss.Style {
	if st, ok := s.styles[g]; ok {
		return st
	}
	st := lipgloss.NewStyle()
	if g.bg != "" {
		st = st.Background(lipgloss.Color(g.bg))
	}
	if g.fg != "" {
		st = st.Foreground(lipgloss.Color(g.fg))
	}
	s.styles[g] = st
	return st
}

// View renders the surface, one line per row.
func (s *Surface) View() string {
	var b strings.Builder
	for row := 0; row < s.rows; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		for col := 0; col < s.cols; col++ {
			g := s.cells[row*s.cols+col]
			text := "  "
			if g.marker {
				text = string(Marker) + " "
			}
			b.WriteString(s.style(g).Render(text))
		}
	}
	return b.String()
}

func toHex(c color.Color) string {
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return ""
	}
	return cf.Hex()
}
