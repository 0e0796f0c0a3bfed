package core

import (
	"fmt"
	"image/color"
	"slices"
)

// UpdateFunc computes one cell's transition. It reads through g.Get, writes
// through g.Stage and may call g.SetImmediate once to lazily initialize the
// cell.
type UpdateFunc func(g *Grid, i, j int)

// ColorFunc maps a cell to its fill color.
type ColorFunc func(c Cell) color.Color

// OverlayFunc paints on top of a cell's fill. x, y and size are in pixels.
type OverlayFunc func(s Surface, x, y, size int, c Cell)

// RuleDef is the input to NewRule.
type RuleDef struct {
	Name    string
	Attrs   []string
	Update  UpdateFunc
	Color   ColorFunc
	Overlay OverlayFunc

	Params   ParameterSnapshot
	Controls []ParameterControl
}

// Rule defines an automaton's behavior and appearance. It is immutable and
// holds no simulation state.
type Rule struct {
	name     string
	attrs    []string
	update   UpdateFunc
	color    ColorFunc
	overlay  OverlayFunc
	params   ParameterSnapshot
	controls []ParameterControl
}

// NewRule validates def and returns the rule it describes.
func NewRule(def RuleDef) (*Rule, error) {
	if def.Name == "" {
		return nil, ErrMissingName
	}
	if def.Update == nil {
		return nil, fmt.Errorf("rule %q: %w", def.Name, ErrMissingUpdate)
	}
	seen := make(map[string]struct{}, len(def.Attrs))
	for _, a := range def.Attrs {
		if a == "" {
			return nil, fmt.Errorf("rule %q: empty attribute name: %w", def.Name, ErrInvalidSchema)
		}
		if _, dup := seen[a]; dup {
			return nil, fmt.Errorf("rule %q: duplicate attribute %q: %w", def.Name, a, ErrInvalidSchema)
		}
		seen[a] = struct{}{}
	}
	return &Rule{
		name:     def.Name,
		attrs:    slices.Clone(def.Attrs),
		update:   def.Update,
		color:    def.Color,
		overlay:  def.Overlay,
		params:   def.Params,
		controls: slices.Clone(def.Controls),
	}, nil
}

// Name returns the display name.
func (r *Rule) Name() string { return r.name }

// Attrs returns the declared attribute names.
func (r *Rule) Attrs() []string { return slices.Clone(r.attrs) }

// Update runs the rule's transition for cell (i, j).
func (r *Rule) Update(g *Grid, i, j int) { r.update(g, i, j) }

// Color returns the fill for c, using DefaultColor when the rule has no map.
func (r *Rule) Color(c Cell) color.Color {
	if r.color == nil {
		return DefaultColor(c)
	}
	return r.color(c)
}

// HasOverlay reports whether the rule paints overlays.
func (r *Rule) HasOverlay() bool { return r.overlay != nil }

// Overlay paints the rule's overlay for c, if any.
func (r *Rule) Overlay(s Surface, x, y, size int, c Cell) {
	if r.overlay != nil {
		r.overlay(s, x, y, size, c)
	}
}

// Parameters reports the tunables the rule was built with.
func (r *Rule) Parameters() ParameterSnapshot { return r.params }

// Controls lists the parameters a HUD may adjust.
func (r *Rule) Controls() []ParameterControl { return slices.Clone(r.controls) }
