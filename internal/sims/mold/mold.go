// Package mold implements a growth automaton: levels creep upward where
// neighbors are already higher, producing terraced mold-like blooms.
package mold

import (
	"image/color"
	"math"

	"caengine/internal/core"
)

// Level is the single attribute this rule owns.
const Level = "lvl"

// Name is the display name of the preset.
const Name = "Mold"

// Config holds the growth probabilities.
type Config struct {
	// BaseChance is the spontaneous upgrade chance of every cell.
	BaseChance float64 `mapstructure:"base_chance"`
	// NeighborChance is the per-level contribution of a qualifying neighbor.
	NeighborChance float64 `mapstructure:"neighbor_chance"`
	// Radius bounds the diamond neighborhood that is inspected.
	Radius int `mapstructure:"radius"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{BaseChance: 0.000001, NeighborChance: 0.0001, Radius: 3}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) (Config, error) {
	c := DefaultConfig()
	if err := core.DecodeConfig(cfg, &c); err != nil {
		return c, err
	}
	return c.clamped(), nil
}

// MaxRadius is the outermost distance band UpgradeChance scores.
const MaxRadius = 3

func (c Config) clamped() Config {
	c.Radius = min(max(c.Radius, 1), MaxRadius)
	return c
}

// UpgradeChance returns the probability that a cell at level lvl advances,
// given the offsets and levels of its neighbors as visited by the walker.
func (c Config) UpgradeChance(lvl int, visit func(yield func(i1, j1, nlvl int))) float64 {
	p := c.BaseChance
	add := func(n int) {
		p += (1 - p) * (1 - math.Pow(1-c.NeighborChance, float64(n)))
	}
	visit(func(i1, j1, nlvl int) {
		d := max(abs(i1), abs(j1))
		diff := nlvl - lvl
		switch {
		case d == 3 && diff > 4:
			add(diff - 4)
		case d == 2 && diff > 2:
			add(diff - 2)
		case d == 1 && nlvl > 0 && diff >= 0:
			add(diff + 1)
		}
	})
	return p
}

// New returns the mold rule for cfg.
func New(cfg Config) (*core.Rule, error) {
	cfg = cfg.clamped()
	update := func(g *core.Grid, i, j int) {
		t := g.Get(i, j)
		if !t.Has(Level) {
			g.SetImmediate(i, j, core.Cell{Level: 0})
		}
		lvl := t.Int(Level)
		p := cfg.UpgradeChance(lvl, func(yield func(i1, j1, nlvl int)) {
			core.ForNeighborhood(core.Diamond, i, j, g.W, g.H, cfg.Radius, func(i1, j1, ni, nj int) {
				yield(i1, j1, g.Get(ni, nj).Int(Level))
			})
		})
		if g.Rand().Float64() < p {
			g.Stage(i, j, core.Cell{Level: lvl + 1})
		}
	}

	return core.NewRule(core.RuleDef{
		Name:   Name,
		Attrs:  []string{Level},
		Update: update,
		Color:  Color,
		Params: core.ParameterSnapshot{Groups: []core.ParameterGroup{{
			Name: "Growth",
			Params: []core.Parameter{
				core.FloatParam("base_chance", "Base chance", cfg.BaseChance),
				core.FloatParam("neighbor_chance", "Neighbor chance", cfg.NeighborChance),
				core.IntParam("radius", "Radius", cfg.Radius),
			},
		}}},
		Controls: []core.ParameterControl{
			{Key: "neighbor_chance", Label: "Neighbor chance", Type: core.ParamTypeFloat, Step: 0.0001, Min: 0, Max: 1, HasMin: true, HasMax: true},
			{Key: "radius", Label: "Radius", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: MaxRadius, HasMin: true, HasMax: true},
		},
	})
}

// Color shades a cell by level: black at zero, then 40 plus 5 per level.
func Color(c core.Cell) color.Color {
	lvl := c.Int(Level)
	if lvl <= 0 {
		return core.Gray(0)
	}
	return core.Gray(40 + lvl*5)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func init() {
	core.MustRegister("mold", func(cfg map[string]string) (*core.Rule, error) {
		c, err := FromMap(cfg)
		if err != nil {
			return nil, err
		}
		return New(c)
	})
}
