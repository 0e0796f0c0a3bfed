package elementary

import (
	"image/color"

	"caengine/internal/core"
)

// On is the single attribute, 0 or 1.
const On = "on"

// Name is the display name of the preset.
const Name = "Elementary"

// Config holds parameters for the elementary cellular automaton.
type Config struct {
	Rule uint8 `mapstructure:"rule"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Rule: 110}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) (Config, error) {
	c := DefaultConfig()
	err := core.DecodeConfig(cfg, &c)
	return c, err
}

// New returns a one-dimensional Wolfram code projected onto the torus: row 0
// evolves from its wrapped left, center and right cells while every other row
// takes the value of the row above, so history scrolls downwards. The grid
// starts with a single active cell in the middle of row 0.
func New(cfg Config) (*core.Rule, error) {
	rule := cfg.Rule
	update := func(g *core.Grid, i, j int) {
		t := g.Get(i, j)
		if !t.Has(On) {
			v := 0
			if i == g.W/2 && j == 0 {
				v = 1
			}
			t[On] = v
			g.SetImmediate(i, j, core.Cell{On: v})
		}

		var next int
		if j == 0 {
			li, _ := g.Wrap(i-1, 0)
			ri, _ := g.Wrap(i+1, 0)
			left := seedValue(g, li, 0)
			right := seedValue(g, ri, 0)
			idx := (left << 2) | (t.Int(On) << 1) | right
			next = int(rule>>idx) & 1
		} else {
			next = seedValue(g, i, j-1)
		}
		if next != t.Int(On) {
			g.Stage(i, j, core.Cell{On: next})
		}
	}

	return core.NewRule(core.RuleDef{
		Name:   Name,
		Attrs:  []string{On},
		Update: update,
		Color: func(c core.Cell) color.Color {
			if c.Bool(On) {
				return core.Gray(255)
			}
			return core.Gray(0)
		},
		Params: core.ParameterSnapshot{Groups: []core.ParameterGroup{{
			Name:   "Rule",
			Params: []core.Parameter{core.IntParam("rule", "Wolfram code", int(cfg.Rule))},
		}}},
		Controls: []core.ParameterControl{{
			Key: "rule", Label: "Rule", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: 255, HasMin: true, HasMax: true,
		}},
	})
}

// seedValue reads a neighbor that may not have been visited yet this step; the
// initial pattern is a pure function of position so it can be derived here.
func seedValue(g *core.Grid, i, j int) int {
	c := g.Get(i, j)
	if c.Has(On) {
		return c.Int(On)
	}
	if i == g.W/2 && j == 0 {
		return 1
	}
	return 0
}

func init() {
	core.MustRegister("elementary", func(cfg map[string]string) (*core.Rule, error) {
		c, err := FromMap(cfg)
		if err != nil {
			return nil, err
		}
		return New(c)
	})
}
