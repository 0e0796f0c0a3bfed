package life

import (
	"image/color"

	"caengine/internal/core"
)

// Attribute names.
const (
	Alive = "alive"
)

// Name is the display name of the preset.
const Name = "Conway's Game of Life"

// Config holds parameters for the Game of Life.
type Config struct {
	// Density is the chance a cell starts alive.
	Density float64 `mapstructure:"density"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Density: 0.25}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) (Config, error) {
	c := DefaultConfig()
	if err := core.DecodeConfig(cfg, &c); err != nil {
		return c, err
	}
	return c, nil
}

var (
	aliveColor = core.Gray(0)
	deadColor  = core.Gray(255)
)

// New returns the Game of Life rule: B3/S23 on the eight-cell neighborhood
// with toroidal wrapping. Cells are seeded lazily on their first visit.
func New(cfg Config) (*core.Rule, error) {
	update := func(g *core.Grid, i, j int) {
		t := g.Get(i, j)
		if !t.Has(Alive) {
			v := 0
			if core.Chance(g.Rand(), cfg.Density) {
				v = 1
			}
			t[Alive] = v
			g.SetImmediate(i, j, core.Cell{Alive: v})
		}

		neighbors := 0
		core.ForNeighborhood(core.Square, i, j, g.W, g.H, 1, func(_, _, i2, j2 int) {
			if g.Get(i2, j2).Bool(Alive) {
				neighbors++
			}
		})

		alive := t.Bool(Alive)
		switch {
		case alive && (neighbors < 2 || neighbors > 3):
			g.Stage(i, j, core.Cell{Alive: 0})
		case !alive && neighbors == 3:
			g.Stage(i, j, core.Cell{Alive: 1})
		}
	}

	return core.NewRule(core.RuleDef{
		Name:   Name,
		Attrs:  []string{Alive},
		Update: update,
		Color: func(c core.Cell) color.Color {
			if c.Bool(Alive) {
				return aliveColor
			}
			return deadColor
		},
		Params: core.ParameterSnapshot{Groups: []core.ParameterGroup{{
			Name:   "Seeding",
			Params: []core.Parameter{core.FloatParam("density", "Initial density", cfg.Density)},
		}}},
		Controls: []core.ParameterControl{{
			Key: "density", Label: "Density", Type: core.ParamTypeFloat,
			Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true,
		}},
	})
}

func init() {
	core.MustRegister("life", func(cfg map[string]string) (*core.Rule, error) {
		c, err := FromMap(cfg)
		if err != nil {
			return nil, err
		}
		return New(c)
	})
}
