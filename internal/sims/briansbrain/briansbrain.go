package briansbrain

import (
	"image/color"

	"caengine/internal/core"
)

// State is the single attribute; its values are the constants below.
const State = "state"

const (
	stateDead  = 0
	stateOn    = 1
	stateDying = 2
)

// Name is the display name of the preset.
const Name = "Brian's Brain"

// Config holds the seeding odds.
type Config struct {
	// OneIn seeds a cell as firing with probability 1/OneIn.
	OneIn int `mapstructure:"one_in"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config { return Config{OneIn: 8} }

var palette = [...]color.RGBA{
	stateDead:  core.Gray(0),
	stateOn:    core.RGB(255, 255, 255),
	stateDying: core.RGB(60, 90, 200),
}

// New returns the Brian's Brain rule: firing cells start dying, dying cells
// die, and dead cells fire when exactly two neighbors are firing.
func New(cfg Config) (*core.Rule, error) {
	oneIn := max(cfg.OneIn, 1)
	update := func(g *core.Grid, i, j int) {
		t := g.Get(i, j)
		if !t.Has(State) {
			v := stateDead
			if g.Rand().IntN(oneIn) == 0 {
				v = stateOn
			}
			t[State] = v
			g.SetImmediate(i, j, core.Cell{State: v})
		}

		switch t.Int(State) {
		case stateOn:
			g.Stage(i, j, core.Cell{State: stateDying})
		case stateDying:
			g.Stage(i, j, core.Cell{State: stateDead})
		default:
			firing := 0
			core.ForNeighborhood(core.Square, i, j, g.W, g.H, 1, func(_, _, ni, nj int) {
				if g.Get(ni, nj).Int(State) == stateOn {
					firing++
				}
			})
			if firing == 2 {
				g.Stage(i, j, core.Cell{State: stateOn})
			}
		}
	}

	return core.NewRule(core.RuleDef{
		Name:   Name,
		Attrs:  []string{State},
		Update: update,
		Color: func(c core.Cell) color.Color {
			s := c.Int(State)
			if s < 0 || s >= len(palette) {
				s = stateDead
			}
			return palette[s]
		},
		Params: core.ParameterSnapshot{Groups: []core.ParameterGroup{{
			Name:   "Seeding",
			Params: []core.Parameter{core.IntParam("one_in", "Firing one in", cfg.OneIn)},
		}}},
	})
}

func init() {
	core.MustRegister("briansbrain", func(cfg map[string]string) (*core.Rule, error) {
		c := DefaultConfig()
		if err := core.DecodeConfig(cfg, &c); err != nil {
			return nil, err
		}
		return New(c)
	})
}
