// Package ecology implements the forest automaton: vegetation grows, fire
// spreads through it and burns out, and petrified patches appear, spread and
// dissolve again.
package ecology

import (
	"caengine/internal/core"
)

// Attribute names.
const (
	Veg  = "veg"
	Fire = "fire"
	Petr = "petr"
)

// Petrification states.
const (
	PetrNone = 0
	PetrGray = 1
	PetrBlue = 2
)

// Name is the display name of the preset.
const Name = "Forest"

// neighborhood aggregates the eight surrounding cells.
type neighborhood struct {
	fire int // summed fire intensity
	gray int // neighbors in PetrGray
	lush int // neighbors with 0 < veg < LushVegMax
	blue int // neighbors in PetrBlue
}

// State is one cell's forest attributes.
type State struct {
	Veg, Fire, Petr int
}

func stateOf(c core.Cell) State {
	return State{Veg: c.Int(Veg), Fire: c.Int(Fire), Petr: c.Int(Petr)}
}

func (s State) cell() core.Cell {
	return core.Cell{Veg: s.Veg, Fire: s.Fire, Petr: s.Petr}
}

// transition applies the forest rules to s in their fixed evaluation order.
// roll(p) must draw one random number and report whether it fell below p.
func (p Params) transition(s State, n neighborhood, roll func(float64) bool) (State, bool) {
	changed := false
	if s.Fire == 0 && s.Petr == PetrNone && roll(p.GrowthChance) {
		s.Veg++
		changed = true
	}
	if s.Fire > 0 {
		if s.Veg == 0 {
			s.Fire /= 2
		} else {
			a := min(s.Fire, s.Veg)
			s.Veg -= a
			s.Fire += (a + 1) / 2
		}
		changed = true
	}
	heat := n.fire - s.Fire
	if s.Petr == PetrNone && s.Fire == 0 && s.Veg > 0 && heat > p.IgniteHeat && roll(p.IgniteChancePer*float64(heat)) {
		s.Fire = heat / max(p.IgniteHeat, 1)
		changed = true
	}
	if s.Fire == 0 && s.Petr == PetrNone && n.gray > 0 && n.gray < p.PetrifyNeighborMax && roll(p.PetrifyChance) {
		s.Petr = PetrGray
		changed = true
	}
	if s.Petr != PetrNone && roll(p.ReviveChancePer*float64(n.lush)) {
		if roll(p.ReviveToBlueChance) {
			s.Petr = PetrBlue
		} else {
			s.Petr = PetrNone
		}
		changed = true
	}
	if s.Petr == PetrGray && roll(p.BlueConvertChancePer*float64(n.blue)) {
		s.Petr = PetrBlue
		changed = true
	}
	if s.Petr == PetrBlue && roll(p.BlueDecayChance) {
		s.Petr = PetrNone
		changed = true
	}
	if s.Petr == PetrNone && s.Fire == 0 && s.Veg > 0 && roll(p.SpontaneousFireChance) {
		s.Fire = 1
		changed = true
	}
	if s.Petr == PetrNone && s.Fire == 0 && s.Veg > 0 && roll(p.SpontaneousPetrChance) {
		s.Petr = PetrGray
		changed = true
	}
	return s, changed
}

// New returns the forest rule for cfg.
func New(cfg Config) (*core.Rule, error) {
	p := cfg.Params
	update := func(g *core.Grid, i, j int) {
		t := g.Get(i, j)
		if !t.Has(Veg) {
			g.SetImmediate(i, j, core.Cell{Veg: 0, Fire: 0, Petr: 0})
		}

		var n neighborhood
		core.ForNeighborhood(core.Square, i, j, g.W, g.H, 1, func(_, _, ni, nj int) {
			s := stateOf(g.Get(ni, nj))
			n.fire += s.Fire
			switch s.Petr {
			case PetrGray:
				n.gray++
			case PetrBlue:
				n.blue++
			}
			if s.Veg > 0 && s.Veg < p.LushVegMax {
				n.lush++
			}
		})

		rng := g.Rand()
		next, changed := p.transition(stateOf(t), n, func(chance float64) bool {
			return rng.Float64() < chance
		})
		if changed {
			g.Stage(i, j, next.cell())
		}
	}

	return core.NewRule(core.RuleDef{
		Name:     Name,
		Attrs:    []string{Veg, Fire, Petr},
		Update:   update,
		Color:    Color,
		Overlay:  Overlay,
		Params:   cfg.Parameters(),
		Controls: controls,
	})
}

func init() {
	core.MustRegister("forest", func(cfg map[string]string) (*core.Rule, error) {
		c, err := FromMap(cfg)
		if err != nil {
			return nil, err
		}
		return New(c)
	})
}
