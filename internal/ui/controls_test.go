package ui

import (
	"testing"

	"caengine/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSetter struct {
	ints   map[string]int
	floats map[string]float64
	reject bool
}

func (s *recordingSetter) SetIntParameter(key string, v int) bool {
	if s.reject {
		return false
	}
	if s.ints == nil {
		s.ints = map[string]int{}
	}
	s.ints[key] = v
	return true
}

func (s *recordingSetter) SetFloatParameter(key string, v float64) bool {
	if s.reject {
		return false
	}
	if s.floats == nil {
		s.floats = map[string]float64{}
	}
	s.floats[key] = v
	return true
}

type stoppedHost struct {
	recordingSetter
	rule *core.Rule
}

func (h *stoppedHost) Rule() *core.Rule   { return h.rule }
func (h *stoppedHost) Running() bool      { return false }
func (h *stoppedHost) Generation() uint64 { return 0 }

var radius = core.ParameterControl{Key: "radius", Label: "Radius", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: 3, HasMin: true, HasMax: true}
var chance = core.ParameterControl{Key: "chance", Label: "Chance", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true}

func TestNextValueClamps(t *testing.T) {
	v, ok := nextValue(radius, 2, 1)
	assert.True(t, ok)
	assert.Equal(t, 3.0, v)

	_, ok = nextValue(radius, 3, 1)
	assert.False(t, ok, "at max")

	_, ok = nextValue(radius, 1, -1)
	assert.False(t, ok, "at min")

	v, ok = nextValue(chance, 0.98, 1)
	assert.True(t, ok)
	assert.Equal(t, 1.0, v)

	_, ok = nextValue(core.ParameterControl{Type: core.ParamTypeBool}, 0, 1)
	assert.False(t, ok)
}

func TestRefreshAndApply(t *testing.T) {
	states := newControlStates([]core.ParameterControl{radius, chance, {Key: "missing", Type: core.ParamTypeInt}})
	snap := core.ParameterSnapshot{Groups: []core.ParameterGroup{{Params: []core.Parameter{
		core.IntParam("radius", "Radius", 2),
		core.FloatParam("chance", "Chance", 0.5),
	}}}}
	refresh(states, snap)
	assert.Equal(t, "2", states[0].value)
	assert.Equal(t, "0.50", states[1].value)
	assert.False(t, states[2].hasValue)
	assert.Equal(t, "--", states[2].value)

	s := &recordingSetter{}
	require.True(t, apply(&states[0], 1, s, s))
	assert.Equal(t, 3, s.ints["radius"])
	assert.Equal(t, "3", states[0].value)

	require.True(t, apply(&states[1], -1, s, s))
	assert.InDelta(t, 0.45, s.floats["chance"], 1e-9)

	assert.False(t, apply(&states[2], 1, s, s), "no value, no adjustment")

	s.reject = true
	assert.False(t, apply(&states[1], -1, s, s))
	assert.Equal(t, "0.45", states[1].value, "rejected change keeps the old value")
}

func TestFormatFloatPrecision(t *testing.T) {
	assert.Equal(t, "0.0001", formatFloat(core.ParameterControl{Step: 0.0001}, 0.0001))
	assert.Equal(t, "0.5", formatFloat(core.ParameterControl{Step: 0.5}, 0.5))
	assert.Equal(t, "0.000001", formatFloat(core.ParameterControl{Step: 0.000001}, 0.000001))
}

func TestApplyThroughHost(t *testing.T) {
	rule, err := core.NewRule(core.RuleDef{
		Name:     "tunable",
		Attrs:    []string{"v"},
		Update:   func(*core.Grid, int, int) {},
		Params:   core.ParameterSnapshot{Groups: []core.ParameterGroup{{Params: []core.Parameter{core.IntParam("radius", "Radius", 1)}}}},
		Controls: []core.ParameterControl{radius},
	})
	require.NoError(t, err)

	var h Host = &stoppedHost{rule: rule}
	states := newControlStates(h.Rule().Controls())
	refresh(states, h.Rule().Parameters())
	require.True(t, apply(&states[0], 1, h, h))
	assert.Equal(t, 2, h.(*stoppedHost).ints["radius"])
}
