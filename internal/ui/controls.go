package ui

import (
	"math"
	"strconv"

	"caengine/internal/core"
)

// controlState is the HUD's view of one adjustable parameter.
type controlState struct {
	control core.ParameterControl
	value   string

	current  float64
	hasValue bool
}

func newControlStates(controls []core.ParameterControl) []controlState {
	out := make([]controlState, len(controls))
	for i, ctrl := range controls {
		out[i] = controlState{control: ctrl, value: "--"}
	}
	return out
}

// refresh reloads each control's value from the rule's snapshot.
func refresh(states []controlState, snap core.ParameterSnapshot) {
	for i := range states {
		st := &states[i]
		st.hasValue = false
		st.value = "--"
		param, ok := snap.Lookup(st.control.Key)
		if !ok {
			continue
		}
		switch st.control.Type {
		case core.ParamTypeInt:
			v, err := strconv.Atoi(param.Value)
			if err != nil {
				continue
			}
			st.current = float64(v)
			st.value = strconv.Itoa(v)
			st.hasValue = true
		case core.ParamTypeFloat:
			v, err := strconv.ParseFloat(param.Value, 64)
			if err != nil {
				continue
			}
			st.current = v
			st.value = formatFloat(st.control, v)
			st.hasValue = true
		}
	}
}

// nextValue returns the value one step in direction, clamped to the
// control's bounds, and whether it differs from the current one.
func nextValue(ctrl core.ParameterControl, current float64, direction int) (float64, bool) {
	if direction == 0 {
		return current, false
	}
	step := ctrl.Step
	switch ctrl.Type {
	case core.ParamTypeInt:
		step = math.Round(step)
		if step <= 0 {
			step = 1
		}
	case core.ParamTypeFloat:
		if step <= 0 {
			step = 0.05
		}
	default:
		return current, false
	}
	target := current + float64(direction)*step
	if ctrl.HasMin && target < ctrl.Min {
		target = ctrl.Min
	}
	if ctrl.HasMax && target > ctrl.Max {
		target = ctrl.Max
	}
	if ctrl.Type == core.ParamTypeInt {
		target = math.Round(target)
	}
	return target, math.Abs(target-current) > 1e-12
}

// apply pushes one adjustment through the matching setter.
func apply(st *controlState, direction int, ints core.IntParameterSetter, floats core.FloatParameterSetter) bool {
	if st == nil || !st.hasValue {
		return false
	}
	target, changed := nextValue(st.control, st.current, direction)
	if !changed {
		return false
	}
	switch st.control.Type {
	case core.ParamTypeInt:
		if ints == nil || !ints.SetIntParameter(st.control.Key, int(target)) {
			return false
		}
		st.value = strconv.Itoa(int(target))
	case core.ParamTypeFloat:
		if floats == nil || !floats.SetFloatParameter(st.control.Key, target) {
			return false
		}
		st.value = formatFloat(st.control, target)
	}
	st.current = target
	return true
}

func formatFloat(ctrl core.ParameterControl, value float64) string {
	step := ctrl.Step
	if step <= 0 {
		step = 0.05
	}
	precision := 1
	switch {
	case step < 0.0001:
		precision = 6
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}
