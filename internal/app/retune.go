package app

import (
	"fmt"
	"strconv"

	"caengine/internal/core"
)

// Retune rebuilds the engine's active preset with one parameter replaced and
// swaps it in. The grid starts over, as with any rule change.
func Retune(e *core.Engine, key, value string) error {
	r := e.Rule()
	if r == nil {
		return core.ErrNoRule
	}
	preset, ok := core.KeyOf(r.Name())
	if !ok {
		return fmt.Errorf("%w: %q is not a registered preset", core.ErrUnknownPreset, r.Name())
	}
	vals := r.Parameters().Values()
	if _, ok := vals[key]; !ok {
		return fmt.Errorf("%s has no parameter %q", r.Name(), key)
	}
	vals[key] = value
	next, err := core.Build(preset, vals)
	if err != nil {
		return fmt.Errorf("retune %s.%s=%s: %w", preset, key, value, err)
	}
	if err := e.SetRule(next); err != nil {
		return err
	}
	e.Render()
	return nil
}

// Tuner adapts Retune to the HUD's setter interfaces.
type Tuner struct {
	Engine  *core.Engine
	OnError func(error)
}

func (t Tuner) SetIntParameter(key string, value int) bool {
	return t.set(key, strconv.Itoa(value))
}

func (t Tuner) SetFloatParameter(key string, value float64) bool {
	return t.set(key, strconv.FormatFloat(value, 'g', -1, 64))
}

func (t Tuner) set(key, value string) bool {
	if err := Retune(t.Engine, key, value); err != nil {
		if t.OnError != nil {
			t.OnError(err)
		}
		return false
	}
	return true
}
