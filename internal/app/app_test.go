package app

import (
	"image/color"
	"testing"

	"caengine/internal/core"
	"caengine/internal/render"
	_ "caengine/internal/sims/all"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(t *testing.T, preset string) *core.Engine {
	t.Helper()
	e, err := core.New(render.NewPixelSurface(100, 100), core.Options{Extent: 100, Pitch: 10})
	require.NoError(t, err)
	r, err := core.Build(preset, nil)
	require.NoError(t, err)
	require.NoError(t, e.SetRule(r))
	return e
}

func TestRetuneRebuildsPreset(t *testing.T) {
	e := newEngine(t, "mold")
	require.NoError(t, e.Step())

	require.NoError(t, Retune(e, "radius", "2"))
	assert.Equal(t, "Mold", e.Rule().Name())
	assert.Equal(t, "2", e.Rule().Parameters().Values()["radius"])
	assert.Equal(t, "1e-06", e.Rule().Parameters().Values()["base_chance"], "other values carried over")
	assert.Zero(t, e.Generation(), "retune starts a fresh grid")

	assert.Error(t, Retune(e, "nope", "1"))
	assert.Error(t, Retune(e, "radius", "wide"))
	assert.Equal(t, "2", e.Rule().Parameters().Values()["radius"], "failed retune keeps the rule")
}

func TestRetuneRequiresRegisteredRule(t *testing.T) {
	e, err := core.New(render.NewPixelSurface(10, 10), core.Options{Extent: 10, Pitch: 5})
	require.NoError(t, err)
	assert.ErrorIs(t, Retune(e, "x", "1"), core.ErrNoRule)

	adhoc, err := core.NewRule(core.RuleDef{Name: "adhoc", Update: func(*core.Grid, int, int) {}})
	require.NoError(t, err)
	require.NoError(t, e.SetRule(adhoc))
	assert.ErrorIs(t, Retune(e, "x", "1"), core.ErrUnknownPreset)
}

func TestTunerSetters(t *testing.T) {
	e := newEngine(t, "life")
	var errs []error
	tuner := Tuner{Engine: e, OnError: func(err error) { errs = append(errs, err) }}

	assert.True(t, tuner.SetFloatParameter("density", 0.5))
	assert.Equal(t, "0.5", e.Rule().Parameters().Values()["density"])
	assert.False(t, tuner.SetIntParameter("missing", 1))
	assert.Len(t, errs, 1)
}

func TestRetuneRepaints(t *testing.T) {
	s := render.NewPixelSurface(100, 100)
	e, err := core.New(s, core.Options{Extent: 100, Pitch: 10})
	require.NoError(t, err)
	r, err := core.Build("mold", nil)
	require.NoError(t, err)
	require.NoError(t, e.SetRule(r))
	require.NoError(t, Retune(e, "radius", "1"))
	assert.Equal(t, color.RGBA{A: 255}, s.Image().RGBAAt(5, 5), "empty mold cells paint black")
}

func TestConfigBind(t *testing.T) {
	c := NewConfig()
	fs := pflag.NewFlagSet("ca", pflag.ContinueOnError)
	c.Bind(fs)
	require.NoError(t, fs.Parse([]string{"--hud", "0", "--preset", "forest", "-v"}))
	assert.Equal(t, 0, c.HUDWidth)
	assert.True(t, c.Verbose)
	run, err := c.Run()
	require.NoError(t, err)
	assert.Equal(t, "forest", run.Preset)

	run, err = NewConfig().Run()
	require.NoError(t, err)
	assert.Equal(t, "life", run.Preset)
}
