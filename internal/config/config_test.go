package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"caengine/internal/core"
	_ "caengine/internal/sims/all"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	r := Default()
	assert.Equal(t, "life", r.Preset)
	assert.Equal(t, int64(42), r.Seed)
	assert.Equal(t, 500, r.Extent)
	assert.Equal(t, 20, r.Pitch)
	assert.Equal(t, 30*time.Millisecond, r.Period)
	require.NoError(t, r.Validate())
}

func TestParseOverlaysDefaults(t *testing.T) {
	r, err := Parse([]byte(`
preset: mold
pitch: 10
period: 15ms
max_catch_up: 4
steps: 200
options:
  radius: 2
  base_chance: 0.001
`))
	require.NoError(t, err)
	assert.Equal(t, "mold", r.Preset)
	assert.Equal(t, 10, r.Pitch)
	assert.Equal(t, 500, r.Extent, "absent keys keep defaults")
	assert.Equal(t, 15*time.Millisecond, r.Period)
	assert.Equal(t, map[string]string{"radius": "2", "base_chance": "0.001"}, r.PresetOptions())

	opts := r.EngineOptions()
	assert.Equal(t, core.Options{Extent: 500, Pitch: 10, Period: 15 * time.Millisecond, MaxCatchUp: 4, Seed: 42}, opts)

	rule, err := r.Rule()
	require.NoError(t, err)
	assert.Equal(t, "Mold", rule.Name())
	assert.Equal(t, "2", rule.Parameters().Values()["radius"])
}

func TestParseRejectsInvalid(t *testing.T) {
	for _, doc := range []string{
		"pitch: 0",
		"pitch: 600",
		"extent: -1",
		"steps: -5",
		"preset: ''",
		"period: -1s",
		"pitch: [",
	} {
		_, err := Parse([]byte(doc))
		assert.Error(t, err, doc)
	}
	_, err := Parse([]byte("pitch: 0"))
	assert.ErrorIs(t, err, core.ErrInvalidConfiguration)
}

func TestUnknownPresetOption(t *testing.T) {
	r, err := Parse([]byte("preset: life\noptions: {speed: 3}"))
	require.NoError(t, err)
	_, err = r.Rule()
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte("preset: forest\nseed: 7\n"), 0o644))
	r, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "forest", r.Preset)
	assert.Equal(t, int64(7), r.Seed)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestFlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte("preset: forest\nseed: 7\npitch: 10\noptions: {growth_chance: 0.1}\n"), 0o644))

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	f := BindFlags(fs)
	require.NoError(t, fs.Parse([]string{"--config", path, "--seed", "9", "-o", "ignite_heat=2"}))

	r, err := f.Resolve()
	require.NoError(t, err)
	assert.Equal(t, "forest", r.Preset, "file value kept")
	assert.Equal(t, 10, r.Pitch, "file value kept over flag default")
	assert.Equal(t, int64(9), r.Seed, "explicit flag wins")
	assert.Equal(t, map[string]string{"growth_chance": "0.1", "ignite_heat": "2"}, r.PresetOptions())
}

func TestFlagsWithoutFile(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	f := BindFlags(fs)
	require.NoError(t, fs.Parse([]string{"-p", "briansbrain", "-n", "12"}))
	r, err := f.Resolve()
	require.NoError(t, err)
	assert.Equal(t, "briansbrain", r.Preset)
	assert.Equal(t, 12, r.Steps)
	assert.Equal(t, DefaultPitch, r.Pitch)
}
