package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestPresetsCommand(t *testing.T) {
	out, err := execute(t, "presets")
	require.NoError(t, err)
	for _, key := range []string{"life", "mold", "forest", "briansbrain", "elementary"} {
		assert.Contains(t, out, key)
	}
	assert.Contains(t, out, "radius=3")
}

func TestRunCommandWritesPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.png")
	out, err := execute(t, "run", "-p", "briansbrain", "--extent", "60", "--pitch", "6", "-n", "5", "--png", path, "--metrics")
	require.NoError(t, err)
	assert.Contains(t, out, "generation 5")
	assert.Contains(t, out, `ca_steps_total{rule="Brian's Brain"} 5`)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 60, img.Bounds().Dx())
}

func TestRunCommandRejectsBadConfig(t *testing.T) {
	_, err := execute(t, "run", "--pitch", "0")
	assert.Error(t, err)
	_, err = execute(t, "run", "-p", "nope", "--pitch", "20")
	assert.Error(t, err)
}

func TestSweepCommand(t *testing.T) {
	out, err := execute(t, "sweep", "-p", "mold", "--extent", "40", "--pitch", "4", "-n", "3",
		"--vary", "radius=1,2", "--seeds", "1,2", "--workers", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "RANK")
	assert.Contains(t, out, "radius=2")
	assert.Equal(t, 4, strings.Count(out, "mold seed="), "one row per job")
	// top border, header, separator, four rows, bottom border
	assert.Equal(t, 8, strings.Count(out, "\n"))
	assert.Contains(t, out, "┌")

	_, err = execute(t, "sweep", "-p", "mold", "--vary", "radius")
	assert.Error(t, err)
}
