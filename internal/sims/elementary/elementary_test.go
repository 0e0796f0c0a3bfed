package elementary

import (
	"testing"

	"caengine/internal/core"

	"github.com/stretchr/testify/require"
)

func row(g *core.Grid, j int) []int {
	out := make([]int, g.W)
	for i := range out {
		out[i] = g.Get(i, j).Int(On)
	}
	return out
}

func TestRule90Scrolls(t *testing.T) {
	rule, err := New(Config{Rule: 90})
	require.NoError(t, err)
	g, err := core.NewGridSize(9, 4, 1, rule, 0)
	require.NoError(t, err)

	require.NoError(t, g.Step(rule.Update))
	require.Equal(t, []int{0, 0, 0, 1, 0, 1, 0, 0, 0}, row(g, 0))
	require.Equal(t, []int{0, 0, 0, 0, 1, 0, 0, 0, 0}, row(g, 1), "previous row 0 scrolls down")

	require.NoError(t, g.Step(rule.Update))
	require.Equal(t, []int{0, 0, 1, 0, 0, 0, 1, 0, 0}, row(g, 0))
	require.Equal(t, []int{0, 0, 0, 1, 0, 1, 0, 0, 0}, row(g, 1))
	require.Equal(t, []int{0, 0, 0, 0, 1, 0, 0, 0, 0}, row(g, 2))
}

func TestRowWrapsAround(t *testing.T) {
	rule, err := New(Config{Rule: 90})
	require.NoError(t, err)
	g, err := core.NewGridSize(4, 2, 1, rule, 0)
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		g.SetImmediate(i, 0, core.Cell{On: 0})
		g.SetImmediate(i, 1, core.Cell{On: 0})
	}
	g.SetImmediate(0, 0, core.Cell{On: 1})

	require.NoError(t, g.Step(rule.Update))
	require.Equal(t, []int{0, 1, 0, 1}, row(g, 0))
}

func TestFromMapRejectsOverflow(t *testing.T) {
	c, err := FromMap(map[string]string{"rule": "30"})
	require.NoError(t, err)
	require.Equal(t, uint8(30), c.Rule)

	_, err = FromMap(map[string]string{"rule": "300"})
	require.Error(t, err)
}
