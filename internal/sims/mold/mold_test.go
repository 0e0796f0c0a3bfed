package mold

import (
	"testing"

	"caengine/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func offsets(levels ...[3]int) func(yield func(i1, j1, nlvl int)) {
	return func(yield func(i1, j1, nlvl int)) {
		for _, l := range levels {
			yield(l[0], l[1], l[2])
		}
	}
}

func TestUpgradeChanceBaseline(t *testing.T) {
	c := DefaultConfig()
	assert.InDelta(t, c.BaseChance, c.UpgradeChance(0, offsets()), 1e-15)
	// Equal-level zero neighbors never contribute.
	assert.InDelta(t, c.BaseChance, c.UpgradeChance(0, offsets([3]int{1, 0, 0}, [3]int{0, 1, 0})), 1e-15)
}

func TestUpgradeChanceGrowsWithGap(t *testing.T) {
	c := DefaultConfig()
	near := c.UpgradeChance(0, offsets([3]int{1, 0, 1}))
	far := c.UpgradeChance(0, offsets([3]int{1, 0, 5}))
	assert.Greater(t, near, c.BaseChance)
	assert.Greater(t, far, near)

	// Distance-two neighbors only count once the gap exceeds two.
	assert.InDelta(t, c.BaseChance, c.UpgradeChance(0, offsets([3]int{2, 0, 2})), 1e-15)
	assert.Greater(t, c.UpgradeChance(0, offsets([3]int{2, 0, 3})), c.BaseChance)

	// Distance-three neighbors need a gap above four.
	assert.InDelta(t, c.BaseChance, c.UpgradeChance(0, offsets([3]int{3, 0, 4})), 1e-15)
	assert.Greater(t, c.UpgradeChance(0, offsets([3]int{3, 0, 5})), c.BaseChance)
}

func TestUpgradeChanceStaysProbability(t *testing.T) {
	c := Config{BaseChance: 0.5, NeighborChance: 0.9, Radius: 3}
	var lv [][3]int
	for n := 0; n < 24; n++ {
		lv = append(lv, [3]int{1, 0, 40})
	}
	p := c.UpgradeChance(0, offsets(lv...))
	assert.LessOrEqual(t, p, 1.0)
	assert.Greater(t, p, 0.99)
}

func TestCertainSpreadAroundSeed(t *testing.T) {
	rule, err := New(Config{BaseChance: 0, NeighborChance: 1, Radius: 3})
	require.NoError(t, err)
	g, err := core.NewGridSize(9, 9, 1, rule, 3)
	require.NoError(t, err)
	g.SetImmediate(4, 4, core.Cell{Level: 1})

	require.NoError(t, g.Step(rule.Update))

	for j := 0; j < 9; j++ {
		for i := 0; i < 9; i++ {
			want := 0
			if abs(i-4) <= 1 && abs(j-4) <= 1 {
				want = 1
			}
			assert.Equal(t, want, g.Get(i, j).Int(Level), "cell (%d,%d)", i, j)
		}
	}
}

func TestLevelsNeverDecrease(t *testing.T) {
	rule, err := New(Config{BaseChance: 0.01, NeighborChance: 0.05, Radius: 3})
	require.NoError(t, err)
	g, err := core.NewGridSize(16, 16, 1, rule, 11)
	require.NoError(t, err)

	prev := make([]int, 16*16)
	for step := 0; step < 30; step++ {
		require.NoError(t, g.Step(rule.Update))
		g.Cells(func(i, j int, c core.Cell) {
			lvl := c.Int(Level)
			idx := g.Index(i, j)
			require.GreaterOrEqual(t, lvl, prev[idx])
			require.LessOrEqual(t, lvl, prev[idx]+1, "at most one level per step")
			prev[idx] = lvl
		})
	}
	total := 0
	for _, v := range prev {
		total += v
	}
	assert.Greater(t, total, 0, "growth should have happened with a 1%% base chance")
}

func TestColor(t *testing.T) {
	assert.Equal(t, core.Gray(0), Color(core.Cell{Level: 0}))
	assert.Equal(t, core.Gray(45), Color(core.Cell{Level: 1}))
	assert.Equal(t, core.Gray(255), Color(core.Cell{Level: 100}))
}

func TestRadiusClampedToScoredBands(t *testing.T) {
	c, err := FromMap(map[string]string{"radius": "6"})
	require.NoError(t, err)
	assert.Equal(t, MaxRadius, c.Radius)

	c, err = FromMap(map[string]string{"radius": "0"})
	require.NoError(t, err)
	assert.Equal(t, 1, c.Radius)

	rule, err := New(Config{Radius: 9})
	require.NoError(t, err)
	assert.Equal(t, "3", rule.Parameters().Values()["radius"])
	for _, ctrl := range rule.Controls() {
		if ctrl.Key == "radius" {
			assert.Equal(t, float64(MaxRadius), ctrl.Max)
		}
	}
}
