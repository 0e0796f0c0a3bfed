package ui

import (
	"image"
	"testing"

	"caengine/internal/core"

	"github.com/stretchr/testify/assert"
)

func TestNeighborhoodCellsWrap(t *testing.T) {
	got := neighborhoodCells(core.Diamond, 1, 0, 0, 5, 4)
	assert.Equal(t, []image.Point{{4, 0}, {0, 3}, {0, 1}, {1, 0}}, got)
	assert.Len(t, neighborhoodCells(core.Square, 2, 2, 2, 5, 5), 24)
}

func TestCellAt(t *testing.T) {
	i, j, ok := cellAt(45, 19, 20, 3, 3)
	assert.True(t, ok)
	assert.Equal(t, 2, i)
	assert.Equal(t, 0, j)

	_, _, ok = cellAt(60, 0, 20, 3, 3)
	assert.False(t, ok)
	_, _, ok = cellAt(-1, 0, 20, 3, 3)
	assert.False(t, ok)
}
