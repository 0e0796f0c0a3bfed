package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type visit struct{ i1, j1, i2, j2 int }

func collect(shape Shape, ci, cj, w, h, r int) []visit {
	var out []visit
	ForNeighborhood(shape, ci, cj, w, h, r, func(i1, j1, i2, j2 int) {
		out = append(out, visit{i1, j1, i2, j2})
	})
	return out
}

func TestNeighborCounts(t *testing.T) {
	for r := 0; r <= 4; r++ {
		sq := collect(Square, 10, 10, 21, 21, r)
		di := collect(Diamond, 10, 10, 21, 21, r)
		assert.Len(t, sq, NeighborCount(Square, r), "square r=%d", r)
		assert.Len(t, di, NeighborCount(Diamond, r), "diamond r=%d", r)
		if r >= 1 {
			assert.Equal(t, (2*r+1)*(2*r+1)-1, len(sq))
			assert.Equal(t, 2*r*(r+1), len(di))
			assert.Less(t, len(di), len(sq))
		}
	}
}

func TestDiamondRadiusOneIsOrthogonal(t *testing.T) {
	got := collect(Diamond, 5, 5, 10, 10, 1)
	assert.Equal(t, []visit{
		{-1, 0, 4, 5},
		{0, -1, 5, 4},
		{0, 1, 5, 6},
		{1, 0, 6, 5},
	}, got)
}

func TestWraparoundAtCorner(t *testing.T) {
	got := collect(Square, 0, 0, 10, 10, 1)
	require.Len(t, got, 8)
	assert.Equal(t, visit{-1, -1, 9, 9}, got[0])
	assert.Contains(t, got, visit{1, 1, 1, 1})
	assert.Contains(t, got, visit{-1, 1, 9, 1})
	assert.Contains(t, got, visit{1, -1, 1, 9})
	for _, v := range got {
		assert.False(t, v.i1 == 0 && v.j1 == 0, "center visited")
	}
}

func TestCoordinatesAlwaysInBounds(t *testing.T) {
	const w, h = 7, 5
	for _, shape := range []Shape{Square, Diamond} {
		for r := 1; r <= 6; r++ {
			for ci := 0; ci < w; ci++ {
				for cj := 0; cj < h; cj++ {
					ForNeighborhood(shape, ci, cj, w, h, r, func(i1, j1, i2, j2 int) {
						require.True(t, i2 >= 0 && i2 < w && j2 >= 0 && j2 < h,
							"%s r=%d center (%d,%d) offset (%d,%d) -> (%d,%d)", shape, r, ci, cj, i1, j1, i2, j2)
						require.Equal(t, mod(ci+i1, w), i2)
						require.Equal(t, mod(cj+j1, h), j2)
					})
				}
			}
		}
	}
}

func TestEnumerationOrder(t *testing.T) {
	got := collect(Square, 3, 3, 9, 9, 2)
	for k := 1; k < len(got); k++ {
		prev, cur := got[k-1], got[k]
		ordered := prev.i1 < cur.i1 || (prev.i1 == cur.i1 && prev.j1 < cur.j1)
		require.True(t, ordered, "visit %d out of order: %v then %v", k, prev, cur)
	}
	assert.Equal(t, collect(Square, 3, 3, 9, 9, 2), got, "enumeration is repeatable")
}

func TestRadiusZeroVisitsNothing(t *testing.T) {
	assert.Empty(t, collect(Square, 1, 1, 3, 3, 0))
	assert.Empty(t, collect(Diamond, 1, 1, 3, 3, 0))
}

func TestShapeString(t *testing.T) {
	assert.Equal(t, "square", Square.String())
	assert.Equal(t, "diamond", Diamond.String())
}
