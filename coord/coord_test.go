package coord_test

import (
	"testing"

	"github.com/nimblegrid/mapfm/coord"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMove(t *testing.T) {
	c := coord.New(2, 3)
	require.Equal(t, coord.New(2, 4), c.Move(0, 1))
	require.Equal(t, coord.New(1, 3), c.Move(-1, 0))
}

func TestPackIsInjective(t *testing.T) {
	seen := make(map[int64]coord.Coord)
	for x := 0; x < 50; x++ {
		for y := 0; y < 50; y++ {
			c := coord.New(x, y)
			p := c.Pack()
			if prior, ok := seen[p]; ok {
				t.Fatalf("collision between %v and %v", prior, c)
			}
			seen[p] = c
		}
	}
}

func TestString(t *testing.T) {
	assert.Equal(t, "(2,3)", coord.New(2, 3).String())
}

func TestCardinalOrderIsStable(t *testing.T) {
	want := [4][2]int{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}
	assert.Equal(t, want, coord.Cardinal)
}
