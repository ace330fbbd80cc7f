package agentpath_test

import (
	"testing"

	"github.com/nimblegrid/mapfm/agentpath"
	"github.com/nimblegrid/mapfm/coord"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func path(coords ...coord.Coord) agentpath.AgentPath {
	return agentpath.New(0, 0, coords)
}

func TestCostStraightLine(t *testing.T) {
	p := path(coord.New(0, 0), coord.New(1, 0), coord.New(2, 0), coord.New(2, 1), coord.New(2, 2))
	assert.Equal(t, 4, p.Cost())
}

func TestCostStationaryIsZero(t *testing.T) {
	p := path(coord.New(1, 1))
	assert.Equal(t, 0, p.Cost())

	longStill := path(coord.New(1, 1), coord.New(1, 1), coord.New(1, 1))
	assert.Equal(t, 0, longStill.Cost())
}

func TestCostCreditsTrailingRestOnly(t *testing.T) {
	// moves once, then rests on the goal cell: cost should be 1, not 3.
	p := path(coord.New(0, 0), coord.New(1, 0), coord.New(1, 0))
	assert.Equal(t, 1, p.Cost())
}

func TestConflictsCommutative(t *testing.T) {
	a := path(coord.New(0, 0), coord.New(1, 0), coord.New(2, 0))
	b := path(coord.New(2, 0), coord.New(1, 0), coord.New(0, 0))
	require.True(t, a.Conflicts(b))
	require.True(t, b.Conflicts(a))
}

func TestNoConflictParallelPaths(t *testing.T) {
	a := path(coord.New(0, 0), coord.New(1, 0), coord.New(2, 0))
	b := path(coord.New(0, 1), coord.New(1, 1), coord.New(2, 1))
	assert.False(t, a.Conflicts(b))
}

func TestConflictVertexAtLaterTime(t *testing.T) {
	a := path(coord.New(0, 0), coord.New(0, 1), coord.New(0, 2))
	b := path(coord.New(1, 2), coord.New(1, 1), coord.New(0, 2))
	assert.True(t, a.Conflicts(b))
}

func TestConflictPaddedShorterPath(t *testing.T) {
	// a is short and rests at (2,0); b arrives at (2,0) later and should conflict.
	a := path(coord.New(0, 0), coord.New(1, 0), coord.New(2, 0))
	b := path(coord.New(2, 1), coord.New(2, 1), coord.New(2, 1), coord.New(2, 0))
	assert.True(t, a.Conflicts(b))
}

func TestConflictsInvariantUnderPadding(t *testing.T) {
	a := path(coord.New(0, 0), coord.New(1, 0))
	b := path(coord.New(2, 0), coord.New(1, 0), coord.New(0, 0))
	padded := path(coord.New(0, 0), coord.New(1, 0), coord.New(1, 0))
	assert.Equal(t, a.Conflicts(b), padded.Conflicts(b))
}

func TestAt(t *testing.T) {
	p := path(coord.New(0, 0), coord.New(1, 0))
	assert.Equal(t, coord.New(0, 0), p.At(0))
	assert.Equal(t, coord.New(1, 0), p.At(1))
	assert.Equal(t, coord.New(1, 0), p.At(5))
}
