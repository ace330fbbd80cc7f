package agent_test

import (
	"testing"

	"github.com/nimblegrid/mapfm/agent"
	"github.com/nimblegrid/mapfm/coord"
	"github.com/stretchr/testify/assert"
)

func TestMovePreservesIdentity(t *testing.T) {
	a := agent.New(3, coord.New(1, 1), 2)
	moved := a.Move(1, 0)

	assert.Equal(t, 3, moved.ID)
	assert.Equal(t, 2, moved.Color)
	assert.Equal(t, coord.New(2, 1), moved.Coord)
	// original is untouched
	assert.Equal(t, coord.New(1, 1), a.Coord)
}

func TestAgentEquality(t *testing.T) {
	a := agent.New(1, coord.New(0, 0), 0)
	b := agent.New(1, coord.New(0, 0), 0)
	assert.Equal(t, a, b)
}
