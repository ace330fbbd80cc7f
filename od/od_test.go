package od_test

import (
	"testing"

	"github.com/nimblegrid/mapfm/agentpath"
	"github.com/nimblegrid/mapfm/coord"
	"github.com/nimblegrid/mapfm/grid"
	"github.com/nimblegrid/mapfm/od"
	"github.com/stretchr/testify/require"
)

func openGrid(w, h int) [][]bool {
	rows := make([][]bool, h)
	for y := range rows {
		rows[y] = make([]bool, w)
	}
	return rows
}

// S1: a single agent alone on a 3x3 open grid, (0,0) to (2,2), must cost
// exactly 4 (Manhattan distance, no obstacles to detour around).
func TestSolveSingleAgentOpenGrid(t *testing.T) {
	g, err := grid.New(openGrid(3, 3), []grid.Start{{Coord: coord.New(0, 0), Color: 0}}, []grid.Goal{{Coord: coord.New(2, 2), Color: 0}})
	require.NoError(t, err)

	p, err := od.NewProblem(g, []int{0}, []int{0}, nil, nil, nil)
	require.NoError(t, err)

	paths, cost, err := od.Solve(p, []coord.Coord{coord.New(0, 0)}, od.Options{MaxCost: -1})
	require.NoError(t, err)
	require.Equal(t, 4, cost)
	require.Len(t, paths, 1)
	require.Equal(t, 4, paths[0].Cost())
	require.Equal(t, coord.New(2, 2), paths[0].At(paths[0].Len()-1))
}

// S6: two agents head on through a corridor with a single side pocket must
// have one of them step aside and wait rather than collide or swap.
func TestSolveHeadOnRequiresDetour(t *testing.T) {
	// row0: (0,0) (1,0) (2,0) is the only through corridor.
	// row1: only (1,1) is open, a dead-end pocket reachable from (1,0).
	walls := openGrid(3, 2)
	walls[1][0] = true
	walls[1][2] = true

	g, err := grid.New(
		walls,
		[]grid.Start{{Coord: coord.New(0, 0), Color: 0}, {Coord: coord.New(2, 0), Color: 1}},
		[]grid.Goal{{Coord: coord.New(2, 0), Color: 0}, {Coord: coord.New(0, 0), Color: 1}},
	)
	require.NoError(t, err)

	p, err := od.NewProblem(g, []int{0, 1}, []int{0, 1}, nil, nil, nil)
	require.NoError(t, err)

	paths, _, err := od.Solve(p, []coord.Coord{coord.New(0, 0), coord.New(2, 0)}, od.Options{MaxCost: -1})
	require.NoError(t, err)
	require.Len(t, paths, 2)

	last := paths[0].Len()
	if paths[1].Len() > last {
		last = paths[1].Len()
	}
	for tm := 0; tm < last; tm++ {
		a, b := paths[0].At(tm), paths[1].At(tm)
		require.NotEqual(t, a, b, "vertex conflict at time %d", tm)
		if tm > 0 {
			aPrev, bPrev := paths[0].At(tm-1), paths[1].At(tm-1)
			require.False(t, a == bPrev && aPrev == b, "swap conflict at time %d", tm)
		}
	}
	require.Equal(t, coord.New(2, 0), paths[0].At(paths[0].Len()-1))
	require.Equal(t, coord.New(0, 0), paths[1].At(paths[1].Len()-1))
}

// S2: a 1-wide corridor with no side cells cannot let two agents cross to
// swap places no matter how they're sequenced; pinning each agent to the
// far goal (exhaustive mode) makes the swap mandatory, and the solver must
// report no solution rather than loop or return a conflicting path.
func TestSolveCorridorSwapHasNoSolution(t *testing.T) {
	g, err := grid.New(
		openGrid(3, 1),
		[]grid.Start{{Coord: coord.New(0, 0), Color: 0}, {Coord: coord.New(2, 0), Color: 0}},
		[]grid.Goal{{Coord: coord.New(2, 0), Color: 0}, {Coord: coord.New(0, 0), Color: 0}},
	)
	require.NoError(t, err)

	p, err := od.NewProblem(g, []int{0, 1}, []int{0, 0}, map[int]int{0: 0, 1: 1}, nil, nil)
	require.NoError(t, err)

	_, _, err = od.Solve(p, []coord.Coord{coord.New(0, 0), coord.New(2, 0)}, od.Options{MaxCost: 50})
	require.ErrorIs(t, err, od.ErrNoSolution)
}

// IsFinal must require the assigned goal, not merely any same-color goal,
// when the problem was constructed in exhaustive mode.
func TestIsFinalRespectsAssignedGoal(t *testing.T) {
	g, err := grid.New(
		openGrid(3, 1),
		[]grid.Start{{Coord: coord.New(0, 0), Color: 0}, {Coord: coord.New(2, 0), Color: 0}},
		[]grid.Goal{{Coord: coord.New(1, 0), Color: 0}, {Coord: coord.New(2, 0), Color: 0}},
	)
	require.NoError(t, err)

	p, err := od.NewProblem(g, []int{0}, []int{0}, map[int]int{0: 1}, nil, nil)
	require.NoError(t, err)

	paths, cost, err := od.Solve(p, []coord.Coord{coord.New(0, 0)}, od.Options{MaxCost: -1})
	require.NoError(t, err)
	require.Equal(t, 2, cost)
	require.Equal(t, coord.New(2, 0), paths[0].At(paths[0].Len()-1))
}

// A group must treat another group's committed path as an unmovable
// obstacle: the solved path must never occupy a cell the fixed path holds
// at the same time, nor swap through it.
func TestExpandRespectsIllegalPaths(t *testing.T) {
	g, err := grid.New(
		openGrid(3, 2),
		[]grid.Start{{Coord: coord.New(0, 0), Color: 0}},
		[]grid.Goal{{Coord: coord.New(2, 0), Color: 0}},
	)
	require.NoError(t, err)

	// Occupies (1,0) for two steps, then permanently settles on (1,1) —
	// directly in the middle of the only short route to the goal.
	blocking := agentpath.New(1, 1, []coord.Coord{coord.New(1, 0), coord.New(1, 0), coord.New(1, 1)})

	p, err := od.NewProblem(g, []int{0}, []int{0}, nil, []agentpath.AgentPath{blocking}, nil)
	require.NoError(t, err)

	paths, _, err := od.Solve(p, []coord.Coord{coord.New(0, 0)}, od.Options{MaxCost: 10})
	require.NoError(t, err)
	require.Equal(t, coord.New(2, 0), paths[0].At(paths[0].Len()-1))

	last := paths[0].Len()
	if blocking.Len() > last {
		last = blocking.Len()
	}
	for tm := 0; tm < last; tm++ {
		require.NotEqual(t, blocking.At(tm), paths[0].At(tm), "vertex conflict with illegal path at time %d", tm)
		if tm > 0 {
			require.False(t, paths[0].At(tm) == blocking.At(tm-1) && paths[0].At(tm-1) == blocking.At(tm), "swap conflict with illegal path at time %d", tm)
		}
	}
}
