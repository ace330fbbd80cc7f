package matching_test

import (
	"testing"

	"github.com/nimblegrid/mapfm/coord"
	"github.com/nimblegrid/mapfm/grid"
	"github.com/nimblegrid/mapfm/matching"
	"github.com/stretchr/testify/require"
)

func openGrid(w, h int) [][]bool {
	rows := make([][]bool, h)
	for y := range rows {
		rows[y] = make([]bool, w)
	}
	return rows
}

// S3: two same-color agents and two same-color goals on an open grid
// admit two matchings; the straight (non-crossing) one must sort first.
func TestEnumeratorOrdersStraightMatchingFirst(t *testing.T) {
	g, err := grid.New(
		openGrid(3, 3),
		[]grid.Start{{Coord: coord.New(0, 0), Color: 0}, {Coord: coord.New(0, 2), Color: 0}},
		[]grid.Goal{{Coord: coord.New(2, 0), Color: 0}, {Coord: coord.New(2, 2), Color: 0}},
	)
	require.NoError(t, err)

	starts := map[int]coord.Coord{0: coord.New(0, 0), 1: coord.New(0, 2)}
	colors := map[int]int{0: 0, 1: 0}

	e, err := matching.NewEnumerator(g, []int{0, 1}, colors, starts, -1, nil)
	require.NoError(t, err)
	require.Equal(t, 2, e.Len())

	best, heuristic := e.At(0)
	require.Equal(t, 0, best[0]) // agent 0 -> goal 0 at (2,0): straight across
	require.Equal(t, 1, best[1]) // agent 1 -> goal 1 at (2,2): straight across
	require.Equal(t, 2+2+2, heuristic)
}

// A bound tight enough to exclude every candidate, even the cheapest one,
// must surface as ErrNoMatching rather than an empty-but-successful result.
func TestEnumeratorRejectsWhenBoundExcludesEverything(t *testing.T) {
	g, err := grid.New(
		openGrid(2, 1),
		[]grid.Start{{Coord: coord.New(0, 0), Color: 0}},
		[]grid.Goal{{Coord: coord.New(1, 0), Color: 0}},
	)
	require.NoError(t, err)

	starts := map[int]coord.Coord{0: coord.New(0, 0)}
	colors := map[int]int{0: 0}

	_, err = matching.NewEnumerator(g, []int{0}, colors, starts, 1, nil)
	require.ErrorIs(t, err, matching.ErrNoMatching)
}
