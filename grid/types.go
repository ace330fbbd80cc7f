// Package grid holds the MAPFM grid: dimensions, walls, the ordered starts
// and goals, and the lazily-computed BFS heuristic tables every upper layer
// queries. A Grid is immutable after construction.
package grid

import (
	"errors"

	"github.com/nimblegrid/mapfm/core"
	"github.com/nimblegrid/mapfm/coord"
	"github.com/nimblegrid/mapfm/gridgraph"
)

// Sentinel errors for malformed problem input ("precondition
// violated").
var (
	// ErrEmptyGrid indicates a grid with no rows or no columns.
	ErrEmptyGrid = errors.New("grid: width and height must be positive")
	// ErrNonRectangular indicates rows of differing lengths in the wall matrix.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrAgentGoalCountMismatch indicates the number of starts and goals differ.
	ErrAgentGoalCountMismatch = errors.New("grid: number of starts must equal number of goals")
	// ErrColorMultisetMismatch indicates starts and goals are not color-multiset-equal.
	ErrColorMultisetMismatch = errors.New("grid: start and goal colors must match as multisets")
	// ErrOutOfBounds indicates a start or goal coordinate lies outside the grid.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
	// ErrCellIsWall indicates a start or goal cell is a wall.
	ErrCellIsWall = errors.New("grid: start or goal cell is a wall")
	// ErrUnreachableGoal indicates some agent cannot reach any goal of its color.
	ErrUnreachableGoal = errors.New("grid: an agent cannot reach any goal of its color")
)

// Start is one agent's initial position and color. The agent's id is its
// index in the Starts slice.
type Start struct {
	Coord coord.Coord
	Color int
}

// Goal is one goal cell and its color. The goal's id is its index in the
// Goals slice.
type Goal struct {
	Coord coord.Coord
	Color int
}

// Grid is the immutable MAPFM board: a gridgraph-backed wall predicate,
// the ordered starts and goals, and lazily-memoized BFS heuristic tables.
// The zero value is not usable; construct with New.
type Grid struct {
	gg     *gridgraph.GridGraph
	starts []Start
	goals  []Goal

	// cg is the gg.ToCoreGraph() conversion, built once on first heuristic
	// query and reused by every later BFS.
	cg *core.Graph

	// colorDist[color] is a w*h row-major distance table, computed by
	// multi-source BFS from every goal of that color ("heuristic"). New
	// fills it for every start color.
	colorDist map[int][]int

	// goalDist[goalIndex] is a w*h row-major distance table, computed by
	// single-source BFS from that goal ("exhaustive" mode). nil until
	// first requested for that goal.
	goalDist map[int][]int
}

// coreGraph returns (building and caching on first call) the gg.ToCoreGraph
// conversion used by every heuristic BFS.
func (g *Grid) coreGraph() *core.Graph {
	if g.cg == nil {
		g.cg = g.gg.ToCoreGraph()
	}
	return g.cg
}
