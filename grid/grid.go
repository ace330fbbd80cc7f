package grid

import (
	"github.com/nimblegrid/mapfm/coord"
	"github.com/nimblegrid/mapfm/gridgraph"
)

// New validates and constructs a Grid from wall/start/goal input.
//
// Validation order, each fatal ("precondition violated"):
//  1. walls must be non-empty and rectangular.
//  2. len(starts) must equal len(goals).
//  3. starts and goals must be color-multiset-equal.
//  4. every start and goal coordinate must be in bounds and not a wall.
//  5. every agent must be able to reach at least one goal of its color
//     (checked via the per-color BFS table, computed eagerly here since
//     the check requires it).
func New(walls [][]bool, starts []Start, goals []Goal) (*Grid, error) {
	gg, err := gridgraph.New(walls)
	if err != nil {
		switch err {
		case gridgraph.ErrEmptyGrid:
			return nil, ErrEmptyGrid
		case gridgraph.ErrNonRectangular:
			return nil, ErrNonRectangular
		default:
			return nil, err
		}
	}
	if len(starts) != len(goals) {
		return nil, ErrAgentGoalCountMismatch
	}

	startColors := make(map[int]int)
	for _, s := range starts {
		startColors[s.Color]++
	}
	goalColors := make(map[int]int)
	for _, gl := range goals {
		goalColors[gl.Color]++
	}
	if len(startColors) != len(goalColors) {
		return nil, ErrColorMultisetMismatch
	}
	for c, n := range startColors {
		if goalColors[c] != n {
			return nil, ErrColorMultisetMismatch
		}
	}

	g := &Grid{
		gg:        gg,
		starts:    append([]Start(nil), starts...),
		goals:     append([]Goal(nil), goals...),
		colorDist: make(map[int][]int),
		goalDist:  make(map[int][]int),
	}

	for _, s := range starts {
		if !g.InBounds(s.Coord) {
			return nil, ErrOutOfBounds
		}
		if g.IsWall(s.Coord) {
			return nil, ErrCellIsWall
		}
	}
	for _, gl := range goals {
		if !g.InBounds(gl.Coord) {
			return nil, ErrOutOfBounds
		}
		if g.IsWall(gl.Coord) {
			return nil, ErrCellIsWall
		}
	}

	for color := range startColors {
		g.colorHeuristic(color)
	}
	for _, s := range starts {
		if _, reachable := g.HeuristicToColor(s.Coord, s.Color); !reachable {
			return nil, ErrUnreachableGoal
		}
	}

	return g, nil
}

// Width returns the grid's width in cells.
func (g *Grid) Width() int { return g.gg.Width }

// Height returns the grid's height in cells.
func (g *Grid) Height() int { return g.gg.Height }

// Starts returns the ordered starts; index is the agent id.
func (g *Grid) Starts() []Start { return g.starts }

// Goals returns the ordered goals; index is the goal id.
func (g *Grid) Goals() []Goal { return g.goals }

// InBounds reports whether c lies within the grid's width and height.
func (g *Grid) InBounds(c coord.Coord) bool {
	return g.gg.InBounds(c.X, c.Y)
}

// IsWall reports whether c is a blocked cell. c must be in bounds.
func (g *Grid) IsWall(c coord.Coord) bool {
	return g.gg.IsWall(c.X, c.Y)
}

// IsWalkable reports whether c is in bounds and not a wall.
func (g *Grid) IsWalkable(c coord.Coord) bool {
	return g.gg.Walkable(c.X, c.Y)
}

// Neighbors returns the walkable 4-connected neighbors of c, in the fixed
// order of coord.Cardinal.
func (g *Grid) Neighbors(c coord.Coord) []coord.Coord {
	res := make([]coord.Coord, 0, 4)
	for _, d := range coord.Cardinal {
		n := c.Move(d[0], d[1])
		if g.IsWalkable(n) {
			res = append(res, n)
		}
	}
	return res
}

// IsGoalOfColor reports whether c is a goal cell whose color matches color
// ("on_goal").
func (g *Grid) IsGoalOfColor(c coord.Coord, color int) bool {
	for _, gl := range g.goals {
		if gl.Color == color && gl.Coord == c {
			return true
		}
	}
	return false
}

// IsFinalForColor reports whether every position in positions sits on a
// goal of its own color — the heuristic-mode final-state predicate.
func (g *Grid) IsFinalForColor(positions []coord.Coord, colors []int) bool {
	for i, p := range positions {
		if !g.IsGoalOfColor(p, colors[i]) {
			return false
		}
	}
	return true
}

func (g *Grid) index(c coord.Coord) int {
	return g.gg.Index(c.X, c.Y)
}

func (g *Grid) vertexID(c coord.Coord) string {
	return g.gg.VertexID(c.X, c.Y)
}
