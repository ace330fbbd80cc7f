package mapfm

import (
	"context"

	"github.com/nimblegrid/mapfm/agentpath"
	"github.com/nimblegrid/mapfm/cat"
	"github.com/nimblegrid/mapfm/coord"
	"github.com/nimblegrid/mapfm/grid"
	"github.com/nimblegrid/mapfm/group"
	"github.com/nimblegrid/mapfm/idsolve"
	"github.com/nimblegrid/mapfm/matching"
)

// Solve builds the grid from p, then dispatches to the color or exhaustive
// heuristic mode, returning one padded coordinate sequence per agent in
// problem.Starts order.
func Solve(ctx context.Context, p Problem, opts Options) (Solution, error) {
	g, err := grid.New(p.Walls, toGridStarts(p.Starts), toGridGoals(p.Goals))
	if err != nil {
		return nil, err
	}

	starts := make(map[int]coord.Coord, len(p.Starts))
	colors := make(map[int]int, len(p.Starts))
	ids := make([]int, len(p.Starts))
	for i, s := range p.Starts {
		starts[i] = s.Coord
		colors[i] = s.Color
		ids[i] = i
	}

	var paths map[int]agentpath.AgentPath
	switch opts.HeuristicMode {
	case ExhaustiveMode:
		paths, err = solveExhaustive(ctx, g, ids, starts, colors, opts)
	default:
		paths, err = solveColor(ctx, g, starts, colors, opts)
	}
	if err != nil {
		return nil, err
	}

	return pad(paths, ids), nil
}

func solveColor(ctx context.Context, g *grid.Grid, starts map[int]coord.Coord, colors map[int]int, opts Options) (map[int]agentpath.AgentPath, error) {
	solver := &idsolve.Solver{
		Grid:                   g,
		Starts:                 starts,
		Colors:                 colors,
		MaxCost:                boundOrUnbounded(opts.MaxCost),
		UseAssignmentHeuristic: opts.UseAssignmentHeuristic,
		Logger:                 opts.Logger,
		Ctx:                    ctx,
	}
	if opts.EnableCAT {
		solver.CAT = cat.New(g.Width(), g.Height(), true)
	}
	paths, err := solver.Solve()
	if err != nil {
		return nil, ErrNoSolution
	}
	return paths, nil
}

// solveExhaustive tries every color-consistent matching in ascending
// heuristic order, keeping the cheapest solution and shrinking the bound
// as better solutions are found; with EnableSorting it stops once a
// remaining candidate's heuristic can no longer beat the current best.
func solveExhaustive(ctx context.Context, g *grid.Grid, ids []int, starts map[int]coord.Coord, colors map[int]int, opts Options) (map[int]agentpath.AgentPath, error) {
	// Enumerator heuristics add one unit per agent to the distance sum, so
	// the cost bound and the early-stop test are shifted by len(ids).
	bound := opts.MaxCost
	if bound >= 0 {
		bound += len(ids)
	}
	enum, err := matching.NewEnumerator(g, ids, colors, starts, bound, opts.Logger)
	if err != nil {
		return nil, ErrNoSolution
	}

	var best map[int]agentpath.AgentPath
	bestCost := -1

	for i := 0; i < enum.Len(); i++ {
		assignment, heuristic := enum.At(i)
		// The enumerator always yields ascending-heuristic order; EnableSorting
		// only gates whether that order is exploited to prune the remaining
		// candidates once none of them can beat the current best.
		if opts.EnableSorting && bestCost >= 0 && heuristic-len(ids) >= bestCost {
			break
		}

		candidateBound := boundOrUnbounded(opts.MaxCost)
		if bestCost >= 0 && (candidateBound < 0 || bestCost-1 < candidateBound) {
			candidateBound = bestCost - 1
		}

		solver := &idsolve.Solver{
			Grid:          g,
			Starts:        starts,
			Colors:        colors,
			AssignedGoals: assignment,
			MaxCost:       candidateBound,
			Logger:        opts.Logger,
			Ctx:           ctx,
		}
		if opts.EnableMatchingID {
			solver.InitialGroups = initialGroupsByColor(ids, colors)
		}
		if opts.EnableCAT {
			solver.CAT = cat.New(g.Width(), g.Height(), true)
		}

		paths, err := solver.Solve()
		if err != nil {
			continue
		}
		total := totalCost(paths)
		if bestCost < 0 || total < bestCost {
			best = paths
			bestCost = total
		}
	}

	if best == nil {
		return nil, ErrNoSolution
	}
	return best, nil
}

// initialGroupsByColor seeds the ID loop by color class: every agent
// sharing a color starts in one joint group instead of a singleton, since
// same-colored agents racing for the same matching are the pairs most
// likely to conflict immediately ("matching-ID").
// Singleton color classes are left as-is — merging a lone agent with
// nothing buys no avoided round trip.
func initialGroupsByColor(ids []int, colors map[int]int) []group.Group {
	byColor := make(map[int][]int)
	for _, id := range ids {
		c := colors[id]
		byColor[c] = append(byColor[c], id)
	}
	groups := make([]group.Group, 0, len(byColor))
	for _, members := range byColor {
		groups = append(groups, group.New(members))
	}
	return groups
}

func totalCost(paths map[int]agentpath.AgentPath) int {
	total := 0
	for _, p := range paths {
		total += p.Cost()
	}
	return total
}

func boundOrUnbounded(maxCost int) int {
	if maxCost < 0 {
		return -1
	}
	return maxCost
}

// pad returns, per agent id in order, its coordinate sequence repeated at
// the end up to the longest path's length.
func pad(paths map[int]agentpath.AgentPath, ids []int) Solution {
	maxLen := 0
	for _, id := range ids {
		if l := paths[id].Len(); l > maxLen {
			maxLen = l
		}
	}
	out := make(Solution, len(ids))
	for i, id := range ids {
		p := paths[id]
		seq := make([]coord.Coord, maxLen)
		for t := 0; t < maxLen; t++ {
			seq[t] = p.At(t)
		}
		out[i] = seq
	}
	return out
}

func toGridStarts(starts []Start) []grid.Start {
	out := make([]grid.Start, len(starts))
	for i, s := range starts {
		out[i] = grid.Start{Coord: s.Coord, Color: s.Color}
	}
	return out
}

func toGridGoals(goals []Goal) []grid.Goal {
	out := make([]grid.Goal, len(goals))
	for i, gl := range goals {
		out[i] = grid.Goal{Coord: gl.Coord, Color: gl.Color}
	}
	return out
}
