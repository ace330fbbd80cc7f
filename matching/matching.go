package matching

import (
	"sort"

	"github.com/nimblegrid/mapfm/coord"
	"github.com/nimblegrid/mapfm/grid"
	"github.com/nimblegrid/mapfm/mapflog"
)

// Assignment maps an agent id to the goal index it is pinned to under one
// candidate matching.
type Assignment map[int]int

// candidate is one agent's sorted list of same-color goal indices with
// their BFS distance, ascending by distance.
type candidate struct {
	goals []int
	dists []int
}

// Enumerator produces candidate matchings for a fixed set of agents in
// non-decreasing order of heuristic lower bound, via an
// eagerly-computed, pruned, sorted list rather than an incrementally
// refilled heap (see DESIGN.md: functionally equivalent at the group
// sizes this solver targets).
type Enumerator struct {
	agentIDs []int
	sorted   []scoredAssignment
}

type scoredAssignment struct {
	assignment Assignment
	heuristic  int
}

// NewEnumerator builds every injective, color-consistent assignment of
// goal to agent for agentIDs, ordered by ascending heuristic (sum of
// per-agent distances to its assigned goal, plus the group size). bound
// discards any assignment whose heuristic already exceeds it; pass a
// negative bound for no pruning.
func NewEnumerator(g *grid.Grid, agentIDs []int, colors map[int]int, starts map[int]coord.Coord, bound int, logger mapflog.Logger) (*Enumerator, error) {
	candidates := make(map[int]candidate, len(agentIDs))
	for _, id := range agentIDs {
		color := colors[id]
		pos := starts[id]
		var goals, dists []int
		for idx, goal := range g.Goals() {
			if goal.Color != color {
				continue
			}
			d, ok := g.HeuristicToGoal(pos, idx)
			if !ok {
				continue
			}
			goals = append(goals, idx)
			dists = append(dists, d)
		}
		if len(goals) == 0 {
			return nil, ErrNoMatching
		}
		order := make([]int, len(goals))
		for i := range order {
			order[i] = i
		}
		sort.Slice(order, func(a, b int) bool { return dists[order[a]] < dists[order[b]] })
		sortedGoals := make([]int, len(goals))
		sortedDists := make([]int, len(goals))
		for i, o := range order {
			sortedGoals[i] = goals[o]
			sortedDists[i] = dists[o]
		}
		candidates[id] = candidate{goals: sortedGoals, dists: sortedDists}
	}

	e := &Enumerator{agentIDs: append([]int(nil), agentIDs...)}
	used := make(map[int]bool)
	partial := make(Assignment, len(agentIDs))
	e.backtrack(candidates, used, partial, 0, 0, bound)
	if len(e.sorted) == 0 {
		return nil, ErrNoMatching
	}
	sort.SliceStable(e.sorted, func(i, j int) bool { return e.sorted[i].heuristic < e.sorted[j].heuristic })
	mapflog.Log(logger, "matching.enumerate", "built candidate matchings", "count", len(e.sorted), "agents", len(agentIDs))
	return e, nil
}

func (e *Enumerator) backtrack(candidates map[int]candidate, used map[int]bool, partial Assignment, i, partialCost, bound int) {
	if i == len(e.agentIDs) {
		full := make(Assignment, len(partial))
		for k, v := range partial {
			full[k] = v
		}
		e.sorted = append(e.sorted, scoredAssignment{assignment: full, heuristic: partialCost + len(e.agentIDs)})
		return
	}
	id := e.agentIDs[i]
	c := candidates[id]
	for k, goalIdx := range c.goals {
		if used[goalIdx] {
			continue
		}
		cost := partialCost + c.dists[k]
		if bound >= 0 && cost+len(e.agentIDs) > bound {
			continue
		}
		used[goalIdx] = true
		partial[id] = goalIdx
		e.backtrack(candidates, used, partial, i+1, cost, bound)
		delete(partial, id)
		used[goalIdx] = false
	}
}

// Len returns the number of candidate matchings found.
func (e *Enumerator) Len() int { return len(e.sorted) }

// At returns the i-th matching in ascending heuristic order, and its
// heuristic value.
func (e *Enumerator) At(i int) (Assignment, int) {
	s := e.sorted[i]
	return s.assignment, s.heuristic
}
