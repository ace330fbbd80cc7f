package od

import (
	"github.com/nimblegrid/mapfm/agentpath"
	"github.com/nimblegrid/mapfm/assignment"
	"github.com/nimblegrid/mapfm/cat"
	"github.com/nimblegrid/mapfm/coord"
	"github.com/nimblegrid/mapfm/grid"
)

// Problem binds a single group's agents to a Grid, an optional explicit
// goal assignment, the set of other groups' paths the group must treat as
// fixed obstacles ("illegal" agents in the original design), and the
// collision-avoidance tables used only to break ties between
// equal-cost solutions.
//
// Illegal agents are never materialized as members of a State; their
// positions are looked up on demand against IllegalPaths while expanding
// a state, which keeps their cost fully decoupled from the group's own
// running cost.
type Problem struct {
	Grid *grid.Grid

	AgentIDs []int
	Colors   []int

	// AssignedGoals maps an agent id to a specific goal index, selecting
	// "exhaustive" mode. Nil selects "heuristic" (any same-color goal) mode.
	AssignedGoals map[int]int

	IllegalPaths []agentpath.AgentPath

	CATs []*cat.CAT

	// UseAssignmentHeuristic opts into the tighter colored min-cost
	// assignment heuristic in place of the default
	// per-agent nearest-goal-of-color sum, whenever this group's agents of
	// a color exactly cover every goal of that color (the only case where
	// a per-group bipartite matching is still admissible against the whole
	// grid's goal set).
	UseAssignmentHeuristic bool

	ignore map[int]bool
}

// NewProblem validates and constructs a group's OD problem.
func NewProblem(g *grid.Grid, agentIDs []int, colors []int, assignedGoals map[int]int, illegal []agentpath.AgentPath, cats []*cat.CAT) (*Problem, error) {
	if len(agentIDs) == 0 {
		return nil, ErrEmptyGroup
	}
	if assignedGoals != nil {
		known := make(map[int]bool, len(agentIDs))
		for _, id := range agentIDs {
			known[id] = true
		}
		for id := range assignedGoals {
			if !known[id] {
				return nil, ErrUnknownAgent
			}
		}
	}
	ignore := make(map[int]bool, len(agentIDs))
	for _, id := range agentIDs {
		ignore[id] = true
	}
	return &Problem{
		Grid:          g,
		AgentIDs:      append([]int(nil), agentIDs...),
		Colors:        append([]int(nil), colors...),
		AssignedGoals: assignedGoals,
		IllegalPaths:  illegal,
		CATs:          cats,
		ignore:        ignore,
	}, nil
}

// InitialState returns the group's standard starting state and its
// initial running cost, which is always zero: an agent that starts on
// its own goal and never leaves contributes nothing, matching the
// effective-cost definition used throughout.
func (p *Problem) InitialState(starts []coord.Coord) (State, int) {
	return NewStandard(starts), 0
}

// IsFinal reports whether s is standard and every group member occupies
// its goal (the assigned goal in exhaustive mode, any same-color goal in
// heuristic mode).
func (p *Problem) IsFinal(s State) bool {
	if !s.IsStandard() {
		return false
	}
	for i := range p.AgentIDs {
		if !p.onGoal(i, s.Agents[i]) {
			return false
		}
	}
	return true
}

func (p *Problem) onGoal(i int, pos coord.Coord) bool {
	if p.AssignedGoals != nil {
		goalIdx, ok := p.AssignedGoals[p.AgentIDs[i]]
		if !ok {
			return false
		}
		return pos == p.Grid.Goals()[goalIdx].Coord
	}
	return p.Grid.IsGoalOfColor(pos, p.Colors[i])
}

// Heuristic returns the sum, over every group member, of the 4-connected
// BFS distance from its current effective position to its goal. This is
// admissible: it never overcounts the moves still required, since every
// move changes at most one agent's distance-to-goal by at most one.
func (p *Problem) Heuristic(s State) int {
	if p.AssignedGoals == nil && p.UseAssignmentHeuristic {
		if h, ok := p.assignmentHeuristic(s); ok {
			return h
		}
	}

	total := 0
	for i := range p.AgentIDs {
		pos := s.Effective(i)
		var d int
		var ok bool
		if p.AssignedGoals != nil {
			goalIdx, has := p.AssignedGoals[p.AgentIDs[i]]
			if !has {
				total += unreachablePenalty
				continue
			}
			d, ok = p.Grid.HeuristicToGoal(pos, goalIdx)
		} else {
			d, ok = p.Grid.HeuristicToColor(pos, p.Colors[i])
		}
		if !ok {
			total += unreachablePenalty
			continue
		}
		total += d
	}
	return total
}

// assignmentHeuristic groups s's members by color and, for every color
// class whose member count exactly equals the grid's total goal count of
// that color, replaces the per-agent nearest-goal sum with the min-cost
// bipartite matching over that color's full goal set — strictly tighter
// and still admissible, since every member of the class genuinely must
// claim a distinct one of those goals. Colors that don't exactly cover
// their goal set fall back to the per-agent sum for that color's members,
// so a partial match never loses admissibility. Returns ok=false only if
// some agent has no reachable goal at all (an unreachable-penalty case the
// caller's plain path already handles).
func (p *Problem) assignmentHeuristic(s State) (int, bool) {
	byColor := make(map[int][]int) // color -> indices into p.AgentIDs
	for i := range p.AgentIDs {
		byColor[p.Colors[i]] = append(byColor[p.Colors[i]], i)
	}

	total := 0
	for color, members := range byColor {
		goalIdxs := make([]int, 0)
		for idx, g := range p.Grid.Goals() {
			if g.Color == color {
				goalIdxs = append(goalIdxs, idx)
			}
		}
		if len(goalIdxs) != len(members) {
			for _, i := range members {
				d, ok := p.Grid.HeuristicToColor(s.Effective(i), color)
				if !ok {
					return 0, false
				}
				total += d
			}
			continue
		}
		positions := make([]coord.Coord, len(members))
		colors := make([]int, len(members))
		for k, i := range members {
			positions[k] = s.Effective(i)
			colors[k] = color
		}
		_, cost, err := assignment.MinCost(p.Grid, positions, colors, goalIdxs)
		if err != nil {
			return 0, false
		}
		total += cost
	}
	return total, true
}

// Transition is one candidate next state reached from a parent state by
// moving (or holding) the next unmoved agent.
type Transition struct {
	State     State
	CostDelta int
	Conflicts int
}

// Expand returns every valid next state reachable from s by deciding the
// next unmoved agent's move for the time step starting at t, honoring
// vertex and swap conflicts against both already-decided siblings in this
// step and the fixed illegal paths of other groups.
func (p *Problem) Expand(s State, t int) []Transition {
	i := s.NextIndex()
	from := s.Agents[i]
	acc := s.AccCost[i]

	var out []Transition

	// Hold in place.
	if p.Grid.IsWalkable(from) && !p.conflictsVertex(s, from, t+1) && !p.conflictsWithIllegal(i, from, from, t) {
		newAcc := 0
		delta := 1
		if p.onGoal(i, from) {
			newAcc = acc + 1
			delta = 0
		}
		out = append(out, Transition{
			State:     s.WithMove(from, newAcc),
			CostDelta: delta,
			Conflicts: p.conflictCount(from, t+1),
		})
	}

	// Real moves.
	for _, d := range coord.Cardinal {
		to := from.Move(d[0], d[1])
		if !p.Grid.IsWalkable(to) {
			continue
		}
		if p.conflictsVertex(s, to, t+1) {
			continue
		}
		if p.conflictsSwap(s, from, to, t) {
			continue
		}
		if p.conflictsWithIllegal(i, from, to, t) {
			continue
		}
		out = append(out, Transition{
			State:     s.WithMove(to, 0),
			CostDelta: acc + 1,
			Conflicts: p.conflictCount(to, t+1),
		})
	}

	return out
}

// conflictsVertex reports whether to collides with a position already
// committed by a sibling earlier in this time step's branching order.
func (p *Problem) conflictsVertex(s State, to coord.Coord, _ int) bool {
	for _, placed := range s.NewAgents {
		if placed == to {
			return true
		}
	}
	return false
}

// conflictsSwap reports whether moving from->to would swap places with a
// sibling that already committed the reverse move this time step.
func (p *Problem) conflictsSwap(s State, from, to coord.Coord, _ int) bool {
	for j, placed := range s.NewAgents {
		if placed == from && s.Agents[j] == to {
			return true
		}
	}
	return false
}

// conflictsWithIllegal checks the moving agent's transition from->to
// (or from->from, for a hold) at time t against every other group's fixed
// path: a vertex conflict if to is occupied at t+1, a swap conflict if
// the illegal agent is at to at t and moves to from by t+1.
func (p *Problem) conflictsWithIllegal(_ int, from, to coord.Coord, t int) bool {
	for _, ip := range p.IllegalPaths {
		if ip.At(t+1) == to {
			return true
		}
		if from != to && ip.At(t) == to && ip.At(t+1) == from {
			return true
		}
	}
	return false
}

// conflictCount returns the number of CAT-tracked agents (from other,
// already-solved groups) occupying pos at time, for tie-breaking only; it
// never affects which states are valid.
func (p *Problem) conflictCount(pos coord.Coord, time int) int {
	total := 0
	for _, c := range p.CATs {
		total += c.Count(p.ignore, pos.X, pos.Y, time)
	}
	return total
}
