package idsolve

import (
	"context"
	"sort"
	"strconv"

	"github.com/nimblegrid/mapfm/agentpath"
	"github.com/nimblegrid/mapfm/cat"
	"github.com/nimblegrid/mapfm/coord"
	"github.com/nimblegrid/mapfm/grid"
	"github.com/nimblegrid/mapfm/group"
	"github.com/nimblegrid/mapfm/mapflog"
	"github.com/nimblegrid/mapfm/od"
)

// unbounded stands in for "no cost bound" at the OD solver boundary.
const unbounded = -1

// Solver runs the independence-detection loop over a fixed set of agents
// on a Grid, optionally under a pinned matching (AssignedGoals) and an
// external CAT used only to tie-break equal-cost OD solutions.
type Solver struct {
	Grid          *grid.Grid
	Starts        map[int]coord.Coord
	Colors        map[int]int
	AssignedGoals map[int]int // nil selects heuristic (any same-color goal) mode
	CAT           *cat.CAT

	// MaxCost bounds the total solution cost; unbounded if negative.
	MaxCost int

	// InitialGroups, when non-nil, seeds the ID loop with these groups
	// instead of one singleton per agent — the "matching-ID" outer mode
	// seeds by color class rather than per-agent, so
	// agents that would conflict immediately are solved jointly from the
	// start instead of paying an avoid-then-merge round trip first. Every
	// agent in Starts must appear in exactly one group.
	InitialGroups []group.Group

	// UseAssignmentHeuristic is forwarded to every OD problem this solver
	// builds; opt-in, default false.
	UseAssignmentHeuristic bool

	// Logger, when non-nil, receives group-combine and avoidance events and
	// is forwarded to the OD solver for frontier-size reports.
	Logger mapflog.Logger

	Ctx context.Context
}

// Solve runs the avoid-then-merge loop to completion and returns one
// AgentPath per agent id, or ErrNoSolution for any failed group solve,
// including one cancelled through Ctx.
func (s *Solver) Solve() (map[int]agentpath.AgentPath, error) {
	ids := sortedIDs(s.Starts)

	initial := s.InitialGroups
	if initial == nil {
		initial = singletons(ids)
	}
	groups := group.NewGroups(initial)

	paths := make(map[int]agentpath.AgentPath, len(ids))
	estimate := make(map[int]int, len(ids)) // current best-known cost per agent, for budget bookkeeping

	for _, id := range ids {
		estimate[id] = s.heuristicLowerBound(id, s.Starts[id])
	}

	for _, grp := range initial {
		bound := s.remainingBudgetForGroup(ids, grp, estimate)
		grpPaths, err := s.solveGroup(grp, nil, bound)
		if err != nil {
			return nil, ErrNoSolution
		}
		for aid, p := range grpPaths {
			paths[aid] = p
			estimate[aid] = p.Cost()
			s.cat().Add(p)
		}
	}

	tried := make(map[string]bool)

	for {
		i, j, found := firstConflict(ids, paths, groups)
		if !found {
			return paths, nil
		}

		a := groups.Of(i)
		b := groups.Of(j)
		key := pairKey(a, b)

		if !tried[key] {
			tried[key] = true

			if replacement, ok := s.tryAvoid(a, b, paths); ok {
				mapflog.Log(s.Logger, "idsolve.avoid", "resolved by avoidance", "mover", a.IDs(), "held", b.IDs())
				s.replace(paths, replacement)
				continue
			}
			if replacement, ok := s.tryAvoid(b, a, paths); ok {
				mapflog.Log(s.Logger, "idsolve.avoid", "resolved by avoidance", "mover", b.IDs(), "held", a.IDs())
				s.replace(paths, replacement)
				continue
			}
		}

		merged := groups.Combine(i, j)
		budget := s.remainingBudgetForGroup(ids, merged, estimate)
		mapflog.Log(s.Logger, "idsolve.merge", "combining groups", "a", a.IDs(), "b", b.IDs())
		mergedPaths, err := s.solveGroup(merged, nil, budget)
		if err != nil {
			return nil, ErrNoSolution
		}
		s.replace(paths, mergedPaths)
		for aid, p := range mergedPaths {
			estimate[aid] = p.Cost()
		}
	}
}

// tryAvoid attempts to re-solve group a while holding every path in group
// b fixed as an illegal obstacle, within a budget equal to the two
// groups' current combined cost. This preserves optimality exactly
// because the bound matches their current contribution.
func (s *Solver) tryAvoid(a, b group.Group, paths map[int]agentpath.AgentPath) (map[int]agentpath.AgentPath, bool) {
	budget := groupCost(a, paths) + groupCost(b, paths)
	illegal := pathsOf(b, paths)
	replacement, err := s.solveGroup(a, illegal, budget)
	if err != nil {
		return nil, false
	}
	return replacement, true
}

func (s *Solver) replace(paths map[int]agentpath.AgentPath, replacement map[int]agentpath.AgentPath) {
	for id, p := range replacement {
		if old, ok := paths[id]; ok {
			s.cat().Remove(old)
		}
		paths[id] = p
		s.cat().Add(p)
	}
}

// solveGroup builds and runs an OD problem for grp's members, honoring
// illegal as fixed obstacles from other groups, under the given cost
// bound.
func (s *Solver) solveGroup(grp group.Group, illegal []agentpath.AgentPath, maxCost int) (map[int]agentpath.AgentPath, error) {
	ids := grp.IDs()
	colors := make([]int, len(ids))
	starts := make([]coord.Coord, len(ids))
	for i, id := range ids {
		colors[i] = s.Colors[id]
		starts[i] = s.Starts[id]
	}

	p, err := od.NewProblem(s.Grid, ids, colors, s.AssignedGoals, illegal, []*cat.CAT{s.cat()})
	if err != nil {
		return nil, err
	}
	p.UseAssignmentHeuristic = s.UseAssignmentHeuristic

	solved, _, err := od.Solve(p, starts, od.Options{MaxCost: maxCost, Ctx: s.Ctx, Logger: s.Logger})
	if err != nil {
		return nil, err
	}

	out := make(map[int]agentpath.AgentPath, len(ids))
	for i, id := range ids {
		out[id] = solved[i]
	}
	return out, nil
}

func (s *Solver) cat() *cat.CAT {
	if s.CAT == nil {
		s.CAT = cat.Empty()
	}
	return s.CAT
}

func (s *Solver) heuristicLowerBound(id int, pos coord.Coord) int {
	if s.AssignedGoals != nil {
		if goalIdx, ok := s.AssignedGoals[id]; ok {
			if d, ok := s.Grid.HeuristicToGoal(pos, goalIdx); ok {
				return d
			}
		}
		return 0
	}
	if d, ok := s.Grid.HeuristicToColor(pos, s.Colors[id]); ok {
		return d
	}
	return 0
}

// remainingBudgetForGroup returns MaxCost minus the current cost estimate
// of every agent outside grp; unbounded stays unbounded.
func (s *Solver) remainingBudgetForGroup(ids []int, grp group.Group, estimate map[int]int) int {
	if s.MaxCost < 0 {
		return unbounded
	}
	members := make(map[int]bool, grp.Len())
	for _, id := range grp.IDs() {
		members[id] = true
	}
	budget := s.MaxCost
	for _, other := range ids {
		if !members[other] {
			budget -= estimate[other]
		}
	}
	return budget
}

func singletons(ids []int) []group.Group {
	out := make([]group.Group, len(ids))
	for i, id := range ids {
		out[i] = group.Single(id)
	}
	return out
}

func sortedIDs(starts map[int]coord.Coord) []int {
	ids := make([]int, 0, len(starts))
	for id := range starts {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// firstConflict scans agent pairs in ascending (i, j) order and returns
// the first pair whose stored paths conflict and whose groups differ
// (same-group members were solved jointly and cannot conflict).
func firstConflict(ids []int, paths map[int]agentpath.AgentPath, groups *group.Groups) (int, int, bool) {
	for ii := 0; ii < len(ids); ii++ {
		for jj := ii + 1; jj < len(ids); jj++ {
			i, j := ids[ii], ids[jj]
			if sameGroup(groups, i, j) {
				continue
			}
			if paths[i].Conflicts(paths[j]) {
				return i, j, true
			}
		}
	}
	return 0, 0, false
}

func sameGroup(groups *group.Groups, i, j int) bool {
	a, b := groups.Of(i), groups.Of(j)
	if a.Len() != b.Len() {
		return false
	}
	ai, bi := a.IDs(), b.IDs()
	for k := range ai {
		if ai[k] != bi[k] {
			return false
		}
	}
	return true
}

func groupCost(g group.Group, paths map[int]agentpath.AgentPath) int {
	total := 0
	for _, id := range g.IDs() {
		total += paths[id].Cost()
	}
	return total
}

func pathsOf(g group.Group, paths map[int]agentpath.AgentPath) []agentpath.AgentPath {
	out := make([]agentpath.AgentPath, 0, g.Len())
	for _, id := range g.IDs() {
		out = append(out, paths[id])
	}
	return out
}

func pairKey(a, b group.Group) string {
	ak, bk := groupKey(a), groupKey(b)
	return ak + ">" + bk
}

func groupKey(g group.Group) string {
	ids := g.IDs()
	key := make([]byte, 0, len(ids)*4)
	for _, id := range ids {
		key = strconv.AppendInt(key, int64(id), 10)
		key = append(key, ',')
	}
	return string(key)
}
