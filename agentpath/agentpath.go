// Package agentpath defines AgentPath, the time-indexed coordinate sequence
// the solver produces per agent, along with the two operations every upper
// layer needs on it: pairwise conflict detection and effective cost.
//
// Grounded on the original Python util/agent_path.py: Conflicts walks both
// paths in lockstep, then treats the shorter path's final cell as held for
// the remainder of the longer one ("when one path is shorter,
// its final position is held constant for comparison").
package agentpath

import "github.com/nimblegrid/mapfm/coord"

// AgentPath is the coordinate sequence of one agent from time 0 to time
// Len()-1 inclusive, tagged with the agent's ID and color.
type AgentPath struct {
	AgentID int
	Color   int
	Coords  []coord.Coord
}

// New constructs an AgentPath. coords is copied so the caller's backing
// array may be reused.
func New(agentID, color int, coords []coord.Coord) AgentPath {
	cp := make([]coord.Coord, len(coords))
	copy(cp, coords)
	return AgentPath{AgentID: agentID, Color: color, Coords: cp}
}

// Len returns the number of time steps recorded in the path.
func (p AgentPath) Len() int {
	return len(p.Coords)
}

// At returns the coordinate at time t, holding the final coordinate
// constant for t beyond the recorded length. This mirrors the CAT's
// "stopped-at-goal is continuing occupancy" treatment and
// lets callers compare two paths of different lengths without special-
// casing the tail.
func (p AgentPath) At(t int) coord.Coord {
	if t < 0 {
		t = 0
	}
	if t >= len(p.Coords) {
		return p.Coords[len(p.Coords)-1]
	}
	return p.Coords[t]
}

// Conflicts reports whether p and other ever collide: a vertex conflict
// (same cell, same time, t ≥ 1) or an edge/swap conflict (the two agents
// trade cells between consecutive time steps). When the paths differ in
// length, the shorter one's final position is held constant for the
// remainder of the comparison.
func (p AgentPath) Conflicts(other AgentPath) bool {
	n, m := len(p.Coords), len(other.Coords)
	if n == 0 || m == 0 {
		return false
	}
	i := 1
	for i < n && i < m {
		if p.Coords[i] == other.Coords[i] {
			return true
		}
		if p.Coords[i-1] == other.Coords[i] && p.Coords[i] == other.Coords[i-1] {
			return true
		}
		i++
	}
	pLast := p.Coords[n-1]
	otherLast := other.Coords[m-1]
	for ; i < n; i++ {
		if p.Coords[i] == otherLast {
			return true
		}
	}
	for ; i < m; i++ {
		if other.Coords[i] == pLast {
			return true
		}
	}
	return false
}

// Cost returns the effective length of the path: L minus the maximum k
// such that positions L-1, L-2, ..., L-k all equal the final position.
// A path that stands still forever on its final cell — including the
// degenerate single-cell path where the agent starts on its goal — has
// cost 0 (P3).
func (p AgentPath) Cost() int {
	l := len(p.Coords)
	if l == 0 {
		return 0
	}
	last := p.Coords[l-1]
	k := 0
	for i := l - 1; i >= 0 && p.Coords[i] == last; i-- {
		k++
	}
	return l - k
}
