// Package cat implements the Collision Avoidance Table: a mutable index
// from (cell, time) to the agent ids currently routed through it, used only
// to tie-break equal-f nodes in the OD solver toward paths that create
// fewer conflicts with already-committed paths from other subgroups. It
// never affects optimality.
//
// Grounded on the original Python util/CAT.py, generalized so a disabled
// table (CAT.empty() there, New(..., false) here) is a zero-cost no-op.
package cat

import "github.com/nimblegrid/mapfm/agentpath"

type entry struct {
	agentID int
	time    int
}

// CAT indexes committed path occupancy by cell, for tie-breaking.
type CAT struct {
	active bool
	w, h   int
	cells  [][][]entry // cells[y][x] -> entries occupying that cell
	length map[int]int // agent id -> length of its currently-committed path
}

// New returns a CAT over a w×h grid. When active is false, Add/Remove are
// no-ops and Count always returns 0 — the cost of disabling CAT via
// mapfm.Options.EnableCAT=false.
func New(w, h int, active bool) *CAT {
	c := &CAT{active: active, w: w, h: h, length: make(map[int]int)}
	if !active {
		return c
	}
	c.cells = make([][][]entry, h)
	for y := range c.cells {
		c.cells[y] = make([][]entry, w)
	}
	return c
}

// Empty returns a disabled CAT, equivalent to the Python CAT.empty().
func Empty() *CAT {
	return New(0, 0, false)
}

// Add records every (cell, time) along path as occupied by path.AgentID,
// and remembers the path's length for Count's "stopped at goal" rule.
func (c *CAT) Add(path agentpath.AgentPath) {
	if !c.active {
		return
	}
	for t, coord := range path.Coords {
		c.cells[coord.Y][coord.X] = append(c.cells[coord.Y][coord.X], entry{agentID: path.AgentID, time: t})
	}
	c.length[path.AgentID] = path.Len()
}

// Remove undoes a prior Add of path. It is a no-op if path.AgentID was
// never added, matching the Python remove_cat(None) short-circuit.
func (c *CAT) Remove(path agentpath.AgentPath) {
	if !c.active {
		return
	}
	for t, coord := range path.Coords {
		bucket := c.cells[coord.Y][coord.X]
		for i, e := range bucket {
			if e.agentID == path.AgentID && e.time == t {
				bucket[i] = bucket[len(bucket)-1]
				c.cells[coord.Y][coord.X] = bucket[:len(bucket)-1]
				break
			}
		}
	}
	delete(c.length, path.AgentID)
}

// Count returns the number of committed entries at (cell, time) whose
// agent id is not in ignored, plus one per non-ignored agent whose
// committed path is shorter than time and whose final cell is cell
// ("treating stopped-at-goal as continuing occupancy").
func (c *CAT) Count(ignored map[int]bool, x, y, time int) int {
	if !c.active {
		return 0
	}
	count := 0
	for _, e := range c.cells[y][x] {
		if ignored[e.agentID] {
			continue
		}
		if e.time == time {
			count++
		}
	}
	for agentID, length := range c.length {
		if ignored[agentID] {
			continue
		}
		if length < time && c.restsAt(agentID, length-1, x, y) {
			count++
		}
	}
	return count
}

// restsAt reports whether agentID's final recorded position (at its last
// time index) is (x, y). Implemented via a linear scan of the final
// entries recorded for that agent at its last time step, since the CAT
// does not separately index "final cell per agent".
func (c *CAT) restsAt(agentID, lastTime, x, y int) bool {
	if lastTime < 0 {
		return false
	}
	for _, e := range c.cells[y][x] {
		if e.agentID == agentID && e.time == lastTime {
			return true
		}
	}
	return false
}
