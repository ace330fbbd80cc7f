// Package assignment computes a minimum-cost colored bipartite matching
// from agent positions to goals, restricted to color-consistent edges, for
// use as a tighter admissible heuristic than the plain per-agent
// nearest-goal-of-color sum.
//
// The augmenting-path algorithm is a Jonker-Volgenant-style successive
// shortest augmenting path search over a square cost matrix, grounded on
// the Hungarian-algorithm implementation in the example corpus's
// canonical-go-algo/assign package, specialized here to plain int costs
// (the generic Cost interface there buys nothing once every edge weight
// is already a BFS hop count) and to a forbidden-edge sentinel for
// cross-color pairs instead of that package's insert/delete nodes.
package assignment

import "errors"

// ErrNoAssignment is returned when some agent has no reachable
// same-color goal at all, so no complete matching can exist.
var ErrNoAssignment = errors.New("assignment: an agent has no reachable goal of its color")

// forbidden stands in for "no edge" between a color-mismatched or
// unreachable agent/goal pair in the cost matrix.
const forbidden = 1 << 30
