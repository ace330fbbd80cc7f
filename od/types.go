// Package od implements Operator Decomposition (OD) over a single group:
// the intermediate-move state representation (State), the per-step
// expansion and heuristic rules (Problem), and the best-first search that
// finds a cost-optimal joint solution under a cost bound (Solve).
//
// Grounded on the original Python Astar_OD_ID/Astar_OD/{ODState,ODProblem}.py
// and Astar_OD_ID/Astar_OD/ODSolver.py, and on a container/heap priority
// queue in the style of a Dijkstra node queue.
package od

import "errors"

// ErrEmptyGroup is returned by NewProblem when the group has no members.
var ErrEmptyGroup = errors.New("od: group must have at least one agent")

// ErrUnknownAgent is returned when AssignedGoals references an agent id
// outside the problem's group.
var ErrUnknownAgent = errors.New("od: assigned goal references an agent outside the group")

// unreachablePenalty stands in for "no path" in the heuristic sum so that a
// matching or state that cannot reach its assigned goal is pruned by the
// cost bound rather than crashing the search.
const unreachablePenalty = 1 << 30
