// Package idsolve implements the independence-detection (ID) layer: it
// starts every agent in its own singleton subgroup, solves each with the
// OD solver, and repeatedly resolves the first conflicting pair of
// subgroups by trying to re-route one of them around the other before
// falling back to merging them into one jointly-solved subgroup.
//
// Grounded on the original Python Astar_OD_ID/Astar_ID/IDProblem.py's
// avoid-then-merge loop, re-expressed with a sentinel error and an
// options struct.
package idsolve

import "errors"

// ErrNoSolution is returned when some subgroup has no OD solution within
// its allotted cost budget and no avoidance or merge can recover it.
var ErrNoSolution = errors.New("idsolve: no solution within the cost bound")
