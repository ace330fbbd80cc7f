// Package matching enumerates goal-to-agent matchings for "exhaustive"
// mode: every assignment of goals to agents that is injective and
// color-consistent, ordered so the most promising candidates (by a cheap
// heuristic lower bound) are tried first.
//
// Grounded on the original Python Astar_OD_ID/MatchingSolver.py's
// candidate-list Cartesian product and its optional bounded-heap sorted
// iteration, re-expressed as one eagerly built list sorted by heuristic.
package matching

import "errors"

// ErrNoMatching is returned when no injective, color-consistent assignment
// of goals to agents exists (e.g. a color has more agents than goals).
var ErrNoMatching = errors.New("matching: no valid assignment of goals to agents exists")
