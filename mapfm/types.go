// Package mapfm wires the matching, independence-detection, and
// operator-decomposition layers into the solver's single external entry
// point, Solve.
package mapfm

import (
	"errors"

	"github.com/nimblegrid/mapfm/coord"
	"github.com/nimblegrid/mapfm/mapflog"
)

// HeuristicMode selects the matching policy.
type HeuristicMode int

const (
	// ColorMode lets every agent head to its nearest same-color goal; the
	// matching is never pinned, and the ID layer runs once.
	ColorMode HeuristicMode = iota
	// ExhaustiveMode enumerates every color-consistent injective matching
	// and runs the ID layer under each, keeping the cheapest solution.
	ExhaustiveMode
)

// Start is one agent's initial position and color; its id is its index.
type Start struct {
	Coord coord.Coord
	Color int
}

// Goal is one goal cell and its color; its id is its index.
type Goal struct {
	Coord coord.Coord
	Color int
}

// Problem is the solver's external input.
type Problem struct {
	Width, Height int
	Walls         [][]bool // Walls[y][x]
	Starts        []Start
	Goals         []Goal
}

// Options configures a single Solve call.
type Options struct {
	HeuristicMode HeuristicMode
	// EnableMatchingID seeds outer ID groups by color class instead of
	// per-agent singletons, in ExhaustiveMode only.
	EnableMatchingID bool
	// EnableSorting controls early stopping in ExhaustiveMode. Candidate
	// matchings are always tried in ascending-heuristic order; when true,
	// the remaining candidates are skipped once none of them can beat the
	// best solution found, and when false every candidate admitted by the
	// current bound is tried.
	EnableSorting bool
	EnableCAT     bool
	// UseAssignmentHeuristic swaps the default per-agent nearest-goal sum
	// for the tighter colored min-cost assignment heuristic, in ColorMode
	// only, wherever a color class's membership in the current group
	// exactly covers that color's goals. Opt-in because it costs an assignment solve per
	// heuristic evaluation.
	UseAssignmentHeuristic bool
	// MaxCost upper-bounds the accepted total solution cost; negative
	// means unbounded.
	MaxCost int
	// Logger, when non-nil, receives tagged progress events from every
	// layer (matching enumeration, group merges, OD frontier size).
	Logger mapflog.Logger
}

// Solution is one time-indexed coordinate sequence per agent, all padded
// to equal length by repeating each agent's final cell.
type Solution [][]coord.Coord

// ErrNoSolution is returned when no solution exists within Options.MaxCost.
var ErrNoSolution = errors.New("mapfm: no solution within the cost bound")
