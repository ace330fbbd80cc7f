// Package coord defines the grid cell coordinate used throughout the MAPFM
// solver: a pair of non-negative (x, y) integers in a comparable struct,
// so it can key maps and sets directly; Pack folds it into a single word.
//
// Coord is intentionally tiny and allocation-free: every layer above it
// (agent, agentpath, od) stores and compares Coord by value.
package coord

import "fmt"

// Coord is a cell location on the grid. The zero value is the origin (0,0).
type Coord struct {
	X, Y int
}

// New returns the Coord (x, y).
func New(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// Move returns the Coord offset by (dx, dy). It performs no bounds checking;
// callers validate the result against a Grid before treating it as walkable.
func (c Coord) Move(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Pack folds (X, Y) into a single int64 word, ordering X in the high bits.
// Valid for grids with both dimensions below 2^31; the solver's grids are
// bounded well under that in practice. Distinct in-range coordinates
// always pack to distinct words.
func (c Coord) Pack() int64 {
	return int64(c.X)<<32 | int64(uint32(c.Y))
}

// String renders the coordinate as "(x,y)" for logging and debugging.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Cardinal enumerates the four 4-connected step offsets, in a fixed order
// that every caller (grid.Neighbors, OD expansion) must reuse so that tie-broken
// enumeration order is deterministic across the solver.
var Cardinal = [4][2]int{
	{0, 1},
	{0, -1},
	{1, 0},
	{-1, 0},
}
