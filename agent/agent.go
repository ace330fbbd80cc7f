// Package agent defines Agent, the immutable identity-plus-position value
// the rest of the solver threads through states, paths, and conflict checks.
package agent

import "github.com/nimblegrid/mapfm/coord"

// Agent is one participant in the MAPFM instance: an integer ID (its index
// among the problem's starts), a current coordinate, and a color. Color
// determines which goals the agent may legally end on.
//
// Agent is immutable; Move returns a new value rather than mutating in
// place, so Agent can be freely copied into OD state arrays.
type Agent struct {
	ID    int
	Coord coord.Coord
	Color int
}

// New constructs an Agent at the given coordinate and color.
func New(id int, c coord.Coord, color int) Agent {
	return Agent{ID: id, Coord: c, Color: color}
}

// Move returns a new Agent with the same ID and color, displaced by (dx, dy).
func (a Agent) Move(dx, dy int) Agent {
	return Agent{ID: a.ID, Coord: a.Coord.Move(dx, dy), Color: a.Color}
}
