package od

import (
	"strconv"
	"strings"

	"github.com/nimblegrid/mapfm/coord"
)

// State is one node of the operator-decomposition search space for a
// group: the pre-move positions of every group member at the current time
// step (Agents), and the post-move positions decided so far for the next
// time step (NewAgents). A state is "standard" when every member has moved
// and NewAgents is empty again, holding the promoted positions in Agents.
//
// AccCost and NewAccCost track, per agent, how many consecutive time steps
// it has spent resting on its own goal; a run of free rests is only
// charged against the running cost if the agent is later forced to move
// away again ("wait at goal is free until departure").
//
// Two states are considered equal for closed-set and matching purposes
// based on Agents and NewAgents alone (see Key); AccCost does not affect
// which positions are reachable from a state, only the cost of reaching
// them, so identical position layouts reached via different rest
// histories are the same search node.
type State struct {
	Agents    []coord.Coord
	NewAgents []coord.Coord

	AccCost    []int
	NewAccCost []int
}

// NewStandard builds the standard (fully-promoted) initial state for a
// group's starting positions.
func NewStandard(agents []coord.Coord) State {
	return State{
		Agents:  append([]coord.Coord(nil), agents...),
		AccCost: make([]int, len(agents)),
	}
}

// IsStandard reports whether every agent has committed a move for the
// current time step.
func (s State) IsStandard() bool {
	return len(s.NewAgents) == 0
}

// NextIndex returns the index, into Agents/AccCost, of the next agent to
// branch on; 0 for a standard state.
func (s State) NextIndex() int {
	return len(s.NewAgents)
}

// WithMove returns the state reached by committing pos as the next
// unmoved agent's position for the upcoming time step, with acc as that
// agent's new rest-credit count. When this is the last agent in the
// group, the result is promoted: NewAgents becomes Agents and the state
// is standard again.
func (s State) WithMove(pos coord.Coord, acc int) State {
	newAgents := make([]coord.Coord, len(s.NewAgents)+1)
	copy(newAgents, s.NewAgents)
	newAgents[len(s.NewAgents)] = pos

	newAcc := make([]int, len(s.NewAccCost)+1)
	copy(newAcc, s.NewAccCost)
	newAcc[len(s.NewAccCost)] = acc

	if len(newAgents) == len(s.Agents) {
		return State{Agents: newAgents, AccCost: newAcc}
	}
	return State{
		Agents:     s.Agents,
		NewAgents:  newAgents,
		AccCost:    s.AccCost,
		NewAccCost: newAcc,
	}
}

// Effective returns, for every group member, the position it holds right
// now: the committed new position if it has already moved this time step,
// otherwise its pre-move position. This is what the heuristic and the
// conflict checks against not-yet-moved siblings both operate on.
func (s State) Effective(i int) coord.Coord {
	if i < len(s.NewAgents) {
		return s.NewAgents[i]
	}
	return s.Agents[i]
}

// Key returns a position-only digest suitable for closed-set and visited
// maps. AccCost is deliberately excluded.
func (s State) Key() string {
	var b strings.Builder
	for _, c := range s.Agents {
		b.WriteString(strconv.Itoa(c.X))
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(c.Y))
		b.WriteByte('|')
	}
	b.WriteByte(';')
	for _, c := range s.NewAgents {
		b.WriteString(strconv.Itoa(c.X))
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(c.Y))
		b.WriteByte('|')
	}
	return b.String()
}
