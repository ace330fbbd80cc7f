package od

import (
	"container/heap"
	"context"
	"errors"

	"github.com/nimblegrid/mapfm/agentpath"
	"github.com/nimblegrid/mapfm/coord"
	"github.com/nimblegrid/mapfm/mapflog"
)

// frontierReportInterval controls how often Solve logs the frontier size,
// when a Logger is set — often enough to see search progress on a large
// group, rarely enough not to drown the log.
const frontierReportInterval = 1000

// ErrNoSolution is returned by Solve when no joint path exists within the
// given cost bound.
var ErrNoSolution = errors.New("od: no solution within the cost bound")

// Options configures a single Solve call.
type Options struct {
	// MaxCost bounds the accepted total cost (sum of per-agent effective
	// costs); nodes whose g+h exceeds it are pruned. A negative value
	// means unbounded.
	MaxCost int
	// Ctx, when non-nil, is checked between pops so a long search can be
	// cancelled.
	Ctx context.Context
	// Logger, when non-nil, receives periodic frontier-size reports.
	Logger mapflog.Logger
}

// node is one best-first search frontier entry. Parent pointers let the
// solution be reconstructed without storing full paths on every node.
type node struct {
	state  State
	time   int
	cost   int
	h      int
	order  int // CAT-tie-break conflict count accumulated on the path to this node
	parent *node
	index  int // heap.Interface bookkeeping
}

func (n *node) f() int { return n.cost + n.h }

type nodeHeap []*node

func (h nodeHeap) Len() int { return len(h) }
// Less orders by (f, conflicts, h) ascending, matching the OD solver's
// node ordering: f breaks most ties, the CAT-based conflict count breaks
// the rest without affecting optimality, and h is the final tiebreaker.
func (h nodeHeap) Less(i, j int) bool {
	fi, fj := h[i].f(), h[j].f()
	if fi != fj {
		return fi < fj
	}
	if h[i].order != h[j].order {
		return h[i].order < h[j].order
	}
	return h[i].h < h[j].h
}
func (h nodeHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index, h[j].index = i, j
}
func (h *nodeHeap) Push(x any) {
	n := x.(*node)
	n.index = len(*h)
	*h = append(*h, n)
}
func (h *nodeHeap) Pop() any {
	old := *h
	n := old[len(old)-1]
	old[len(old)-1] = nil
	n.index = -1
	*h = old[:len(old)-1]
	return n
}

// Solve runs best-first search with operator decomposition over p,
// starting from the group's starts (in the same order as p.AgentIDs),
// and returns one AgentPath per group member in that order.
//
// Intermediate (non-standard) states are expanded without ever entering
// the closed set; only standard states are deduplicated, since an
// intermediate state's identity is meaningless outside the time step that
// produced it.
func Solve(p *Problem, starts []coord.Coord, opts Options) ([]agentpath.AgentPath, int, error) {
	initial, initCost := p.InitialState(starts)

	open := &nodeHeap{}
	heap.Init(open)
	heap.Push(open, &node{state: initial, time: 0, cost: initCost, h: p.Heuristic(initial)})

	closed := make(map[string]bool)
	popped := 0

	for open.Len() > 0 {
		if opts.Ctx != nil {
			select {
			case <-opts.Ctx.Done():
				return nil, 0, opts.Ctx.Err()
			default:
			}
		}

		cur := heap.Pop(open).(*node)
		popped++
		if popped%frontierReportInterval == 0 {
			mapflog.Log(opts.Logger, "od.frontier", "search progress", "popped", popped, "open", open.Len(), "f", cur.f())
		}

		if opts.MaxCost >= 0 && cur.f() > opts.MaxCost {
			continue
		}

		if cur.state.IsStandard() {
			if p.IsFinal(cur.state) {
				return reconstruct(p, cur), cur.cost, nil
			}
			key := cur.state.Key()
			if closed[key] {
				continue
			}
			closed[key] = true
		}

		for _, tr := range p.Expand(cur.state, cur.time) {
			nextTime := cur.time
			if tr.State.IsStandard() {
				nextTime = cur.time + 1
			}
			child := &node{
				state:  tr.State,
				time:   nextTime,
				cost:   cur.cost + tr.CostDelta,
				h:      p.Heuristic(tr.State),
				order:  cur.order + tr.Conflicts,
				parent: cur,
			}
			if opts.MaxCost >= 0 && child.f() > opts.MaxCost {
				continue
			}
			if child.state.IsStandard() && closed[child.state.Key()] {
				continue
			}
			heap.Push(open, child)
		}
	}

	return nil, 0, ErrNoSolution
}

// reconstruct walks parent pointers back to the root, collecting one
// coordinate per group member at every time step the path passed through
// a standard state, then builds an AgentPath per member.
func reconstruct(p *Problem, goal *node) []agentpath.AgentPath {
	var standards []*node
	for n := goal; n != nil; n = n.parent {
		if n.state.IsStandard() {
			standards = append(standards, n)
		}
	}
	// standards is root-to-goal in reverse; flip it.
	for i, j := 0, len(standards)-1; i < j; i, j = i+1, j-1 {
		standards[i], standards[j] = standards[j], standards[i]
	}

	paths := make([]agentpath.AgentPath, len(p.AgentIDs))
	for i, id := range p.AgentIDs {
		coords := make([]coord.Coord, len(standards))
		for t, n := range standards {
			coords[t] = n.state.Agents[i]
		}
		paths[i] = agentpath.New(id, p.Colors[i], coords)
	}
	return paths
}
