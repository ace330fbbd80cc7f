// Package bfs provides multi-source breadth-first search over a
// core.Graph, returning unweighted shortest-path distances from a set of
// start vertices.
//
// Grounded on the example corpus's lvlath bfs package (walker/queue/
// visited state, ctx-checked loop, Depth result map), generalized from
// single-source to multi-source by seeding the queue with every start ID
// at depth 0 instead of one — the natural extension this module's
// per-color heuristic tables need, since a cell's distance to "the
// nearest goal of this color" is a multi-source shortest-path query.
// The hook/filter/max-depth options that package also exposes have no
// caller in this module, so only context cancellation was carried over.
package bfs

import (
	"context"
	"errors"

	"github.com/nimblegrid/mapfm/core"
)

// ErrNoStarts is returned when BFS is called with no start vertices.
var ErrNoStarts = errors.New("bfs: at least one start vertex is required")

// ErrStartVertexNotFound is returned when a start ID is absent from g.
var ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

// Result holds the outcome of a multi-source BFS traversal: Depth maps
// each reached vertex ID to its distance from the nearest start vertex.
type Result struct {
	Depth map[string]int
}

// BFS runs multi-source breadth-first search on g, seeded from every ID
// in starts at depth 0. ctx, when non-nil, is checked once per dequeue;
// a nil ctx runs unconditionally.
func BFS(g *core.Graph, starts []string, ctx context.Context) (*Result, error) {
	if len(starts) == 0 {
		return nil, ErrNoStarts
	}
	for _, id := range starts {
		if !g.HasVertex(id) {
			return nil, ErrStartVertexNotFound
		}
	}

	res := &Result{Depth: make(map[string]int)}
	queue := make([]string, 0, len(starts))
	for _, id := range starts {
		if _, seen := res.Depth[id]; seen {
			continue
		}
		res.Depth[id] = 0
		queue = append(queue, id)
	}

	for head := 0; head < len(queue); head++ {
		if ctx != nil {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			default:
			}
		}

		id := queue[head]
		d := res.Depth[id]
		neighbors, err := g.NeighborIDs(id)
		if err != nil {
			return nil, err
		}
		for _, n := range neighbors {
			if _, seen := res.Depth[n]; seen {
				continue
			}
			res.Depth[n] = d + 1
			queue = append(queue, n)
		}
	}
	return res, nil
}
