// Package gridgraph treats a 2D boolean wall grid as a graph: 4-connected
// adjacency over walkable cells, with a conversion to a core.Graph for
// BFS-based distance queries.
//
// Grounded on the example corpus's lvlath gridgraph package (GridGraph's
// immutable-after-construction deep copy, InBounds, precomputed
// NeighborOffsets, row-major index/Coordinate packing, ToCoreGraph
// conversion), adapted from its land/water "cell value >= threshold"
// model to a wall/walkable boolean model, and from Conn4-or-Conn8 to
// Conn4 only, since a MAPFM agent only ever takes a cardinal step. The
// conversion also drops ToCoreGraph's edge weights: the original produces
// a weighted graph for later Dijkstra-style use, but every query this
// module runs against it is an unweighted BFS, so the converted graph is
// built unweighted and has no use for per-edge weight.
package gridgraph

import (
	"errors"
	"fmt"

	"github.com/nimblegrid/mapfm/core"
)

// Sentinel errors for malformed grid input.
var (
	ErrEmptyGrid      = errors.New("gridgraph: input grid must have at least one row and one column")
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
)

// Conn4 is the four cardinal neighbor offsets: N, E, S, W.
var Conn4 = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// GridGraph treats a boolean wall grid as a graph. It is immutable once
// built. Width and Height define dimensions; walls[y][x] is true for a
// blocked cell.
type GridGraph struct {
	Width, Height int
	walls         [][]bool
}

// New constructs a GridGraph from a non-empty, rectangular wall matrix.
// It deep-copies the input to ensure immutability. Returns ErrEmptyGrid
// if walls has no rows or no columns, ErrNonRectangular if any row length
// differs.
func New(walls [][]bool) (*GridGraph, error) {
	if len(walls) == 0 || len(walls[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(walls), len(walls[0])
	for _, row := range walls {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	cp := make([][]bool, h)
	for y := range walls {
		cp[y] = append([]bool(nil), walls[y]...)
	}
	return &GridGraph{Width: w, Height: h, walls: cp}, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// Walkable reports whether (x,y) is in bounds and not a wall.
func (gg *GridGraph) Walkable(x, y int) bool {
	return gg.InBounds(x, y) && !gg.walls[y][x]
}

// IsWall reports whether (x,y) is a blocked cell. The caller must ensure
// (x,y) is in bounds.
func (gg *GridGraph) IsWall(x, y int) bool {
	return gg.walls[y][x]
}

// Index maps (x,y) to a row-major index: y*Width + x.
func (gg *GridGraph) Index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row-major index back to (x,y).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}

// VertexID formats the unique core.Graph vertex identifier for cell (x,y).
func (gg *GridGraph) VertexID(x, y int) string {
	return fmt.Sprintf("%d,%d", x, y)
}

// ToCoreGraph converts the walkable cells of the grid into an unweighted,
// undirected *core.Graph, with one vertex per walkable cell (ID "x,y",
// metadata {x,y}) and an edge between every pair of 4-connected walkable
// neighbors.
func (gg *GridGraph) ToCoreGraph() *core.Graph {
	g := core.NewGraph()
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !gg.Walkable(x, y) {
				continue
			}
			_ = g.AddVertex(gg.VertexID(x, y), map[string]interface{}{"x": x, "y": y})
		}
	}
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !gg.Walkable(x, y) {
				continue
			}
			uID := gg.VertexID(x, y)
			for _, d := range Conn4 {
				nx, ny := x+d[0], y+d[1]
				if !gg.Walkable(nx, ny) {
					continue
				}
				_ = g.AddEdge(uID, gg.VertexID(nx, ny))
			}
		}
	}
	return g
}
