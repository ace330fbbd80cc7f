package grid

import (
	"github.com/nimblegrid/mapfm/bfs"
	"github.com/nimblegrid/mapfm/coord"
)

const unreachable = -1

// HeuristicToColor returns the shortest 4-connected distance from c to the
// nearest goal of the given color, computed by multi-source BFS seeded
// from every goal of that color ("heuristic" mode). The second return
// value is false if c cannot reach any such goal.
func (g *Grid) HeuristicToColor(c coord.Coord, color int) (int, bool) {
	table := g.colorHeuristic(color)
	d := table[g.index(c)]
	if d == unreachable {
		return 0, false
	}
	return d, true
}

// HeuristicToGoal returns the shortest 4-connected distance from c to the
// single goal at goalIndex, computed by single-source BFS from that goal
// ("exhaustive" mode).
func (g *Grid) HeuristicToGoal(c coord.Coord, goalIndex int) (int, bool) {
	table := g.goalHeuristic(goalIndex)
	d := table[g.index(c)]
	if d == unreachable {
		return 0, false
	}
	return d, true
}

// colorHeuristic returns (computing and caching on first call) the
// row-major distance table for every goal of the given color.
func (g *Grid) colorHeuristic(color int) []int {
	if table, ok := g.colorDist[color]; ok {
		return table
	}
	sources := make([]string, 0, 4)
	for _, gl := range g.goals {
		if gl.Color == color {
			sources = append(sources, g.vertexID(gl.Coord))
		}
	}
	table := g.bfsTable(sources)
	g.colorDist[color] = table
	return table
}

// goalHeuristic returns (computing and caching on first call) the
// row-major distance table from a single goal.
func (g *Grid) goalHeuristic(goalIndex int) []int {
	if table, ok := g.goalDist[goalIndex]; ok {
		return table
	}
	table := g.bfsTable([]string{g.vertexID(g.goals[goalIndex].Coord)})
	g.goalDist[goalIndex] = table
	return table
}

// bfsTable runs multi-source (or single-source) unweighted BFS from
// sources over the grid's core-graph conversion, returning a row-major
// w*h table of distances with unreachable cells marked unreachable.
func (g *Grid) bfsTable(sources []string) []int {
	w, h := g.gg.Width, g.gg.Height
	table := make([]int, w*h)
	for i := range table {
		table[i] = unreachable
	}
	if len(sources) == 0 {
		return table
	}

	result, err := bfs.BFS(g.coreGraph(), sources, nil)
	if err != nil {
		// Every source is a validated goal coordinate on a walkable cell,
		// so it is always present in the core graph; BFS cannot fail here.
		panic(err)
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if !g.gg.Walkable(x, y) {
				continue
			}
			if d, ok := result.Depth[g.gg.VertexID(x, y)]; ok {
				table[g.gg.Index(x, y)] = d
			}
		}
	}
	return table
}
