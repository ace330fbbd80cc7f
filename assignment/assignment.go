package assignment

import (
	"github.com/nimblegrid/mapfm/coord"
	"github.com/nimblegrid/mapfm/grid"
)

// MinCost computes the minimum-cost color-consistent matching from
// agentPositions/agentColors to the goals named by goalIndices (both
// slices must have equal length — a full bijection is required since a
// matching never leaves agents or goals unassigned). Returns, per agent
// index, the matched absolute goal index, and the total cost.
func MinCost(g *grid.Grid, agentPositions []coord.Coord, agentColors []int, goalIndices []int) ([]int, int, error) {
	n := len(agentPositions)
	if n != len(goalIndices) {
		panic("assignment: agent and goal slices must have equal length")
	}
	if n == 0 {
		return nil, 0, nil
	}

	costs := make([][]int, n)
	for i := range costs {
		costs[i] = make([]int, n)
		for j, goalIdx := range goalIndices {
			goal := g.Goals()[goalIdx]
			if goal.Color != agentColors[i] {
				costs[i][j] = forbidden
				continue
			}
			d, ok := g.HeuristicToGoal(agentPositions[i], goalIdx)
			if !ok {
				costs[i][j] = forbidden
				continue
			}
			costs[i][j] = d
		}
	}

	targetSource := optimalCost(costs)

	result := make([]int, n)
	total := 0
	for j, i := range targetSource {
		if costs[i][j] >= forbidden {
			return nil, 0, ErrNoAssignment
		}
		result[i] = goalIndices[j]
		total += costs[i][j]
	}
	return result, total, nil
}

// optimalCost returns, for each target column j, the source row i it is
// matched with, minimizing total cost over the square matrix costs. This
// is the successive-shortest-augmenting-path (Hungarian/Jonker-Volgenant)
// algorithm with vertex potentials maintaining dual feasibility at every
// step.
func optimalCost(costs [][]int) []int {
	n := len(costs)

	// sourceCost[i] and targetCost[j] are the dual potentials; every edge
	// satisfies sourceCost[i] + targetCost[j] <= costs[i][j], with equality
	// on "tight" edges that form the current equality subgraph.
	sourceCost := make([]int, n+1)
	targetCost := make([]int, n+1)

	// targetSource[j] = i: target j is matched to source i. n means unmatched.
	targetSource := make([]int, n+1)
	for j := range targetSource {
		targetSource[j] = n
	}

	minSlack := make([]int, n+1)
	targetTrail := make([]int, n+1)
	visited := make([]bool, n+1)

	for i := 0; i < n; i++ {
		// Grow an augmenting path rooted at source i, using a dummy target
		// n to seed the search.
		targetSource[n] = i
		cur := n

		for j := 0; j <= n; j++ {
			minSlack[j] = forbidden
			targetTrail[j] = n
			visited[j] = false
		}

		for targetSource[cur] != n {
			visited[cur] = true
			source := targetSource[cur]
			delta := forbidden
			next := 0

			for j := 0; j < n; j++ {
				if visited[j] {
					continue
				}
				slack := costs[source][j] - sourceCost[source] - targetCost[j]
				if slack < minSlack[j] {
					minSlack[j] = slack
					targetTrail[j] = cur
				}
				if minSlack[j] < delta {
					delta = minSlack[j]
					next = j
				}
			}

			for j := 0; j <= n; j++ {
				if visited[j] {
					i := targetSource[j]
					sourceCost[i] += delta
					targetCost[j] -= delta
				} else {
					minSlack[j] -= delta
				}
			}
			cur = next
		}

		for cur != n {
			prev := targetTrail[cur]
			targetSource[cur] = targetSource[prev]
			cur = prev
		}
	}

	return targetSource[:n]
}
