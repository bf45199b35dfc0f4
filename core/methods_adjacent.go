// File: methods_adjacent.go
// Role: Adjacency queries over vertex indices.
// Determinism:
//   - Neighbor lists are returned sorted ascending.

package core

import (
	"fmt"
	"sort"
)

// Neighbors returns the sorted indices adjacent to vertex i: out-neighbors for
// directed graphs, all neighbors for undirected graphs.
// Returns ErrIndexOutOfRange for an invalid index.
// Complexity: O(d log d)
func (g *Graph) Neighbors(i int) ([]int, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	if i < 0 || i >= len(g.out) {
		return nil, fmt.Errorf("Neighbors(%d): %w", i, ErrIndexOutOfRange)
	}

	return sortedKeys(g.out[i]), nil
}

// InNeighbors returns the sorted in-neighbors of vertex i. For undirected
// graphs it is identical to Neighbors.
func (g *Graph) InNeighbors(i int) ([]int, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	if i < 0 || i >= len(g.out) {
		return nil, fmt.Errorf("InNeighbors(%d): %w", i, ErrIndexOutOfRange)
	}
	if g.in == nil {
		return sortedKeys(g.out[i]), nil
	}

	return sortedKeys(g.in[i]), nil
}

// Degree returns the degree of vertex i; for directed graphs this is the sum
// of in- and out-degree.
func (g *Graph) Degree(i int) (int, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	if i < 0 || i >= len(g.out) {
		return 0, fmt.Errorf("Degree(%d): %w", i, ErrIndexOutOfRange)
	}

	return g.degreeLocked(i), nil
}

// Degrees returns the degree sequence indexed by vertex.
// Complexity: O(V)
func (g *Graph) Degrees() []int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]int, len(g.out))
	for i := range g.out {
		out[i] = g.degreeLocked(i)
	}

	return out
}

func (g *Graph) degreeLocked(i int) int {
	d := len(g.out[i])
	if g.in != nil {
		d += len(g.in[i])
	}

	return d
}

// AdjacencyIndex returns a copy of the out-adjacency as sorted index lists,
// suitable for tight loops that must not take locks per vertex.
// Complexity: O(V + E)
func (g *Graph) AdjacencyIndex() [][]int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([][]int, len(g.out))
	for i, m := range g.out {
		out[i] = sortedKeys(m)
	}

	return out
}

func sortedKeys(m map[int]int) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	return keys
}
