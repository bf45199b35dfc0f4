// File: methods_edges.go
// Role: Edge catalog: insertion by name or index, lookup, counting.
// Policy:
//   - Analysis graphs are simple: self-loops and parallel edges are rejected.
//   - Edge IDs are "e1", "e2", ... in insertion order.

package core

import (
	"fmt"
	"math"
)

const edgeIDPrefix = "e"

// AddEdge creates an edge between the named vertices, adding missing endpoints,
// and returns the new Edge.ID.
//
// Returns ErrEmptyVertexID, ErrBadWeight, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight float64) (string, error) {
	// 1) Input validation
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if from == to {
		return "", fmt.Errorf("AddEdge(%s→%s): %w", from, to, ErrLoopNotAllowed)
	}
	// 2) Ensure both endpoints exist (idempotent)
	g.muVert.Lock()
	u := g.addVertexLocked(from)
	v := g.addVertexLocked(to)
	g.muVert.Unlock()

	return g.AddEdgeIndex(u, v, weight)
}

// AddEdgeIndex creates an edge between the vertices at indices u and v.
//
// Returns ErrIndexOutOfRange, ErrBadWeight, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
// Complexity: O(1) amortized.
func (g *Graph) AddEdgeIndex(u, v int, weight float64) (string, error) {
	g.muVert.RLock()
	n := len(g.vertices)
	weighted := g.weighted
	directed := g.directed
	g.muVert.RUnlock()

	// 1) Index validation
	if u < 0 || u >= n || v < 0 || v >= n {
		return "", fmt.Errorf("AddEdgeIndex(%d,%d): %w", u, v, ErrIndexOutOfRange)
	}
	// 2) Weight constraint
	if (!weighted && weight != 0) || math.IsNaN(weight) || math.IsInf(weight, 0) {
		return "", fmt.Errorf("AddEdgeIndex(%d,%d,w=%g): %w", u, v, weight, ErrBadWeight)
	}
	// 3) Loop constraint
	if u == v {
		return "", fmt.Errorf("AddEdgeIndex(%d,%d): %w", u, v, ErrLoopNotAllowed)
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	// 4) Multi-edge check (the undirected mirror makes out[v][u] authoritative too)
	if _, ok := g.out[u][v]; ok {
		return "", fmt.Errorf("AddEdgeIndex(%d,%d): %w", u, v, ErrMultiEdgeNotAllowed)
	}

	g.nextEdgeID++
	eid := fmt.Sprintf("%s%d", edgeIDPrefix, g.nextEdgeID)
	pos := len(g.edges)
	g.edges = append(g.edges, &Edge{ID: eid, From: u, To: v, Weight: weight})

	g.out[u][v] = pos
	if directed {
		g.in[v][u] = pos
	} else {
		g.out[v][u] = pos
	}

	return eid, nil
}

// HasEdge reports whether an edge u→v exists (u–v for undirected graphs).
// Out-of-range indices report false.
func (g *Graph) HasEdge(u, v int) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	if u < 0 || u >= len(g.out) {
		return false
	}
	_, ok := g.out[u][v]

	return ok
}

// Edge returns the edge u→v (u–v for undirected graphs).
func (g *Graph) Edge(u, v int) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	if u < 0 || u >= len(g.out) {
		return nil, fmt.Errorf("Edge(%d,%d): %w", u, v, ErrIndexOutOfRange)
	}
	pos, ok := g.out[u][v]
	if !ok {
		return nil, fmt.Errorf("Edge(%d,%d): %w", u, v, ErrEdgeNotFound)
	}

	return g.edges[pos], nil
}

// Edges returns all edges in insertion order.
// The returned slice is fresh; the *Edge values are shared and must not be mutated.
// Complexity: O(E)
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]*Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeCount returns the total number of edges. O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}
