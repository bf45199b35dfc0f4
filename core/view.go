// File: view.go
// Role: Non-mutating graph views (new graphs derived from a source graph).
// Determinism:
//   - Vertex i of the view corresponds to keep[i]; edges keep source order.
// Concurrency:
//   - Read locks on source; result is a fresh graph instance.

package core

import "fmt"

// InducedSubgraph returns a new Graph induced by the vertex indices in keep:
// vertex i of the result is the source vertex keep[i] (same ID and a copy of
// its metadata), and every source edge with both endpoints kept is copied with
// its weight. The input graph is not mutated.
//
// Returns ErrIndexOutOfRange for invalid indices; duplicate indices are
// rejected with the same error.
// Complexity: O(V + E). Concurrency: read locks only on source.
func InducedSubgraph(g *Graph, keep []int) (*Graph, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	n := len(g.vertices)
	local := make(map[int]int, len(keep)) // source index → view index
	for pos, i := range keep {
		if i < 0 || i >= n {
			return nil, fmt.Errorf("InducedSubgraph: index %d: %w", i, ErrIndexOutOfRange)
		}
		if _, dup := local[i]; dup {
			return nil, fmt.Errorf("InducedSubgraph: duplicate index %d: %w", i, ErrIndexOutOfRange)
		}
		local[i] = pos
	}

	out := NewGraph(g.options()...)
	out.vertices = make([]*Vertex, len(keep))
	out.out = make([]map[int]int, len(keep))
	if g.directed {
		out.in = make([]map[int]int, len(keep))
	}
	for pos, i := range keep {
		src := g.vertices[i]
		meta := make(map[string]interface{}, len(src.Metadata))
		for k, v := range src.Metadata {
			meta[k] = v
		}
		out.vertices[pos] = &Vertex{Index: pos, ID: src.ID, Metadata: meta}
		out.index[src.ID] = pos
		out.out[pos] = make(map[int]int)
		if out.in != nil {
			out.in[pos] = make(map[int]int)
		}
	}

	for _, e := range g.edges {
		u, okU := local[e.From]
		v, okV := local[e.To]
		if !okU || !okV {
			continue
		}
		out.nextEdgeID++
		ne := &Edge{ID: fmt.Sprintf("%s%d", edgeIDPrefix, out.nextEdgeID), From: u, To: v, Weight: e.Weight}
		p := len(out.edges)
		out.edges = append(out.edges, ne)
		out.out[u][v] = p
		if g.directed {
			out.in[v][u] = p
		} else {
			out.out[v][u] = p
		}
	}

	return out, nil
}

// RemoveVertices returns the subgraph induced by every vertex not listed in
// drop, in ascending index order, together with the mapping from view index to
// source index.
func RemoveVertices(g *Graph, drop []int) (*Graph, []int, error) {
	n := g.VertexCount()
	skip := make(map[int]struct{}, len(drop))
	for _, i := range drop {
		if i < 0 || i >= n {
			return nil, nil, fmt.Errorf("RemoveVertices: index %d: %w", i, ErrIndexOutOfRange)
		}
		skip[i] = struct{}{}
	}
	keep := make([]int, 0, n-len(skip))
	for i := 0; i < n; i++ {
		if _, ok := skip[i]; !ok {
			keep = append(keep, i)
		}
	}
	sub, err := InducedSubgraph(g, keep)
	if err != nil {
		return nil, nil, err
	}

	return sub, keep, nil
}
