// File: methods_clone.go
// Role: Copying graph instances.
// Determinism:
//   - Copies preserve vertex indices, edge IDs and edge order, and carry
//     nextEdgeID so future AddEdge calls never collide on the copy.
// Concurrency:
//   - Read locks for snapshotting; no mutation of the source graph.

package core

// Clone returns a deep copy of the Graph: configuration, vertices, edges, and
// adjacency. Vertex Metadata maps are copied one level deep.
//
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	return g.copyGraph(true)
}

// ShallowCopy returns a copy of the Graph's structure only: configuration,
// vertex IDs, edges and weights. Vertex metadata is dropped, so values attached
// to the source never leak into analyses of the copy.
//
// Complexity: O(V + E)
func (g *Graph) ShallowCopy() *Graph {
	return g.copyGraph(false)
}

func (g *Graph) copyGraph(withMetadata bool) *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	clone := NewGraph(g.options()...)
	clone.vertices = make([]*Vertex, len(g.vertices))
	for i, v := range g.vertices {
		meta := make(map[string]interface{}, len(v.Metadata))
		if withMetadata {
			for k, val := range v.Metadata {
				meta[k] = val
			}
		}
		clone.vertices[i] = &Vertex{Index: i, ID: v.ID, Metadata: meta}
		clone.index[v.ID] = i
	}

	clone.edges = make([]*Edge, len(g.edges))
	for pos, e := range g.edges {
		clone.edges[pos] = &Edge{ID: e.ID, From: e.From, To: e.To, Weight: e.Weight}
	}
	clone.out = copyAdjacency(g.out)
	if g.in != nil {
		clone.in = copyAdjacency(g.in)
	}
	clone.nextEdgeID = g.nextEdgeID

	return clone
}

func copyAdjacency(src []map[int]int) []map[int]int {
	dst := make([]map[int]int, len(src))
	for i, m := range src {
		dst[i] = make(map[int]int, len(m))
		for k, v := range m {
			dst[i][k] = v
		}
	}

	return dst
}
