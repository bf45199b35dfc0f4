// File: methods_vertices.go
// Role: Vertex catalog: insertion, lookup by name and index, metadata.
// Determinism:
//   - Vertex indices follow insertion order and are never reused.
// Concurrency:
//   - muVert guards the catalog; AddVertex also takes muEdgeAdj to grow adjacency.

package core

import "fmt"

// AddVertex inserts a new vertex with the given ID and returns its index.
// If the vertex already exists, its existing index is returned (idempotent).
// Returns ErrEmptyVertexID if id is empty.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) (int, error) {
	if id == "" {
		return -1, ErrEmptyVertexID
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()

	return g.addVertexLocked(id), nil
}

// addVertexLocked inserts id under a held muVert and returns its index.
func (g *Graph) addVertexLocked(id string) int {
	if idx, ok := g.index[id]; ok {
		return idx
	}
	idx := len(g.vertices)
	g.vertices = append(g.vertices, &Vertex{Index: idx, ID: id, Metadata: make(map[string]interface{})})
	g.index[id] = idx

	// Grow adjacency in lockstep so index idx is always addressable.
	g.muEdgeAdj.Lock()
	g.out = append(g.out, make(map[int]int))
	if g.directed {
		g.in = append(g.in, make(map[int]int))
	}
	g.muEdgeAdj.Unlock()

	return idx
}

// AddVertices inserts every id in order; existing IDs keep their index.
func (g *Graph) AddVertices(ids ...string) error {
	for _, id := range ids {
		if _, err := g.AddVertex(id); err != nil {
			return err
		}
	}

	return nil
}

// HasVertex reports whether a vertex with the given ID exists.
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.index[id]

	return ok
}

// IndexOf returns the index of the vertex named id.
// Returns ErrVertexNotFound if no such vertex exists.
func (g *Graph) IndexOf(id string) (int, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	idx, ok := g.index[id]
	if !ok {
		return -1, fmt.Errorf("IndexOf(%q): %w", id, ErrVertexNotFound)
	}

	return idx, nil
}

// VertexAt returns the vertex stored at index i.
// Returns ErrIndexOutOfRange if i is outside [0, VertexCount).
func (g *Graph) VertexAt(i int) (*Vertex, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if i < 0 || i >= len(g.vertices) {
		return nil, fmt.Errorf("VertexAt(%d): %w", i, ErrIndexOutOfRange)
	}

	return g.vertices[i], nil
}

// Vertices returns all vertex IDs in index order, so Vertices()[i] names vertex i.
// Complexity: O(V)
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	ids := make([]string, len(g.vertices))
	for i, v := range g.vertices {
		ids[i] = v.ID
	}

	return ids
}

// Names maps indices to vertex IDs, preserving the order of idx.
// Returns ErrIndexOutOfRange on the first invalid index.
func (g *Graph) Names(idx []int) ([]string, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	out := make([]string, len(idx))
	for k, i := range idx {
		if i < 0 || i >= len(g.vertices) {
			return nil, fmt.Errorf("Names: index %d: %w", i, ErrIndexOutOfRange)
		}
		out[k] = g.vertices[i].ID
	}

	return out, nil
}

// Indices maps vertex IDs to indices, preserving the order of ids.
// Returns ErrVertexNotFound on the first unknown ID.
func (g *Graph) Indices(ids []string) ([]int, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	out := make([]int, len(ids))
	for k, id := range ids {
		idx, ok := g.index[id]
		if !ok {
			return nil, fmt.Errorf("Indices: %q: %w", id, ErrVertexNotFound)
		}
		out[k] = idx
	}

	return out, nil
}

// VertexCount returns the total number of vertices. O(1).
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// SetVertexAttr stores value under key in the metadata of vertex i.
func (g *Graph) SetVertexAttr(i int, key string, value interface{}) error {
	g.muVert.Lock()
	defer g.muVert.Unlock()
	if i < 0 || i >= len(g.vertices) {
		return fmt.Errorf("SetVertexAttr(%d): %w", i, ErrIndexOutOfRange)
	}
	g.vertices[i].Metadata[key] = value

	return nil
}

// VertexAttr returns the metadata value stored under key for vertex i.
// The boolean is false when i is out of range or the key is absent.
func (g *Graph) VertexAttr(i int, key string) (interface{}, bool) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if i < 0 || i >= len(g.vertices) {
		return nil, false
	}
	v, ok := g.vertices[i].Metadata[key]

	return v, ok
}
