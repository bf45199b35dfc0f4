// Package core provides the thread-safe in-memory Graph that every analysis
// package in this module consumes.
//
// The Graph G = (V,E) is a simple graph:
//
//   - Directed or undirected edges (WithDirected)
//   - Weighted or unweighted edges (WithWeighted)
//   - No self-loops and no parallel edges (ErrLoopNotAllowed, ErrMultiEdgeNotAllowed)
//   - Named vertices with a dense index equal to insertion order, so indices
//     always cover [0, VertexCount)
//   - Per-vertex Metadata for loaders and reports
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj)
//
// Why indices?
//
//	Key-player and sparseness indices are defined over vertex index sets and
//	distance matrices whose rows and columns are vertex indices. Keeping the
//	index stable for the lifetime of the graph lets analysis packages share a
//	matrix layout without translation tables.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) (index int, err error)      // O(1), idempotent
//	IndexOf(id string) (int, error)                  // O(1)
//	VertexAt(i int) (*Vertex, error)                 // O(1)
//	Vertices() []string                              // index order
//
//	// Edge lifecycle
//	AddEdge(from, to string, w float64) (edgeID string, err error)
//	AddEdgeIndex(u, v int, w float64) (edgeID string, err error)
//	HasEdge(u, v int) bool
//	Edges() []*Edge                                  // insertion order
//
//	// Adjacency
//	Neighbors(i int) ([]int, error)                  // sorted
//	Degree(i int) (int, error), Degrees() []int
//
//	// Copies and views
//	Clone() *Graph                                   // deep, metadata copied
//	ShallowCopy() *Graph                             // structure only
//	InducedSubgraph(g, keep []int) (*Graph, error)
//	RemoveVertices(g, drop []int) (*Graph, []int, error)
//
// Errors:
//
//	ErrEmptyVertexID, ErrVertexNotFound, ErrIndexOutOfRange, ErrBadWeight,
//	ErrLoopNotAllowed, ErrMultiEdgeNotAllowed, ErrEdgeNotFound.
//	All are sentinels; use errors.Is.
package core
