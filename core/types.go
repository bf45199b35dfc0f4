// SPDX-License-Identifier: MIT
// Package core defines the central Graph, Vertex, and Edge types used by every
// analysis package, and provides thread-safe primitives for building, querying,
// and copying graphs.
//
// Vertices are addressed both by a unique name (ID) and by a dense index equal
// to their insertion order, so a graph with N vertices always exposes the index
// space [0, N). Analysis packages work on indices; loaders and reports work on
// names.
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrVertexNotFound      - requested vertex name does not exist.
//	ErrIndexOutOfRange     - vertex index outside [0, VertexCount).
//	ErrBadWeight           - non-zero weight provided to an unweighted graph.
//	ErrLoopNotAllowed      - self-loop (analysis graphs are simple).
//	ErrMultiEdgeNotAllowed - second edge between the same endpoints.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex name.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrIndexOutOfRange indicates a vertex index outside [0, VertexCount).
	ErrIndexOutOfRange = errors.New("core: vertex index out of range")

	// ErrBadWeight indicates a non-zero weight provided to an unweighted graph.
	ErrBadWeight = errors.New("core: bad weight for unweighted graph")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")
)

// Vertex represents a node in the graph.
//
// Index is the dense position of the vertex in [0, VertexCount) and never
// changes for the lifetime of the graph. ID uniquely names the vertex.
// Metadata stores arbitrary key-value data and is shared by Clone but dropped
// by ShallowCopy.
type Vertex struct {
	// Index is the insertion-order position of this Vertex.
	Index int

	// ID is the unique name of this Vertex.
	ID string

	// Metadata stores arbitrary user data.
	Metadata map[string]interface{}
}

// Edge represents a connection between two vertices, addressed by index.
//
// For undirected graphs From < To is not guaranteed; From is the first endpoint
// passed to AddEdge.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", ...).
	ID string

	// From is the source vertex index.
	From int

	// To is the destination vertex index.
	To int

	// Weight is the numeric weight of the edge; 0 for unweighted graphs.
	Weight float64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the directedness of all edges
// (true = directed, false = undirected).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithWeighted allows non-zero edge weights in the Graph.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// Graph is the in-memory simple graph consumed by the analysis packages.
//
// muVert protects vertices and the name index; muEdgeAdj protects edges and
// adjacency. When both are needed, muVert is always acquired first.
type Graph struct {
	muVert    sync.RWMutex // guards vertices, index
	muEdgeAdj sync.RWMutex // guards edges, out, in

	// Configuration flags
	directed bool // edge orientation
	weighted bool // allow non-zero weights

	// Storage
	nextEdgeID uint64         // edge ID generator, guarded by muEdgeAdj
	vertices   []*Vertex      // index → Vertex
	index      map[string]int // ID → index
	edges      []*Edge        // insertion order

	// out[u][v] = position of edge u→v in edges (both directions when undirected).
	out []map[int]int
	// in[v][u] mirrors out for directed graphs; nil entries when undirected.
	in []map[int]int
}

// NewGraph creates an empty Graph with the given options.
// By default, Graph is undirected and unweighted.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{index: make(map[string]int)}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Directed reports whether edges are directed.
func (g *Graph) Directed() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.directed
}

// Weighted reports whether non-zero edge weights are permitted.
func (g *Graph) Weighted() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.weighted
}

// options rebuilds the construction options of g, used by copies and views.
// Caller must hold muVert.
func (g *Graph) options() []GraphOption {
	opts := []GraphOption{WithDirected(g.directed)}
	if g.weighted {
		opts = append(opts, WithWeighted())
	}

	return opts
}
