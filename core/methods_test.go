package core_test

import (
	"testing"

	"github.com/mazzalab/pyntacle/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildPath returns the undirected path 0–1–2–3–4 named A..E.
func buildPath(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	names := []string{"A", "B", "C", "D", "E"}
	for i := 1; i < len(names); i++ {
		_, err := g.AddEdge(names[i-1], names[i], 0)
		require.NoError(t, err)
	}

	return g
}

func TestAddVertex_IndicesFollowInsertionOrder(t *testing.T) {
	g := core.NewGraph()
	for want, id := range []string{"x", "y", "z"} {
		idx, err := g.AddVertex(id)
		require.NoError(t, err)
		assert.Equal(t, want, idx)
	}
	// idempotent re-insert keeps the index
	idx, err := g.AddVertex("y")
	require.NoError(t, err)
	assert.Equal(t, 1, idx)
	assert.Equal(t, []string{"x", "y", "z"}, g.Vertices())

	_, err = g.AddVertex("")
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)
}

func TestLookups(t *testing.T) {
	g := buildPath(t)

	idx, err := g.IndexOf("C")
	require.NoError(t, err)
	assert.Equal(t, 2, idx)

	_, err = g.IndexOf("nope")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	v, err := g.VertexAt(4)
	require.NoError(t, err)
	assert.Equal(t, "E", v.ID)
	assert.Equal(t, 4, v.Index)

	_, err = g.VertexAt(5)
	assert.ErrorIs(t, err, core.ErrIndexOutOfRange)
	_, err = g.VertexAt(-1)
	assert.ErrorIs(t, err, core.ErrIndexOutOfRange)

	names, err := g.Names([]int{4, 0})
	require.NoError(t, err)
	assert.Equal(t, []string{"E", "A"}, names)

	ids, err := g.Indices([]string{"B", "D"})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, ids)
}

func TestAddEdge_Policies(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("A", "A", 0)
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)

	_, err = g.AddEdge("A", "B", 0)
	require.NoError(t, err)
	_, err = g.AddEdge("B", "A", 0)
	assert.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed, "undirected mirror counts as parallel")

	_, err = g.AddEdge("A", "C", 2.5)
	assert.ErrorIs(t, err, core.ErrBadWeight)

	_, err = g.AddEdgeIndex(0, 9, 0)
	assert.ErrorIs(t, err, core.ErrIndexOutOfRange)

	_, err = g.AddEdge("", "B", 0)
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)
}

func TestDirectedAdjacency(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_, err := g.AddEdge("A", "B", 1.5)
	require.NoError(t, err)
	_, err = g.AddEdge("B", "A", 2)
	require.NoError(t, err, "reverse arc is not parallel in a directed graph")
	_, err = g.AddEdge("C", "A", 1)
	require.NoError(t, err)

	assert.True(t, g.Directed())
	assert.True(t, g.HasEdge(2, 0))
	assert.False(t, g.HasEdge(0, 2))

	out, err := g.Neighbors(0)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, out)

	in, err := g.InNeighbors(0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, in)

	d, err := g.Degree(0)
	require.NoError(t, err)
	assert.Equal(t, 3, d)

	e, err := g.Edge(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 2.0, e.Weight)
	_, err = g.Edge(0, 2)
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)
}

func TestDegreesAndEdges(t *testing.T) {
	g := buildPath(t)
	assert.Equal(t, []int{1, 2, 2, 2, 1}, g.Degrees())
	assert.Equal(t, 4, g.EdgeCount())

	edges := g.Edges()
	require.Len(t, edges, 4)
	assert.Equal(t, "e1", edges[0].ID)
	assert.Equal(t, 0, edges[0].From)
	assert.Equal(t, 1, edges[0].To)

	nbs, err := g.Neighbors(2)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, nbs)

	adj := g.AdjacencyIndex()
	assert.Equal(t, [][]int{{1}, {0, 2}, {1, 3}, {2, 4}, {3}}, adj)

	_, err = g.Neighbors(7)
	assert.ErrorIs(t, err, core.ErrIndexOutOfRange)
}

func TestVertexAttributes(t *testing.T) {
	g := buildPath(t)
	require.NoError(t, g.SetVertexAttr(1, "score", 0.5))
	v, ok := g.VertexAttr(1, "score")
	require.True(t, ok)
	assert.Equal(t, 0.5, v)

	_, ok = g.VertexAttr(1, "missing")
	assert.False(t, ok)
	assert.ErrorIs(t, g.SetVertexAttr(10, "k", 1), core.ErrIndexOutOfRange)
}

func TestCloneAndShallowCopy(t *testing.T) {
	g := buildPath(t)
	require.NoError(t, g.SetVertexAttr(0, "cached", 42))

	deep := g.Clone()
	shallow := g.ShallowCopy()

	for _, c := range []*core.Graph{deep, shallow} {
		assert.Equal(t, g.Vertices(), c.Vertices())
		assert.Equal(t, g.EdgeCount(), c.EdgeCount())
		assert.Equal(t, g.Degrees(), c.Degrees())
	}

	v, ok := deep.VertexAttr(0, "cached")
	require.True(t, ok)
	assert.Equal(t, 42, v)

	_, ok = shallow.VertexAttr(0, "cached")
	assert.False(t, ok, "shallow copy must drop attached attributes")

	// copies are independent of the source
	_, err := deep.AddEdge("A", "E", 0)
	require.NoError(t, err)
	assert.False(t, g.HasEdge(0, 4))

	// edge IDs continue after copied ones
	id, err := shallow.AddEdge("A", "C", 0)
	require.NoError(t, err)
	assert.Equal(t, "e5", id)
}
