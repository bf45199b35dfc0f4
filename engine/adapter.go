package engine

import (
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/mazzalab/pyntacle/core"
)

// toGonum mirrors g as a gonum graph whose node IDs are the core vertex
// indices. Edge weights are dropped: every analysis here counts hops.
func toGonum(g *core.Graph) graph.Graph {
	n := g.VertexCount()
	if g.Directed() {
		dg := simple.NewDirectedGraph()
		for i := 0; i < n; i++ {
			dg.AddNode(simple.Node(i))
		}
		for _, e := range g.Edges() {
			dg.SetEdge(simple.Edge{F: simple.Node(e.From), T: simple.Node(e.To)})
		}

		return dg
	}

	ug := simple.NewUndirectedGraph()
	for i := 0; i < n; i++ {
		ug.AddNode(simple.Node(i))
	}
	for _, e := range g.Edges() {
		ug.SetEdge(simple.Edge{F: simple.Node(e.From), T: simple.Node(e.To)})
	}

	return ug
}

// toGonumDirected returns a directed mirror of g; undirected edges become
// arc pairs. Used by analyses gonum defines on graph.Directed only.
func toGonumDirected(g *core.Graph) graph.Directed {
	if g.Directed() {
		return toGonum(g).(*simple.DirectedGraph)
	}

	n := g.VertexCount()
	dg := simple.NewDirectedGraph()
	for i := 0; i < n; i++ {
		dg.AddNode(simple.Node(i))
	}
	for _, e := range g.Edges() {
		dg.SetEdge(simple.Edge{F: simple.Node(e.From), T: simple.Node(e.To)})
		dg.SetEdge(simple.Edge{F: simple.Node(e.To), T: simple.Node(e.From)})
	}

	return dg
}

// toUndirected returns g as a gonum graph.Undirected; directed graphs are
// viewed through graph.Undirect so weak connectivity applies.
func toUndirected(g *core.Graph) graph.Undirected {
	gg := toGonum(g)
	if ug, ok := gg.(graph.Undirected); ok {
		return ug
	}

	return graph.Undirect{G: gg.(graph.Directed)}
}

// groupsOf converts gonum node groups to sorted index groups ordered by
// their smallest member.
func groupsOf(nodes [][]graph.Node) [][]int {
	out := make([][]int, len(nodes))
	for k, grp := range nodes {
		ids := make([]int, len(grp))
		for j, nd := range grp {
			ids[j] = int(nd.ID())
		}
		sortInts(ids)
		out[k] = ids
	}
	sortGroups(out)

	return out
}
