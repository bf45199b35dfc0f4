package engine

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/graph/network"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/mat"

	"github.com/mazzalab/pyntacle/core"
	"github.com/mazzalab/pyntacle/internal/metrics"
)

// pageRankTolerance is the convergence tolerance handed to gonum's PageRank.
const pageRankTolerance = 1e-8

// Degrees returns the degree sequence of g (in+out for directed graphs).
func (e *Engine) Degrees(g *core.Graph) ([]int, error) {
	if g == nil {
		return nil, fmt.Errorf("Degrees: %w", ErrGraphNil)
	}
	metrics.Computations.WithLabelValues("degree").Inc()

	return g.Degrees(), nil
}

// Eccentricity returns, per row of dist, the largest finite distance in the
// row. Sentinel entries (Unreachable of the column count) are ignored, so a
// vertex reaching nothing has eccentricity 0.
func (e *Engine) Eccentricity(dist *mat.Dense) []float64 {
	rows, cols := dist.Dims()
	sentinel := Unreachable(cols)
	out := make([]float64, rows)
	for r := 0; r < rows; r++ {
		var ecc float64
		for c := 0; c < cols; c++ {
			d := dist.At(r, c)
			if d >= sentinel {
				continue
			}
			if d > ecc {
				ecc = d
			}
		}
		out[r] = ecc
	}

	return out
}

// Closeness returns the closeness centrality of every vertex of g:
// (r-1)/farness, where r counts the vertices the vertex reaches (itself
// included) and farness sums their distances. Isolated vertices score 0.
// For directed graphs outgoing paths are used.
func (e *Engine) Closeness(g *core.Graph) ([]float64, error) {
	if g == nil {
		return nil, fmt.Errorf("Closeness: %w", ErrGraphNil)
	}
	n := g.VertexCount()
	out := make([]float64, n)
	if n == 0 {
		return out, nil
	}

	gg := toGonum(g)
	all, _ := path.FloydWarshall(gg)
	far := network.Farness(gg, all)
	for v := 0; v < n; v++ {
		reach := 0
		for u := 0; u < n; u++ {
			if !math.IsInf(all.Weight(int64(v), int64(u)), 0) {
				reach++
			}
		}
		if f := far[int64(v)]; f > 0 {
			out[v] = float64(reach-1) / f
		}
	}
	metrics.Computations.WithLabelValues("closeness").Inc()

	return out, nil
}

// Betweenness returns the shortest-path betweenness of every vertex of g.
// For undirected graphs each unordered pair is counted once.
func (e *Engine) Betweenness(g *core.Graph) ([]float64, error) {
	if g == nil {
		return nil, fmt.Errorf("Betweenness: %w", ErrGraphNil)
	}
	n := g.VertexCount()
	out := make([]float64, n)
	if n == 0 {
		return out, nil
	}

	scale := 1.0
	if !g.Directed() {
		scale = 0.5
	}
	for id, b := range network.Betweenness(toGonum(g)) {
		out[id] = b * scale
	}
	metrics.Computations.WithLabelValues("betweenness").Inc()

	return out, nil
}

// PageRank returns the PageRank of every vertex of g with the given damping
// factor. Undirected edges are followed both ways.
// Returns ErrInvalidDamping when damping is outside (0, 1].
func (e *Engine) PageRank(g *core.Graph, damping float64) ([]float64, error) {
	if g == nil {
		return nil, fmt.Errorf("PageRank: %w", ErrGraphNil)
	}
	if damping <= 0 || damping > 1 || math.IsNaN(damping) {
		return nil, fmt.Errorf("PageRank(damping=%g): %w", damping, ErrInvalidDamping)
	}
	n := g.VertexCount()
	out := make([]float64, n)
	if n == 0 {
		return out, nil
	}

	for id, r := range network.PageRank(toGonumDirected(g), damping, pageRankTolerance) {
		out[id] = r
	}
	metrics.Computations.WithLabelValues("pagerank").Inc()

	return out, nil
}
