package engine

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/mat"

	"github.com/mazzalab/pyntacle/bfs"
	"github.com/mazzalab/pyntacle/core"
	"github.com/mazzalab/pyntacle/internal/metrics"
)

// ShortestPaths returns the hop-count distance matrix of g. Row r holds the
// distances from sources[r] to every vertex; a nil or empty sources selects
// all vertices in index order, yielding the square all-pairs matrix.
// Unreachable pairs hold Unreachable(VertexCount()); the diagonal entry of a
// source is 0. For directed graphs distances follow edge direction.
//
// Returns ErrGraphNil, ErrEmptyGraph, or core.ErrIndexOutOfRange for a bad
// source index.
func (e *Engine) ShortestPaths(g *core.Graph, sources []int) (*mat.Dense, error) {
	if g == nil {
		return nil, fmt.Errorf("ShortestPaths: %w", ErrGraphNil)
	}
	n := g.VertexCount()
	if n == 0 {
		return nil, fmt.Errorf("ShortestPaths: %w", ErrEmptyGraph)
	}
	if len(sources) == 0 {
		sources = make([]int, n)
		for i := range sources {
			sources[i] = i
		}
	}
	for _, s := range sources {
		if s < 0 || s >= n {
			return nil, fmt.Errorf("ShortestPaths: source %d: %w", s, core.ErrIndexOutOfRange)
		}
	}

	start := time.Now()
	dist := mat.NewDense(len(sources), n, nil)
	switch e.mode {
	case ModeFloydWarshall:
		e.floydWarshall(g, sources, dist)
	case ModeParallel:
		if err := e.parallelBFS(g, sources, dist); err != nil {
			return nil, fmt.Errorf("ShortestPaths: %w", err)
		}
	default:
		adj := g.AdjacencyIndex()
		for r, s := range sources {
			fillRow(dist, r, bfs.HopDistances(adj, s))
		}
	}

	metrics.ShortestPathRuns.WithLabelValues(e.mode.String()).Inc()
	metrics.ShortestPathDuration.WithLabelValues(e.mode.String()).Observe(time.Since(start).Seconds())
	e.log.WithFields(logrus.Fields{
		"mode":     e.mode.String(),
		"rows":     len(sources),
		"vertices": n,
	}).Debug("engine: shortest paths")

	return dist, nil
}

func (e *Engine) floydWarshall(g *core.Graph, sources []int, dist *mat.Dense) {
	n := g.VertexCount()
	sentinel := Unreachable(n)
	all, _ := path.FloydWarshall(toGonum(g))
	for r, s := range sources {
		for j := 0; j < n; j++ {
			w := all.Weight(int64(s), int64(j))
			if w > float64(n) {
				w = sentinel
			}
			dist.Set(r, j, w)
		}
	}
}

// parallelBFS fills dist with one BFS per row, at most e.workers rows at a
// time. Rows are disjoint, so goroutines never write the same element.
func (e *Engine) parallelBFS(g *core.Graph, sources []int, dist *mat.Dense) error {
	adj := g.AdjacencyIndex()
	var eg errgroup.Group
	eg.SetLimit(e.workers)
	for r, s := range sources {
		r, s := r, s
		eg.Go(func() error {
			fillRow(dist, r, bfs.HopDistances(adj, s))
			return nil
		})
	}

	return eg.Wait()
}

// fillRow writes hop distances into row r, mapping bfs.Unreached to the
// sentinel.
func fillRow(dist *mat.Dense, r int, hops []int) {
	sentinel := Unreachable(len(hops))
	for j, d := range hops {
		if d == bfs.Unreached {
			dist.Set(r, j, sentinel)
			continue
		}
		dist.Set(r, j, float64(d))
	}
}
