package topology

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/mazzalab/pyntacle/core"
)

// clustering returns the local clustering coefficient of every vertex: the
// fraction of neighbour pairs that are adjacent. Direction is ignored.
// Vertices with fewer than two neighbours score 0.
func clustering(g *core.Graph) []float64 {
	n := g.VertexCount()
	adj := make([]map[int]struct{}, n)
	for i := range adj {
		adj[i] = make(map[int]struct{})
	}
	for _, e := range g.Edges() {
		adj[e.From][e.To] = struct{}{}
		adj[e.To][e.From] = struct{}{}
	}

	out := make([]float64, n)
	for v := 0; v < n; v++ {
		nb := make([]int, 0, len(adj[v]))
		for u := range adj[v] {
			nb = append(nb, u)
		}
		d := len(nb)
		if d < 2 {
			continue
		}
		links := 0
		for i := 0; i < d; i++ {
			for j := i + 1; j < d; j++ {
				if _, ok := adj[nb[i]][nb[j]]; ok {
					links++
				}
			}
		}
		out[v] = float64(links) / (float64(d*(d-1)) / 2)
	}

	return out
}

// radiality returns Σ_{u≠v reachable} (D + 1 − d(v,u)) / (N − 1) for every
// vertex v, where D is the diameter over reachable pairs.
func radiality(dist *mat.Dense) []float64 {
	n, _ := dist.Dims()
	out := make([]float64, n)
	if n < 2 {
		return out
	}
	sentinel := float64(n + 1)
	var diameter float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if d := dist.At(i, j); d < sentinel && d > diameter {
				diameter = d
			}
		}
	}
	for i := 0; i < n; i++ {
		var sum float64
		for j := 0; j < n; j++ {
			d := dist.At(i, j)
			if i == j || d >= sentinel {
				continue
			}
			sum += diameter + 1 - d
		}
		out[i] = sum / float64(n-1)
	}

	return out
}

// averageFinite returns the mean distance over ordered reachable pairs i≠j,
// or 0 when no pair is reachable.
func averageFinite(dist *mat.Dense) float64 {
	n, _ := dist.Dims()
	sentinel := float64(n + 1)
	var ds []float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if d := dist.At(i, j); i != j && d < sentinel {
				ds = append(ds, d)
			}
		}
	}
	if len(ds) == 0 {
		return 0
	}

	return stat.Mean(ds, nil)
}
