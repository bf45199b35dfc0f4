// SPDX-License-Identifier: MIT
// impl_random_sparse.go: RandomSparse(n, p): Erdős–Rényi G(n, p).
//
// Trial order is fixed (i asc, then j asc; undirected uses j > i), so a fixed
// seed always yields the same edge set. p ∈ {0, 1} needs no random source.

package builder

import (
	"fmt"

	"github.com/mazzalab/pyntacle/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples n vertices and keeps each
// admissible pair independently with probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		idx, err := addVertices(methodRandomSparse, g, cfg, n)
		if err != nil {
			return err
		}
		directed := g.Directed()
		keep := func() bool {
			switch p {
			case probMin:
				return false
			case probMax:
				return true
			}
			return cfg.rng.Float64() < p
		}
		for i := 0; i < n; i++ {
			j0 := i + 1
			if directed {
				j0 = 0
			}
			for j := j0; j < n; j++ {
				if i == j || !keep() {
					continue
				}
				if err = connect(methodRandomSparse, g, cfg, idx[i], idx[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
