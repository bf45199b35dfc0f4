// SPDX-License-Identifier: MIT
// impl_path.go: Path(n), DisjointPaths(sizes...) and Isolated(n).
//
// Edges of a path are emitted (i-1)→i for i = 1..n-1.

package builder

import (
	"fmt"

	"github.com/mazzalab/pyntacle/core"
)

const (
	methodPath          = "Path"
	methodDisjointPaths = "DisjointPaths"
	methodIsolated      = "Isolated"
	minPathNodes        = 2
)

// Path returns a Constructor that builds a simple path P_n (n ≥ 2).
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		return buildPath(methodPath, g, cfg, n)
	}
}

// DisjointPaths returns a Constructor that builds one path per size, with no
// edges between paths. A size of 1 adds an isolated vertex.
func DisjointPaths(sizes ...int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		for _, n := range sizes {
			if n < 1 {
				return fmt.Errorf("%s: size=%d < 1: %w", methodDisjointPaths, n, ErrTooFewVertices)
			}
		}
		for _, n := range sizes {
			if err := buildPath(methodDisjointPaths, g, cfg, n); err != nil {
				return err
			}
		}

		return nil
	}
}

// Isolated returns a Constructor that adds n vertices without edges (n ≥ 1).
func Isolated(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < 1 {
			return fmt.Errorf("%s: n=%d < 1: %w", methodIsolated, n, ErrTooFewVertices)
		}
		_, err := addVertices(methodIsolated, g, cfg, n)

		return err
	}
}

func buildPath(method string, g *core.Graph, cfg builderConfig, n int) error {
	idx, err := addVertices(method, g, cfg, n)
	if err != nil {
		return err
	}
	for i := 1; i < n; i++ {
		if err = connect(method, g, cfg, idx[i-1], idx[i]); err != nil {
			return err
		}
	}

	return nil
}
