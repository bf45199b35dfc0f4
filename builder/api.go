// SPDX-License-Identifier: MIT
// api.go: the BuildGraph orchestrator and the Constructor contract.
//
// Each Constructor:
//   - validates its parameters before mutating the graph,
//   - adds vertices through cfg.idFn, continuing after the vertices already
//     present so composed constructors never share IDs,
//   - emits edges in a stable documented order.

package builder

import (
	"fmt"

	"github.com/mazzalab/pyntacle/core"
)

// Constructor applies a deterministic mutation to g using the resolved
// builderConfig.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a core.Graph with gopts, resolves bopts and applies cons
// in order. The first constructor error is returned wrapped as
// "BuildGraph: %w"; no partial graph is returned.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// addVertices appends n fresh vertices named by cfg.idFn, starting at the
// graph's current vertex count, and returns their indices.
func addVertices(method string, g *core.Graph, cfg builderConfig, n int) ([]int, error) {
	base := g.VertexCount()
	idx := make([]int, n)
	for i := 0; i < n; i++ {
		id := cfg.idFn(base + i)
		v, err := g.AddVertex(id)
		if err != nil {
			return nil, fmt.Errorf("%s: AddVertex(%s): %w", method, id, err)
		}
		idx[i] = v
	}

	return idx, nil
}

// connect adds the edge u→v with the configured weight.
func connect(method string, g *core.Graph, cfg builderConfig, u, v int) error {
	w := cfg.weight(g.Weighted())
	if _, err := g.AddEdgeIndex(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%d→%d, w=%g): %w", method, u, v, w, err)
	}

	return nil
}
