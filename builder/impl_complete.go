// SPDX-License-Identifier: MIT
// impl_complete.go: Complete(n): undirected graphs get every pair i<j once;
// directed graphs get both arcs i→j and j→i.

package builder

import (
	"fmt"

	"github.com/mazzalab/pyntacle/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete simple graph K_n
// (n ≥ 1).
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		idx, err := addVertices(methodComplete, g, cfg, n)
		if err != nil {
			return err
		}
		directed := g.Directed()
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err = connect(methodComplete, g, cfg, idx[i], idx[j]); err != nil {
					return err
				}
				if directed {
					if err = connect(methodComplete, g, cfg, idx[j], idx[i]); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
