// SPDX-License-Identifier: MIT
// impl_star.go: Star(n): the hub is the first vertex added, spokes run
// hub→leaf in leaf order.

package builder

import (
	"fmt"

	"github.com/mazzalab/pyntacle/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star with one hub and n-1 leaves
// (n ≥ 2).
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		idx, err := addVertices(methodStar, g, cfg, n)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err = connect(methodStar, g, cfg, idx[0], idx[i]); err != nil {
				return err
			}
		}

		return nil
	}
}
