// SPDX-License-Identifier: MIT
// impl_cycle.go: Cycle(n): edges i→(i+1) mod n, emitted for i ascending.

package builder

import (
	"fmt"

	"github.com/mazzalab/pyntacle/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds a simple cycle C_n (n ≥ 3).
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		idx, err := addVertices(methodCycle, g, cfg, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err = connect(methodCycle, g, cfg, idx[i], idx[(i+1)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}
