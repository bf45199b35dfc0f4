package engine

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/graph/community"

	"github.com/mazzalab/pyntacle/core"
)

// Louvain partitions g into communities with gonum's Louvain modularisation
// at the given resolution. The seed fixes the node visiting order, so equal
// seeds give equal partitions. Groups are sorted and ordered by their
// smallest member.
// Returns ErrInvalidResolution for resolution <= 0.
func (e *Engine) Louvain(g *core.Graph, resolution float64, seed uint64) ([][]int, error) {
	if g == nil {
		return nil, fmt.Errorf("Louvain: %w", ErrGraphNil)
	}
	if !(resolution > 0) {
		return nil, fmt.Errorf("Louvain(resolution=%g): %w", resolution, ErrInvalidResolution)
	}
	if g.VertexCount() == 0 {
		return [][]int{}, nil
	}

	gg := toGonum(g)
	reduced := community.Modularize(gg, resolution, rand.NewSource(seed))
	groups := groupsOf(reduced.Communities())
	if e.log.IsLevelEnabled(logrus.DebugLevel) {
		e.log.WithFields(logrus.Fields{
			"communities": len(groups),
			"q":           community.Q(gg, reduced.Communities(), resolution),
			"seed":        seed,
		}).Debug("engine: louvain")
	}

	return groups, nil
}
