package engine

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/mazzalab/pyntacle/core"
)

// Components returns the connected components of g as sorted vertex-index
// groups ordered by their smallest member. Directed graphs are decomposed
// into weakly connected components. The groups partition [0, VertexCount).
func (e *Engine) Components(g *core.Graph) ([][]int, error) {
	if g == nil {
		return nil, fmt.Errorf("Components: %w", ErrGraphNil)
	}
	if g.VertexCount() == 0 {
		return [][]int{}, nil
	}

	groups := groupsOf(topo.ConnectedComponents(toUndirected(g)))
	e.log.WithFields(logrus.Fields{
		"vertices":   g.VertexCount(),
		"components": len(groups),
	}).Debug("engine: components")

	return groups, nil
}

// ComponentSizes returns the size of every connected component of g.
func (e *Engine) ComponentSizes(g *core.Graph) ([]int, error) {
	groups, err := e.Components(g)
	if err != nil {
		return nil, err
	}
	sizes := make([]int, len(groups))
	for i, grp := range groups {
		sizes[i] = len(grp)
	}

	return sizes, nil
}

func sortInts(a []int) { sort.Ints(a) }

func sortGroups(groups [][]int) {
	sort.Slice(groups, func(i, j int) bool {
		if len(groups[i]) == 0 || len(groups[j]) == 0 {
			return len(groups[i]) > len(groups[j])
		}

		return groups[i][0] < groups[j][0]
	})
}
