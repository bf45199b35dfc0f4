package keyplayer

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/mazzalab/pyntacle/core"
	"github.com/mazzalab/pyntacle/internal/metrics"
)

// improvementEpsilon is the smallest gain that counts as an improving swap.
const improvementEpsilon = 1e-12

// Solution is the outcome of a kp-set search.
type Solution struct {
	Kind  Kind
	Set   []int   // sorted vertex indices
	Value float64 // index value of Set
}

// GreedyOptimize searches for a kp-set of size k maximising kind.
//
// Each run starts from a seeded random k-subset and repeatedly applies the
// single member swap with the largest gain, stopping when no swap improves
// the value or after WithMaxIterations swaps. WithRestarts runs several
// starts on derived seeds and keeps the best. The result is deterministic for
// a fixed seed.
//
// Returns ErrGraphSize for an unusable graph and ErrInvalidArgument for
// k outside [1, N), m < 1, or an unknown kind.
func GreedyOptimize(g *core.Graph, k int, kind Kind, opts ...Option) (Solution, error) {
	if err := validateGraph("GreedyOptimize", g); err != nil {
		return Solution{}, err
	}
	n := g.VertexCount()
	if k < 1 || k >= n {
		return Solution{}, fmt.Errorf("GreedyOptimize: k=%d not in [1,%d): %w", k, n, ErrInvalidArgument)
	}
	if kind < KindF || kind > KindDR {
		return Solution{}, fmt.Errorf("GreedyOptimize: %v: %w", kind, ErrInvalidArgument)
	}
	o := newOptions(opts...)
	if kind == KindMReach && o.m < 1 {
		return Solution{}, fmt.Errorf("GreedyOptimize: m=%d < 1: %w", o.m, ErrInvalidArgument)
	}

	s := &search{g: g, n: n, kind: kind, o: o}
	restarts := o.restarts
	if restarts < 1 {
		restarts = 1
	}
	seed := o.seed
	if seed == 0 {
		seed = defaultRNGSeed
	}

	var best Solution
	for r := 0; r < restarts; r++ {
		runSeed := seed
		if r > 0 {
			runSeed = deriveSeed(seed, uint64(r))
		}
		sol, err := s.run(k, runSeed)
		if err != nil {
			return Solution{}, err
		}
		if r == 0 || sol.Value > best.Value+improvementEpsilon {
			best = sol
		}
	}
	metrics.Computations.WithLabelValues("greedy_" + kind.String()).Inc()

	return best, nil
}

// search carries the fixed inputs of one GreedyOptimize call.
type search struct {
	g    *core.Graph
	n    int
	kind Kind
	o    options
}

func (s *search) run(k int, seed uint64) (Solution, error) {
	rng := rngFromSeed(seed)
	set := rng.Perm(s.n)[:k]
	sort.Ints(set)
	value, err := s.evaluate(set)
	if err != nil {
		return Solution{}, err
	}
	s.o.log.WithFields(logrus.Fields{
		"index": s.kind.String(), "seed": seed, "start": set, "value": value,
	}).Debug("keyplayer: greedy start")

	for iter := 0; iter < s.o.maxIter; iter++ {
		inSet := membership(set, s.n)
		bestPos, bestVertex, bestValue := -1, -1, value
		for pos := range set {
			for v := 0; v < s.n; v++ {
				if inSet[v] {
					continue
				}
				cand := append([]int(nil), set...)
				cand[pos] = v
				cv, err := s.evaluate(cand)
				if err != nil {
					return Solution{}, err
				}
				if cv > bestValue+improvementEpsilon {
					bestPos, bestVertex, bestValue = pos, v, cv
				}
			}
		}
		if bestPos < 0 {
			break
		}
		set[bestPos] = bestVertex
		sort.Ints(set)
		value = bestValue
		s.o.log.WithFields(logrus.Fields{
			"index": s.kind.String(), "iteration": iter + 1, "set": set, "value": value,
		}).Debug("keyplayer: greedy swap")
	}

	return Solution{Kind: s.kind, Set: set, Value: value}, nil
}

// evaluate scores a candidate kp-set. Fragmentation kinds are measured on the
// graph without the set, reach kinds from the set itself.
func (s *search) evaluate(set []int) (float64, error) {
	switch s.kind {
	case KindF, KindDF:
		rest, _, err := core.RemoveVertices(s.g, set)
		if err != nil {
			return 0, err
		}
		if s.kind == KindF {
			sizes, err := s.o.topo.ComponentSizes(rest)
			if err != nil {
				return 0, err
			}
			return Fragmentation(sizes, rest.VertexCount()), nil
		}
		dist, err := s.o.topo.ShortestPaths(rest, nil)
		if err != nil {
			return 0, err
		}
		return DistanceFragmentation(dist, rest.Directed()), nil
	case KindMReach:
		dist, err := s.o.topo.ShortestPaths(s.g, set)
		if err != nil {
			return 0, err
		}
		return float64(MReachFromMatrix(dist, set, s.o.m)), nil
	default:
		dist, err := s.o.topo.ShortestPaths(s.g, set)
		if err != nil {
			return 0, err
		}
		return DistanceReachFromMatrix(dist, set), nil
	}
}

// Greedy adapts GreedyOptimize to per-graph optimizers such as the module
// orchestrator's.
type Greedy struct {
	Kind    Kind
	Options []Option
}

// Optimize runs GreedyOptimize on g with the adapter's kind and options.
func (gr Greedy) Optimize(g *core.Graph, k int) (Solution, error) {
	return GreedyOptimize(g, k, gr.Kind, gr.Options...)
}
