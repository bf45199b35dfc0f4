package modules

import (
	"errors"
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/mazzalab/pyntacle/core"
	"github.com/mazzalab/pyntacle/internal/logging"
	"github.com/mazzalab/pyntacle/keyplayer"
	"github.com/mazzalab/pyntacle/sparseness"
)

var (
	// ErrInvalidArgument indicates a bad graph, partition, module id or k.
	ErrInvalidArgument = errors.New("modules: invalid argument")

	// ErrMissingResult indicates a result that has not been computed.
	ErrMissingResult = errors.New("modules: result not computed")
)

// Partition lists the vertex indices of each group.
type Partition [][]int

// FromMembership converts a per-vertex group assignment into a Partition.
// Groups are ordered by group id; vertices with a negative id are left out.
func FromMembership(membership []int) Partition {
	byGroup := make(map[int][]int)
	for v, grp := range membership {
		if grp < 0 {
			continue
		}
		byGroup[grp] = append(byGroup[grp], v)
	}
	ids := make([]int, 0, len(byGroup))
	for id := range byGroup {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	p := make(Partition, len(ids))
	for i, id := range ids {
		p[i] = byGroup[id]
	}

	return p
}

// Module is one group of the partition with its induced subgraph.
// Vertex i of Graph is original vertex Vertices[i].
type Module struct {
	ID       int
	Vertices []int
	Graph    *core.Graph
}

// KPOptimizer searches a kp-set of size k in one graph.
// keyplayer.Greedy satisfies it.
type KPOptimizer interface {
	Optimize(g *core.Graph, k int) (keyplayer.Solution, error)
}

type options struct {
	minSize int
	log     *logrus.Logger
}

// Option configures an Orchestrator.
type Option func(*options)

// WithMinSize drops modules with fewer than n vertices.
func WithMinSize(n int) Option {
	return func(o *options) { o.minSize = n }
}

// WithLogger sets the logger for per-module tracing.
func WithLogger(log *logrus.Logger) Option {
	return func(o *options) { o.log = log }
}

// Orchestrator holds the modules of one graph and their results for a single
// analysis run.
type Orchestrator struct {
	g       *core.Graph
	modules []Module
	byID    map[int]int
	results map[int]map[sparseness.Measure]float64
	log     *logrus.Logger
}

// New validates p against g and materialises one Module per group of at least
// the minimum size. Returns ErrInvalidArgument for a nil graph, an index
// outside the graph, or a vertex assigned to more than one group.
func New(g *core.Graph, p Partition, opts ...Option) (*Orchestrator, error) {
	o := options{minSize: 1}
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		o.log = logging.Discard()
	}
	if g == nil {
		return nil, fmt.Errorf("New: nil graph: %w", ErrInvalidArgument)
	}

	n := g.VertexCount()
	owner := make(map[int]int, n)
	for id, grp := range p {
		for _, v := range grp {
			if v < 0 || v >= n {
				return nil, fmt.Errorf("New: module %d: index %d not in [0,%d): %w", id, v, n, ErrInvalidArgument)
			}
			if prev, dup := owner[v]; dup {
				return nil, fmt.Errorf("New: index %d in modules %d and %d: %w", v, prev, id, ErrInvalidArgument)
			}
			owner[v] = id
		}
	}

	orc := &Orchestrator{
		g:       g,
		byID:    make(map[int]int),
		results: make(map[int]map[sparseness.Measure]float64),
		log:     o.log,
	}
	for id, grp := range p {
		if len(grp) == 0 || len(grp) < o.minSize {
			orc.log.WithFields(logrus.Fields{"module": id, "size": len(grp), "min_size": o.minSize}).
				Debug("modules: dropped")
			continue
		}
		vertices := append([]int(nil), grp...)
		sort.Ints(vertices)
		sub, err := core.InducedSubgraph(g, vertices)
		if err != nil {
			return nil, fmt.Errorf("New: module %d: %w", id, err)
		}
		orc.byID[id] = len(orc.modules)
		orc.modules = append(orc.modules, Module{ID: id, Vertices: vertices, Graph: sub})
	}
	orc.log.WithFields(logrus.Fields{"groups": len(p), "modules": len(orc.modules)}).Info("modules: materialised")

	return orc, nil
}

// Modules returns the materialised modules in partition order.
func (o *Orchestrator) Modules() []Module {
	return append([]Module(nil), o.modules...)
}

// Module returns the module with the given id.
func (o *Orchestrator) Module(id int) (Module, error) {
	pos, ok := o.byID[id]
	if !ok {
		return Module{}, fmt.Errorf("Module(%d): %w", id, ErrInvalidArgument)
	}

	return o.modules[pos], nil
}

// Sparseness computes measure for every module and stores the results.
// An invalid measure fails with sparseness.ErrUnsupportedMeasure before any
// module is touched. Modules on which the index is undefined (too few
// vertices or edges) are logged and left without a result.
func (o *Orchestrator) Sparseness(measure sparseness.Measure) error {
	if !measure.Valid() {
		return fmt.Errorf("Sparseness(%v): %w", measure, sparseness.ErrUnsupportedMeasure)
	}
	for _, m := range o.modules {
		v, err := sparseness.Compute(m.Graph, measure)
		if errors.Is(err, sparseness.ErrGraphSize) {
			o.log.WithFields(logrus.Fields{"module": m.ID, "measure": measure.String()}).
				Warn("modules: index undefined for module")
			continue
		}
		if err != nil {
			return fmt.Errorf("Sparseness: module %d: %w", m.ID, err)
		}
		if o.results[m.ID] == nil {
			o.results[m.ID] = make(map[sparseness.Measure]float64)
		}
		o.results[m.ID][measure] = v
	}

	return nil
}

// Result returns the stored measure of module id.
// Returns ErrMissingResult when it was never computed.
func (o *Orchestrator) Result(id int, measure sparseness.Measure) (float64, error) {
	v, ok := o.results[id][measure]
	if !ok {
		return 0, fmt.Errorf("Result(%d, %v): %w", id, measure, ErrMissingResult)
	}

	return v, nil
}

// OptimizeKP runs optimizer with kp-set size k on each listed module, or on
// every module when ids is empty, and returns solutions keyed by module id
// with Set in original vertex indices. Modules with k or fewer vertices, or
// without edges, are skipped and logged.
// Returns ErrInvalidArgument for a nil optimizer, k < 1 or an unknown id.
func (o *Orchestrator) OptimizeKP(optimizer KPOptimizer, k int, ids ...int) (map[int]keyplayer.Solution, error) {
	if optimizer == nil {
		return nil, fmt.Errorf("OptimizeKP: nil optimizer: %w", ErrInvalidArgument)
	}
	if k < 1 {
		return nil, fmt.Errorf("OptimizeKP: k=%d: %w", k, ErrInvalidArgument)
	}
	targets := o.modules
	if len(ids) > 0 {
		targets = make([]Module, 0, len(ids))
		for _, id := range ids {
			m, err := o.Module(id)
			if err != nil {
				return nil, fmt.Errorf("OptimizeKP: %w", err)
			}
			targets = append(targets, m)
		}
	}

	out := make(map[int]keyplayer.Solution, len(targets))
	for _, m := range targets {
		if m.Graph.VertexCount() <= k || m.Graph.EdgeCount() == 0 {
			o.log.WithFields(logrus.Fields{"module": m.ID, "size": len(m.Vertices), "k": k}).
				Warn("modules: module too small for kp search")
			continue
		}
		sol, err := optimizer.Optimize(m.Graph, k)
		if err != nil {
			return nil, fmt.Errorf("OptimizeKP: module %d: %w", m.ID, err)
		}
		set := make([]int, len(sol.Set))
		for i, v := range sol.Set {
			set[i] = m.Vertices[v]
		}
		sort.Ints(set)
		sol.Set = set
		out[m.ID] = sol
		o.log.WithFields(logrus.Fields{
			"module": m.ID, "index": sol.Kind.String(), "set": set, "value": sol.Value,
		}).Debug("modules: kp-set found")
	}

	return out, nil
}
