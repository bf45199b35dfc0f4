package topology

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/mazzalab/pyntacle/core"
	"github.com/mazzalab/pyntacle/engine"
	"github.com/mazzalab/pyntacle/internal/logging"
	"github.com/mazzalab/pyntacle/internal/metrics"
)

var (
	// ErrGraphSize indicates a nil graph or a graph without vertices.
	ErrGraphSize = errors.New("topology: graph must have at least one vertex")

	// ErrUnknownKind indicates an unrecognised index kind or name.
	ErrUnknownKind = errors.New("topology: unknown index")

	// ErrInvalidArgument indicates a vertex index outside the graph.
	ErrInvalidArgument = errors.New("topology: invalid argument")
)

// DefaultDamping is the PageRank damping factor used unless overridden.
const DefaultDamping = 0.85

// Option configures an Engine.
type Option func(*Engine)

// WithEngine replaces the default graph-engine collaborator.
func WithEngine(eng *engine.Engine) Option {
	return func(e *Engine) {
		if eng != nil {
			e.eng = eng
		}
	}
}

// WithDamping sets the PageRank damping factor.
func WithDamping(d float64) Option {
	return func(e *Engine) { e.damping = d }
}

// WithLogger sets the logger for cache tracing.
func WithLogger(log *logrus.Logger) Option {
	return func(e *Engine) {
		if log != nil {
			e.log = log
		}
	}
}

// Engine computes and caches topology indices of one graph. It is not safe
// for concurrent use.
type Engine struct {
	g       *core.Graph
	eng     *engine.Engine
	log     *logrus.Logger
	damping float64

	dist   *mat.Dense
	local  map[LocalKind][]float64
	global map[GlobalKind]float64
}

// New returns an Engine over a structural copy of g.
// Returns ErrGraphSize for a nil or empty graph.
func New(g *core.Graph, opts ...Option) (*Engine, error) {
	if g == nil || g.VertexCount() == 0 {
		return nil, fmt.Errorf("New: %w", ErrGraphSize)
	}
	e := &Engine{
		g:       g.ShallowCopy(),
		log:     logging.Discard(),
		damping: DefaultDamping,
		local:   make(map[LocalKind][]float64),
		global:  make(map[GlobalKind]float64),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.eng == nil {
		e.eng = engine.New(engine.WithLogger(e.log))
	}

	return e, nil
}

// Graph returns the engine's copy of the graph. It must not be mutated.
func (e *Engine) Graph() *core.Graph { return e.g }

// Invalidate drops every cached index and the distance matrix.
func (e *Engine) Invalidate() {
	e.dist = nil
	e.local = make(map[LocalKind][]float64)
	e.global = make(map[GlobalKind]float64)
}

// Local returns kind for the given vertices, in their order; nil nodes
// selects every vertex in index order.
// Returns ErrUnknownKind or ErrInvalidArgument before any computation.
func (e *Engine) Local(kind LocalKind, nodes []int, recalculate bool) ([]float64, error) {
	if kind < 0 || int(kind) >= len(localNames) {
		return nil, fmt.Errorf("Local(%v): %w", kind, ErrUnknownKind)
	}
	n := e.g.VertexCount()
	for _, v := range nodes {
		if v < 0 || v >= n {
			return nil, fmt.Errorf("Local(%v): index %d not in [0,%d): %w", kind, v, n, ErrInvalidArgument)
		}
	}

	all, ok := e.local[kind]
	if ok && !recalculate {
		metrics.CacheHits.WithLabelValues(kind.String()).Inc()
	} else {
		var err error
		if all, err = e.computeLocal(kind, recalculate); err != nil {
			return nil, fmt.Errorf("Local(%v): %w", kind, err)
		}
		e.local[kind] = all
		metrics.Computations.WithLabelValues(kind.String()).Inc()
		e.log.WithField("index", kind.String()).Debug("topology: computed")
	}

	if nodes == nil {
		return append([]float64(nil), all...), nil
	}
	out := make([]float64, len(nodes))
	for i, v := range nodes {
		out[i] = all[v]
	}

	return out, nil
}

// Global returns the whole-graph index kind.
// Returns ErrUnknownKind for an unrecognised kind.
func (e *Engine) Global(kind GlobalKind, recalculate bool) (float64, error) {
	if kind < 0 || int(kind) >= len(globalNames) {
		return 0, fmt.Errorf("Global(%v): %w", kind, ErrUnknownKind)
	}
	if v, ok := e.global[kind]; ok && !recalculate {
		metrics.CacheHits.WithLabelValues(kind.String()).Inc()
		return v, nil
	}
	v, err := e.computeGlobal(kind, recalculate)
	if err != nil {
		return 0, fmt.Errorf("Global(%v): %w", kind, err)
	}
	e.global[kind] = v
	metrics.Computations.WithLabelValues(kind.String()).Inc()
	e.log.WithFields(logrus.Fields{"index": kind.String(), "value": v}).Debug("topology: computed")

	return v, nil
}

// distances returns the cached all-pairs matrix, recomputing it on demand.
func (e *Engine) distances(recalculate bool) (*mat.Dense, error) {
	if e.dist != nil && !recalculate {
		return e.dist, nil
	}
	d, err := e.eng.ShortestPaths(e.g, nil)
	if err != nil {
		return nil, err
	}
	e.dist = d

	return d, nil
}

func (e *Engine) computeLocal(kind LocalKind, recalculate bool) ([]float64, error) {
	switch kind {
	case Degree:
		deg, err := e.eng.Degrees(e.g)
		if err != nil {
			return nil, err
		}
		out := make([]float64, len(deg))
		for i, d := range deg {
			out[i] = float64(d)
		}
		return out, nil
	case Closeness:
		return e.eng.Closeness(e.g)
	case Betweenness:
		return e.eng.Betweenness(e.g)
	case Eccentricity:
		dist, err := e.distances(recalculate)
		if err != nil {
			return nil, err
		}
		return e.eng.Eccentricity(dist), nil
	case Clustering:
		return clustering(e.g), nil
	case PageRank:
		return e.eng.PageRank(e.g, e.damping)
	default:
		dist, err := e.distances(recalculate)
		if err != nil {
			return nil, err
		}
		return radiality(dist), nil
	}
}

func (e *Engine) computeGlobal(kind GlobalKind, recalculate bool) (float64, error) {
	n := float64(e.g.VertexCount())
	switch kind {
	case Diameter, Radius:
		ecc, err := e.Local(Eccentricity, nil, recalculate)
		if err != nil {
			return 0, err
		}
		best := ecc[0]
		for _, v := range ecc[1:] {
			if (kind == Diameter && v > best) || (kind == Radius && v < best) {
				best = v
			}
		}
		return best, nil
	case AverageShortestPath:
		dist, err := e.distances(recalculate)
		if err != nil {
			return 0, err
		}
		return averageFinite(dist), nil
	case Density:
		if n < 2 {
			return 0, nil
		}
		pairs := n * (n - 1)
		if !e.g.Directed() {
			pairs /= 2
		}
		return float64(e.g.EdgeCount()) / pairs, nil
	case AverageDegree:
		deg, err := e.Local(Degree, nil, recalculate)
		if err != nil {
			return 0, err
		}
		return stat.Mean(deg, nil), nil
	case AverageClustering:
		cc, err := e.Local(Clustering, nil, recalculate)
		if err != nil {
			return 0, err
		}
		return stat.Mean(cc, nil), nil
	default:
		sizes, err := e.eng.ComponentSizes(e.g)
		if err != nil {
			return 0, err
		}
		return float64(len(sizes)), nil
	}
}
