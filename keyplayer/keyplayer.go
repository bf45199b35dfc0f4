package keyplayer

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/mazzalab/pyntacle/core"
	"github.com/mazzalab/pyntacle/internal/metrics"
)

// Engine computes and caches key-player indices of one graph.
type Engine struct {
	g     *core.Graph
	topo  Topology
	log   *logrus.Logger
	cache *cache
}

// New returns an Engine over a structural copy of g.
// Returns ErrGraphSize if g is nil, has no vertices or has no edges.
func New(g *core.Graph, opts ...Option) (*Engine, error) {
	if err := validateGraph("New", g); err != nil {
		return nil, err
	}
	o := newOptions(opts...)

	return &Engine{
		g:     g.ShallowCopy(),
		topo:  o.topo,
		log:   o.log,
		cache: newCache(),
	}, nil
}

// SetGraph replaces the held graph and discards every cached index.
// With shallowCopy the engine keeps structure only (vertices, names, edges);
// otherwise it keeps a full clone including vertex metadata.
// Returns ErrGraphSize under the same rules as New; the engine is unchanged
// on error.
func (e *Engine) SetGraph(g *core.Graph, shallowCopy bool) error {
	if err := validateGraph("SetGraph", g); err != nil {
		return err
	}
	if shallowCopy {
		e.g = g.ShallowCopy()
	} else {
		e.g = g.Clone()
	}
	e.cache = newCache()
	e.log.WithFields(logrus.Fields{
		"vertices": e.g.VertexCount(),
		"edges":    e.g.EdgeCount(),
	}).Debug("keyplayer: graph replaced")

	return nil
}

// Graph returns the engine's copy of the graph. It must not be mutated.
func (e *Engine) Graph() *core.Graph { return e.g }

// Invalidate drops every cached index.
func (e *Engine) Invalidate() { e.cache = newCache() }

// F returns the fragmentation index in [0,1]: 0 for a connected graph, 1 when
// every vertex is isolated.
func (e *Engine) F(recalculate bool) (float64, error) {
	if !recalculate && e.cache.f.ok {
		e.hit(KindF)
		return e.cache.f.value, nil
	}
	sizes, err := e.topo.ComponentSizes(e.g)
	if err != nil {
		return 0, fmt.Errorf("F: %w", err)
	}
	v := Fragmentation(sizes, e.g.VertexCount())
	e.cache.f = cachedFloat{value: v, ok: true}
	e.computed(KindF, logrus.Fields{"components": len(sizes), "value": v})

	return v, nil
}

// DF returns the distance-weighted fragmentation index.
func (e *Engine) DF(recalculate bool) (float64, error) {
	if !recalculate && e.cache.df.ok {
		e.hit(KindDF)
		return e.cache.df.value, nil
	}
	dist, err := e.topo.ShortestPaths(e.g, nil)
	if err != nil {
		return 0, fmt.Errorf("DF: %w", err)
	}
	v := DistanceFragmentation(dist, e.g.Directed())
	e.cache.df = cachedFloat{value: v, ok: true}
	e.computed(KindDF, logrus.Fields{"value": v})

	return v, nil
}

// MReach returns the number of vertices outside kp within m hops of kp.
// Returns ErrInvalidArgument for m < 1 or an invalid kp-set, before any
// computation.
func (e *Engine) MReach(m int, kp []int, recalculate bool) (int, error) {
	if m < 1 {
		return 0, fmt.Errorf("MReach: m=%d < 1: %w", m, ErrInvalidArgument)
	}
	if err := validateKP("MReach", kp, e.g.VertexCount()); err != nil {
		return 0, err
	}
	key := mreachKey(m, kp)
	if v, ok := e.cache.mreach[key]; ok && !recalculate {
		e.hit(KindMReach)
		return v, nil
	}
	dist, err := e.topo.ShortestPaths(e.g, kp)
	if err != nil {
		return 0, fmt.Errorf("MReach: %w", err)
	}
	v := MReachFromMatrix(dist, kp, m)
	e.cache.mreach[key] = v
	e.computed(KindMReach, logrus.Fields{"m": m, "kp": key, "value": v})

	return v, nil
}

// DR returns the distance-weighted reach of kp.
// Returns ErrInvalidArgument for an invalid kp-set, before any computation.
func (e *Engine) DR(kp []int, recalculate bool) (float64, error) {
	if err := validateKP("DR", kp, e.g.VertexCount()); err != nil {
		return 0, err
	}
	key := kpKey(kp)
	if v, ok := e.cache.dr[key]; ok && !recalculate {
		e.hit(KindDR)
		return v, nil
	}
	dist, err := e.topo.ShortestPaths(e.g, kp)
	if err != nil {
		return 0, fmt.Errorf("DR: %w", err)
	}
	v := DistanceReachFromMatrix(dist, kp)
	e.cache.dr[key] = v
	e.computed(KindDR, logrus.Fields{"kp": key, "value": v})

	return v, nil
}

func (e *Engine) hit(k Kind) {
	metrics.CacheHits.WithLabelValues(k.String()).Inc()
	e.log.WithField("index", k.String()).Debug("keyplayer: cache hit")
}

func (e *Engine) computed(k Kind, fields logrus.Fields) {
	metrics.Computations.WithLabelValues(k.String()).Inc()
	fields["index"] = k.String()
	e.log.WithFields(fields).Debug("keyplayer: computed")
}
