package keyplayer

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/mat"

	"github.com/mazzalab/pyntacle/core"
	"github.com/mazzalab/pyntacle/engine"
	"github.com/mazzalab/pyntacle/internal/logging"
)

var (
	// ErrGraphSize indicates a graph on which key-player indices are undefined.
	ErrGraphSize = errors.New("keyplayer: graph must have at least one vertex and one edge")

	// ErrInvalidArgument indicates a bad kp-set, m, or k.
	ErrInvalidArgument = errors.New("keyplayer: invalid argument")
)

// Kind names a key-player index.
type Kind int

const (
	KindF Kind = iota
	KindDF
	KindMReach
	KindDR
)

var kindNames = [...]string{
	KindF:      "F",
	KindDF:     "dF",
	KindMReach: "m-reach",
	KindDR:     "dR",
}

// String returns the report name of k.
func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind maps a report name (case-sensitive, as returned by String) to a Kind.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return Kind(k), nil
		}
	}

	return 0, fmt.Errorf("ParseKind(%q): %w", s, ErrInvalidArgument)
}

// Topology is the graph-engine contract the indices are computed from.
// *engine.Engine satisfies it.
type Topology interface {
	ComponentSizes(g *core.Graph) ([]int, error)
	ShortestPaths(g *core.Graph, sources []int) (*mat.Dense, error)
}

// options collects the settings shared by New and GreedyOptimize.
type options struct {
	topo     Topology
	log      *logrus.Logger
	seed     uint64
	m        int
	maxIter  int
	restarts int
}

// Option configures an Engine or a greedy search.
type Option func(*options)

// Defaults for the greedy search.
const (
	DefaultM             = 1
	DefaultMaxIterations = 100
)

func newOptions(opts ...Option) options {
	o := options{
		m:        DefaultM,
		maxIter:  DefaultMaxIterations,
		restarts: 1,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		o.log = logging.Discard()
	}
	if o.topo == nil {
		o.topo = engine.New(engine.WithLogger(o.log))
	}

	return o
}

// WithTopology replaces the default engine.Engine collaborator.
func WithTopology(t Topology) Option {
	return func(o *options) { o.topo = t }
}

// WithLogger sets the logger for cache and search tracing.
func WithLogger(log *logrus.Logger) Option {
	return func(o *options) { o.log = log }
}

// WithSeed fixes the random start of the greedy search; 0 selects the default seed.
func WithSeed(seed uint64) Option {
	return func(o *options) { o.seed = seed }
}

// WithM sets the hop bound of m-reach for the greedy search.
func WithM(m int) Option {
	return func(o *options) { o.m = m }
}

// WithMaxIterations bounds the number of improving swaps per greedy run.
func WithMaxIterations(n int) Option {
	return func(o *options) { o.maxIter = n }
}

// WithRestarts runs the greedy search from n independent random starts and
// keeps the best solution. Values below 1 mean one start.
func WithRestarts(n int) Option {
	return func(o *options) { o.restarts = n }
}

// validateGraph applies the size precondition shared by New, SetGraph and
// GreedyOptimize.
func validateGraph(method string, g *core.Graph) error {
	if g == nil {
		return fmt.Errorf("%s: nil graph: %w", method, ErrGraphSize)
	}
	if g.VertexCount() == 0 || g.EdgeCount() == 0 {
		return fmt.Errorf("%s: %d vertices, %d edges: %w", method, g.VertexCount(), g.EdgeCount(), ErrGraphSize)
	}

	return nil
}

// validateKP checks that kp is a non-empty set of valid vertex indices.
func validateKP(method string, kp []int, n int) error {
	if len(kp) == 0 {
		return fmt.Errorf("%s: empty kp-set: %w", method, ErrInvalidArgument)
	}
	seen := make(map[int]struct{}, len(kp))
	for _, v := range kp {
		if v < 0 || v >= n {
			return fmt.Errorf("%s: index %d not in [0,%d): %w", method, v, n, ErrInvalidArgument)
		}
		if _, dup := seen[v]; dup {
			return fmt.Errorf("%s: index %d repeated: %w", method, v, ErrInvalidArgument)
		}
		seen[v] = struct{}{}
	}

	return nil
}
