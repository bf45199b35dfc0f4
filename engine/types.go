package engine

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/mazzalab/pyntacle/internal/logging"
)

var (
	// ErrGraphNil indicates a nil *core.Graph argument.
	ErrGraphNil = errors.New("engine: graph is nil")

	// ErrEmptyGraph indicates a graph with no vertices where a matrix is required.
	ErrEmptyGraph = errors.New("engine: graph has no vertices")

	// ErrUnknownMode indicates an unrecognised shortest-path mode name.
	ErrUnknownMode = errors.New("engine: unknown shortest-path mode")

	// ErrInvalidDamping indicates a PageRank damping factor outside (0, 1].
	ErrInvalidDamping = errors.New("engine: damping must be in (0, 1]")

	// ErrInvalidResolution indicates a non-positive Louvain resolution.
	ErrInvalidResolution = errors.New("engine: resolution must be > 0")
)

// Mode selects the shortest-path implementation.
type Mode int

const (
	ModeBFS Mode = iota
	ModeFloydWarshall
	ModeParallel
)

var modeNames = map[Mode]string{
	ModeBFS:           "bfs",
	ModeFloydWarshall: "floyd-warshall",
	ModeParallel:      "parallel",
}

// String returns the configuration name of m.
func (m Mode) String() string {
	if s, ok := modeNames[m]; ok {
		return s
	}

	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode maps a configuration name ("bfs", "floyd-warshall", "parallel")
// to a Mode. Matching is case-insensitive; "" selects ModeBFS.
func ParseMode(s string) (Mode, error) {
	if s == "" {
		return ModeBFS, nil
	}
	name := strings.ToLower(strings.TrimSpace(s))
	for m, n := range modeNames {
		if n == name {
			return m, nil
		}
	}

	return ModeBFS, fmt.Errorf("ParseMode(%q): %w", s, ErrUnknownMode)
}

// Engine computes structural quantities of core graphs. It holds no per-graph
// state, so one Engine may serve any number of graphs and goroutines.
type Engine struct {
	mode    Mode
	workers int
	log     *logrus.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithMode selects the shortest-path implementation.
func WithMode(m Mode) Option {
	return func(e *Engine) { e.mode = m }
}

// WithWorkers bounds the number of concurrent BFS rows in ModeParallel.
// Values below 1 fall back to runtime.NumCPU().
func WithWorkers(n int) Option {
	return func(e *Engine) { e.workers = n }
}

// WithLogger sets the logger used for debug tracing.
func WithLogger(log *logrus.Logger) Option {
	return func(e *Engine) {
		if log != nil {
			e.log = log
		}
	}
}

// New returns an Engine in ModeBFS unless overridden by opts.
func New(opts ...Option) *Engine {
	e := &Engine{mode: ModeBFS, log: logging.Discard()}
	for _, opt := range opts {
		opt(e)
	}
	if e.workers < 1 {
		e.workers = runtime.NumCPU()
	}

	return e
}

// Mode reports the configured shortest-path mode.
func (e *Engine) Mode() Mode { return e.mode }

// Unreachable returns the distance sentinel for a graph with n vertices.
func Unreachable(n int) float64 { return float64(n + 1) }
