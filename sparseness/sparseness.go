package sparseness

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/mazzalab/pyntacle/core"
	"github.com/mazzalab/pyntacle/internal/metrics"
)

var (
	// ErrGraphSize indicates a graph on which an index divides by zero.
	ErrGraphSize = errors.New("sparseness: graph too small for index")

	// ErrUnsupportedMeasure indicates an unknown measure name or value.
	ErrUnsupportedMeasure = errors.New("sparseness: unsupported measure")

	// ErrNotImplemented marks the weighted completeness extension point.
	ErrNotImplemented = errors.New("sparseness: not implemented")
)

// precision is the fixed rounding scale of every index.
const precision = 1e5

// Measure selects a sparseness index.
type Measure int

const (
	MeasureCompletenessNaive Measure = iota
	MeasureCompleteness
	MeasureCompactness
	MeasureCompactnessCorrected
)

var measureNames = [...]string{
	MeasureCompletenessNaive:    "completeness_naive",
	MeasureCompleteness:         "completeness",
	MeasureCompactness:          "compactness",
	MeasureCompactnessCorrected: "compactness_corrected",
}

// String returns the report name of m.
func (m Measure) String() string {
	if m >= 0 && int(m) < len(measureNames) {
		return measureNames[m]
	}

	return fmt.Sprintf("Measure(%d)", int(m))
}

// Valid reports whether m names a known index.
func (m Measure) Valid() bool {
	return m >= 0 && int(m) < len(measureNames)
}

// ParseMeasure maps a report name (case-insensitive) to a Measure.
func ParseMeasure(name string) (Measure, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for m, s := range measureNames {
		if s == n {
			return Measure(m), nil
		}
	}

	return 0, fmt.Errorf("ParseMeasure(%q): %w", name, ErrUnsupportedMeasure)
}

// Measures returns every supported measure in declaration order.
func Measures() []Measure {
	out := make([]Measure, len(measureNames))
	for i := range out {
		out[i] = Measure(i)
	}

	return out
}

// Compute dispatches to the index selected by m.
func Compute(g *core.Graph, m Measure) (float64, error) {
	switch m {
	case MeasureCompletenessNaive:
		return CompletenessNaive(g)
	case MeasureCompleteness:
		return Completeness(g)
	case MeasureCompactness:
		return Compactness(g, false)
	case MeasureCompactnessCorrected:
		return Compactness(g, true)
	}

	return 0, fmt.Errorf("Compute(%v): %w", m, ErrUnsupportedMeasure)
}

// counts returns N, E and directedness, rejecting nil graphs.
func counts(method string, g *core.Graph) (n, e float64, directed bool, err error) {
	if g == nil {
		return 0, 0, false, fmt.Errorf("%s: nil graph: %w", method, ErrGraphSize)
	}

	return float64(g.VertexCount()), float64(g.EdgeCount()), g.Directed(), nil
}

// CompletenessNaive returns the ratio of realised adjacency entries to
// missing ones; exactly 1 when nothing is missing.
// Returns ErrGraphSize for nil graphs or graphs with fewer than two vertices.
func CompletenessNaive(g *core.Graph) (float64, error) {
	n, e, directed, err := counts("CompletenessNaive", g)
	if err != nil {
		return 0, err
	}
	if n < 2 {
		return 0, fmt.Errorf("CompletenessNaive: N=%g: %w", n, ErrGraphSize)
	}
	ones := e
	if !directed {
		ones *= 2
	}
	zeros := n*(n-1) - ones
	if directed {
		zeros /= 2
	}
	metrics.Computations.WithLabelValues(MeasureCompletenessNaive.String()).Inc()
	if zeros <= 0 {
		return 1, nil
	}

	return round(ones / zeros), nil
}

// Completeness returns (N²/z − 1)/(N − 1), with z the number of zero entries
// of the adjacency matrix (N² − 2E undirected, N² − E directed). It is 0 for
// an edgeless graph and 1 for a complete one; z == 0 also yields 1.
// Returns ErrGraphSize for nil graphs or graphs with fewer than two vertices.
func Completeness(g *core.Graph) (float64, error) {
	n, e, directed, err := counts("Completeness", g)
	if err != nil {
		return 0, err
	}
	if n < 2 {
		return 0, fmt.Errorf("Completeness: N=%g: %w", n, ErrGraphSize)
	}
	ones := e
	if !directed {
		ones *= 2
	}
	z := n*n - ones
	metrics.Computations.WithLabelValues(MeasureCompleteness.String()).Inc()
	if z <= 0 {
		return 1, nil
	}

	return round((n*n/z - 1) / (n - 1)), nil
}

// Compactness returns (N²/E' − 1)(1 − 1/N), or the product of the two
// reciprocal factors when correct is set.
// Returns ErrGraphSize for nil graphs, graphs with fewer than two vertices,
// or graphs without edges.
func Compactness(g *core.Graph, correct bool) (float64, error) {
	n, e, directed, err := counts("Compactness", g)
	if err != nil {
		return 0, err
	}
	if n < 2 || e == 0 {
		return 0, fmt.Errorf("Compactness: N=%g E=%g: %w", n, e, ErrGraphSize)
	}
	if !directed {
		e *= 2
	}
	density := n*n/e - 1
	size := 1 - 1/n
	if correct {
		metrics.Computations.WithLabelValues(MeasureCompactnessCorrected.String()).Inc()
		return round((1 / density) * (1 / size)), nil
	}
	metrics.Computations.WithLabelValues(MeasureCompactness.String()).Inc()

	return round(density * size), nil
}

// WeightedCompleteness is the placeholder for a completeness index over edge
// weights; it always returns ErrNotImplemented.
func WeightedCompleteness(g *core.Graph) (float64, error) {
	return 0, fmt.Errorf("WeightedCompleteness: %w", ErrNotImplemented)
}

func round(x float64) float64 {
	return math.Round(x*precision) / precision
}
