package sparseness_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mazzalab/pyntacle/builder"
	"github.com/mazzalab/pyntacle/core"
	"github.com/mazzalab/pyntacle/sparseness"
)

func build(t *testing.T, gopts []core.GraphOption, cons ...builder.Constructor) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(gopts, nil, cons...)
	require.NoError(t, err)

	return g
}

func TestCompleteGraphsScoreOne(t *testing.T) {
	for n := 2; n <= 8; n++ {
		for _, directed := range []bool{false, true} {
			g := build(t, []core.GraphOption{core.WithDirected(directed)}, builder.Complete(n))

			naive, err := sparseness.CompletenessNaive(g)
			require.NoError(t, err)
			assert.Equal(t, 1.0, naive, "n=%d directed=%v", n, directed)

			c, err := sparseness.Completeness(g)
			require.NoError(t, err)
			assert.Equal(t, 1.0, c, "n=%d directed=%v", n, directed)
		}
	}
}

func TestPathValues(t *testing.T) {
	g := build(t, nil, builder.Path(5))
	tests := []struct {
		m    sparseness.Measure
		want float64
	}{
		{sparseness.MeasureCompletenessNaive, 0.66667},
		{sparseness.MeasureCompleteness, 0.11765},
		{sparseness.MeasureCompactness, 1.7},
		{sparseness.MeasureCompactnessCorrected, 0.58824},
	}
	for _, tt := range tests {
		t.Run(tt.m.String(), func(t *testing.T) {
			got, err := sparseness.Compute(g, tt.m)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCompactness_CorrectedIsReciprocal(t *testing.T) {
	ctors := []builder.Constructor{
		builder.Path(7), builder.Star(9), builder.Cycle(12), builder.DisjointPaths(3, 4, 5),
	}
	for _, c := range ctors {
		g := build(t, nil, c)
		n, e := float64(g.VertexCount()), float64(2*g.EdgeCount())

		raw, err := sparseness.Compactness(g, false)
		require.NoError(t, err)
		corrected, err := sparseness.Compactness(g, true)
		require.NoError(t, err)

		assert.InDelta(t, 1/((n*n/e-1)*(1-1/n)), corrected, 1e-5)
		assert.InDelta(t, 1/raw, corrected, 1e-4)
	}
}

func TestDirectedCounts(t *testing.T) {
	g := build(t, []core.GraphOption{core.WithDirected(true)}, builder.Path(4))
	// ones = 3, zeros = (12-3)/2
	naive, err := sparseness.CompletenessNaive(g)
	require.NoError(t, err)
	assert.Equal(t, 0.66667, naive)

	// z = 16 - 3: (16/13 - 1) / 3
	c, err := sparseness.Completeness(g)
	require.NoError(t, err)
	assert.Equal(t, 0.07692, c)

	// (16/3 - 1) * 0.75
	raw, err := sparseness.Compactness(g, false)
	require.NoError(t, err)
	assert.Equal(t, 3.25, raw)
}

func TestErrors(t *testing.T) {
	single := build(t, nil, builder.Isolated(1))
	empty := build(t, nil, builder.Isolated(4))

	_, err := sparseness.Completeness(single)
	require.ErrorIs(t, err, sparseness.ErrGraphSize)
	_, err = sparseness.CompletenessNaive(nil)
	require.ErrorIs(t, err, sparseness.ErrGraphSize)
	_, err = sparseness.Compactness(empty, false)
	require.ErrorIs(t, err, sparseness.ErrGraphSize)
	_, err = sparseness.Compute(empty, sparseness.Measure(9))
	require.ErrorIs(t, err, sparseness.ErrUnsupportedMeasure)
	_, err = sparseness.WeightedCompleteness(empty)
	require.ErrorIs(t, err, sparseness.ErrNotImplemented)

	// an edgeless graph is maximally sparse rather than an error
	c, err := sparseness.Completeness(empty)
	require.NoError(t, err)
	assert.Equal(t, 0.0, c)
}

func TestParseMeasure(t *testing.T) {
	for _, m := range sparseness.Measures() {
		got, err := sparseness.ParseMeasure(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
		assert.True(t, m.Valid())
	}
	got, err := sparseness.ParseMeasure(" Compactness ")
	require.NoError(t, err)
	assert.Equal(t, sparseness.MeasureCompactness, got)

	_, err = sparseness.ParseMeasure("density")
	require.ErrorIs(t, err, sparseness.ErrUnsupportedMeasure)
	assert.False(t, sparseness.Measure(-1).Valid())
}
