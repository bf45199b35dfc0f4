package graphio_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mazzalab/pyntacle/builder"
	"github.com/mazzalab/pyntacle/core"
	"github.com/mazzalab/pyntacle/graphio"
)

func TestReadEdgeList(t *testing.T) {
	in := `# toy network
source target
a b
b c

c d
e
`
	g, err := graphio.ReadEdgeList(strings.NewReader(in), graphio.SkipHeader())
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, g.Vertices())
	assert.Equal(t, 3, g.EdgeCount())
	assert.False(t, g.Directed())
	assert.Equal(t, []int{1, 2, 2, 1, 0}, g.Degrees())
}

func TestReadEdgeList_Weighted(t *testing.T) {
	g, err := graphio.ReadEdgeList(strings.NewReader("a b 2.5\nb c\n"), graphio.Weighted(), graphio.Directed())
	require.NoError(t, err)
	require.True(t, g.Directed())
	e, err := g.Edge(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 2.5, e.Weight)
	e, err = g.Edge(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 1.0, e.Weight)
	assert.False(t, g.HasEdge(1, 0))
}

func TestReadEdgeList_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		opts []graphio.Option
		want error
	}{
		{"too many fields", "a b c d\n", nil, graphio.ErrMalformedLine},
		{"weight on unweighted", "a b 3\n", nil, graphio.ErrMalformedLine},
		{"bad weight", "a b x\n", []graphio.Option{graphio.Weighted()}, graphio.ErrMalformedLine},
		{"self loop", "a a\n", nil, core.ErrLoopNotAllowed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := graphio.ReadEdgeList(strings.NewReader(tt.in), tt.opts...)
			require.ErrorIs(t, err, tt.want)
			assert.Contains(t, err.Error(), "line ")
		})
	}
}

func TestReadEdgeList_DuplicatesSkipped(t *testing.T) {
	log, hook := logtest.NewNullLogger()
	g, err := graphio.ReadEdgeList(strings.NewReader("a b\nb a\nb c\na b\n"), graphio.WithLogger(log))
	require.NoError(t, err)
	assert.Equal(t, 2, g.EdgeCount())
	assert.Equal(t, []int{1, 2, 1}, g.Degrees())

	var warned []int
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.WarnLevel {
			warned = append(warned, e.Data["line"].(int))
		}
	}
	assert.Equal(t, []int{2, 4}, warned)

	g, err = graphio.ReadEdgeList(strings.NewReader("a b\nb a\na b\n"), graphio.Directed())
	require.NoError(t, err)
	assert.Equal(t, 2, g.EdgeCount())
}

func TestWriteEdgeList_RoundTrip(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Star(4), builder.Isolated(2))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, graphio.WriteEdgeList(&buf, g))
	back, err := graphio.ReadEdgeList(&buf)
	require.NoError(t, err)

	assert.Equal(t, g.Vertices(), back.Vertices())
	assert.Equal(t, g.Degrees(), back.Degrees())
}
