package keyplayer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/mazzalab/pyntacle/builder"
	"github.com/mazzalab/pyntacle/core"
	"github.com/mazzalab/pyntacle/engine"
	"github.com/mazzalab/pyntacle/keyplayer"
)

// countingTopology records how often the engine asks for structure.
type countingTopology struct {
	inner      keyplayer.Topology
	components int
	paths      int
}

func (c *countingTopology) ComponentSizes(g *core.Graph) ([]int, error) {
	c.components++
	return c.inner.ComponentSizes(g)
}

func (c *countingTopology) ShortestPaths(g *core.Graph, sources []int) (*mat.Dense, error) {
	c.paths++
	return c.inner.ShortestPaths(g, sources)
}

func newCounting() *countingTopology {
	return &countingTopology{inner: engine.New()}
}

func build(t *testing.T, gopts []core.GraphOption, cons ...builder.Constructor) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(gopts, nil, cons...)
	require.NoError(t, err)

	return g
}

func TestPathGraphIndices(t *testing.T) {
	kp, err := keyplayer.New(build(t, nil, builder.Path(5)))
	require.NoError(t, err)

	f, err := kp.F(false)
	require.NoError(t, err)
	assert.Equal(t, 0.0, f)

	reach, err := kp.MReach(1, []int{2}, false)
	require.NoError(t, err)
	assert.Equal(t, 2, reach)

	dr, err := kp.DR([]int{2}, false)
	require.NoError(t, err)
	assert.InDelta(t, 0.6, dr, 1e-12)
}

func TestF(t *testing.T) {
	tests := []struct {
		name string
		ctor builder.Constructor
		want float64
	}{
		{"cycle is connected", builder.Cycle(6), 0},
		{"complete is connected", builder.Complete(4), 0},
		{"two pairs", builder.DisjointPaths(2, 2), 1 - 4.0/12.0},
		{"one edge among singletons", builder.DisjointPaths(2, 1, 1, 1), 1 - 2.0/20.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kp, err := keyplayer.New(build(t, nil, tt.ctor))
			require.NoError(t, err)
			f, err := kp.F(false)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, f, 1e-12)
		})
	}
}

func TestF_ApproachesOneAsComponentsShrink(t *testing.T) {
	prev := -1.0
	for _, isolated := range []int{1, 5, 20, 100} {
		kp, err := keyplayer.New(build(t, nil, builder.Path(2), builder.Isolated(isolated)))
		require.NoError(t, err)
		f, err := kp.F(false)
		require.NoError(t, err)
		assert.Greater(t, f, prev)
		assert.Less(t, f, 1.0)
		prev = f
	}
	assert.Greater(t, prev, 0.999)
}

func TestDF(t *testing.T) {
	tests := []struct {
		name  string
		gopts []core.GraphOption
		ctor  builder.Constructor
		want  float64
	}{
		{"path of three", nil, builder.Path(3), 1.0 / 6.0},
		{"unreachable pairs add nothing", nil, builder.DisjointPaths(2, 2), 2.0 / 3.0},
		{"complete", nil, builder.Complete(5), 0},
		{"directed path uses ordered pairs", []core.GraphOption{core.WithDirected(true)}, builder.Path(3), 7.0 / 12.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kp, err := keyplayer.New(build(t, tt.gopts, tt.ctor))
			require.NoError(t, err)
			df, err := kp.DF(false)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, df, 1e-12)
		})
	}
}

func TestMReach_EqualsDegreeForMOne(t *testing.T) {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(3)}, builder.RandomSparse(25, 0.15))
	require.NoError(t, err)
	kp, err := keyplayer.New(g)
	require.NoError(t, err)

	deg := g.Degrees()
	for v := 0; v < g.VertexCount(); v++ {
		reach, err := kp.MReach(1, []int{v}, false)
		require.NoError(t, err)
		assert.Equal(t, deg[v], reach, "vertex %d", v)
	}
}

func TestMReach_NoDoubleCounting(t *testing.T) {
	kp, err := keyplayer.New(build(t, nil, builder.Cycle(6)))
	require.NoError(t, err)

	// 0 and 2 share neighbour 1; reach within one hop is {1, 3, 5}.
	reach, err := kp.MReach(1, []int{0, 2}, false)
	require.NoError(t, err)
	assert.Equal(t, 3, reach)

	reach, err = kp.MReach(3, []int{0}, false)
	require.NoError(t, err)
	assert.Equal(t, 5, reach)
}

func TestDR_UnreachableAddsNothing(t *testing.T) {
	kp, err := keyplayer.New(build(t, nil, builder.DisjointPaths(3, 2)))
	require.NoError(t, err)
	dr, err := kp.DR([]int{0}, false)
	require.NoError(t, err)
	assert.InDelta(t, (1+0.5)/5.0, dr, 1e-12)
}

func TestInvalidKPSet(t *testing.T) {
	counter := newCounting()
	kp, err := keyplayer.New(build(t, nil, builder.Path(5)), keyplayer.WithTopology(counter))
	require.NoError(t, err)

	for _, bad := range [][]int{{5}, {-1}, {1, 1}, {}} {
		_, err = kp.MReach(1, bad, false)
		require.ErrorIs(t, err, keyplayer.ErrInvalidArgument)
		_, err = kp.DR(bad, false)
		require.ErrorIs(t, err, keyplayer.ErrInvalidArgument)
	}
	_, err = kp.MReach(0, []int{1}, false)
	require.ErrorIs(t, err, keyplayer.ErrInvalidArgument)

	assert.Zero(t, counter.paths)
}

func TestCaching(t *testing.T) {
	counter := newCounting()
	kp, err := keyplayer.New(build(t, nil, builder.Path(5)), keyplayer.WithTopology(counter))
	require.NoError(t, err)

	first, err := kp.DR([]int{1, 3}, false)
	require.NoError(t, err)
	again, err := kp.DR([]int{3, 1}, false)
	require.NoError(t, err)
	assert.Equal(t, first, again)
	assert.Equal(t, 1, counter.paths)

	_, err = kp.DR([]int{1, 3}, true)
	require.NoError(t, err)
	assert.Equal(t, 2, counter.paths)

	_, err = kp.MReach(1, []int{2}, false)
	require.NoError(t, err)
	_, err = kp.MReach(1, []int{2}, false)
	require.NoError(t, err)
	_, err = kp.MReach(2, []int{2}, false)
	require.NoError(t, err)
	assert.Equal(t, 4, counter.paths)

	_, err = kp.F(false)
	require.NoError(t, err)
	_, err = kp.F(false)
	require.NoError(t, err)
	assert.Equal(t, 1, counter.components)

	kp.Invalidate()
	_, err = kp.F(false)
	require.NoError(t, err)
	assert.Equal(t, 2, counter.components)
}

func TestSetGraph(t *testing.T) {
	kp, err := keyplayer.New(build(t, nil, builder.Path(5)))
	require.NoError(t, err)
	f, err := kp.F(false)
	require.NoError(t, err)
	require.Equal(t, 0.0, f)

	split := build(t, nil, builder.DisjointPaths(2, 2))
	require.NoError(t, split.SetVertexAttr(0, "score", 1.5))

	require.NoError(t, kp.SetGraph(split, true))
	f, err = kp.F(false)
	require.NoError(t, err)
	assert.InDelta(t, 2.0/3.0, f, 1e-12)
	_, ok := kp.Graph().VertexAttr(0, "score")
	assert.False(t, ok)

	require.NoError(t, kp.SetGraph(split, false))
	v, ok := kp.Graph().VertexAttr(0, "score")
	assert.True(t, ok)
	assert.Equal(t, 1.5, v)

	require.ErrorIs(t, kp.SetGraph(build(t, nil, builder.Isolated(3)), true), keyplayer.ErrGraphSize)
	assert.Equal(t, 4, kp.Graph().VertexCount())
}

func TestNew_SizeErrors(t *testing.T) {
	_, err := keyplayer.New(nil)
	require.ErrorIs(t, err, keyplayer.ErrGraphSize)
	_, err = keyplayer.New(core.NewGraph())
	require.ErrorIs(t, err, keyplayer.ErrGraphSize)
	_, err = keyplayer.New(build(t, nil, builder.Isolated(4)))
	require.ErrorIs(t, err, keyplayer.ErrGraphSize)
}

func TestKind(t *testing.T) {
	for _, k := range []keyplayer.Kind{keyplayer.KindF, keyplayer.KindDF, keyplayer.KindMReach, keyplayer.KindDR} {
		got, err := keyplayer.ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
	_, err := keyplayer.ParseKind("nope")
	require.ErrorIs(t, err, keyplayer.ErrInvalidArgument)
}
