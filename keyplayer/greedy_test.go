package keyplayer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mazzalab/pyntacle/builder"
	"github.com/mazzalab/pyntacle/keyplayer"
)

func TestGreedyOptimize(t *testing.T) {
	tests := []struct {
		name    string
		ctor    builder.Constructor
		k       int
		kind    keyplayer.Kind
		opts    []keyplayer.Option
		wantSet []int
		want    float64
	}{
		{"star hub reaches all", builder.Star(6), 1, keyplayer.KindMReach, []keyplayer.Option{keyplayer.WithM(1)}, []int{0}, 5},
		{"path centre fragments most", builder.Path(5), 1, keyplayer.KindF, nil, []int{2}, 1 - 4.0/12.0},
		{"path centre reaches closest", builder.Path(5), 1, keyplayer.KindDR, nil, []int{2}, 0.6},
		{"star hub removal isolates leaves", builder.Star(5), 1, keyplayer.KindDF, nil, []int{0}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := build(t, nil, tt.ctor)
			for _, seed := range []uint64{0, 1, 7, 99} {
				opts := append([]keyplayer.Option{keyplayer.WithSeed(seed)}, tt.opts...)
				sol, err := keyplayer.GreedyOptimize(g, tt.k, tt.kind, opts...)
				require.NoError(t, err)
				assert.Equal(t, tt.wantSet, sol.Set, "seed %d", seed)
				assert.InDelta(t, tt.want, sol.Value, 1e-12)
				assert.Equal(t, tt.kind, sol.Kind)
			}
		})
	}
}

func TestGreedyOptimize_NeverWorseThanStart(t *testing.T) {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(11)}, builder.RandomSparse(20, 0.15))
	require.NoError(t, err)

	start, err := keyplayer.GreedyOptimize(g, 3, keyplayer.KindMReach, keyplayer.WithSeed(5), keyplayer.WithMaxIterations(0))
	require.NoError(t, err)
	best, err := keyplayer.GreedyOptimize(g, 3, keyplayer.KindMReach, keyplayer.WithSeed(5))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, best.Value, start.Value)

	multi, err := keyplayer.GreedyOptimize(g, 3, keyplayer.KindMReach, keyplayer.WithSeed(5), keyplayer.WithRestarts(4))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, multi.Value, best.Value)

	again, err := keyplayer.GreedyOptimize(g, 3, keyplayer.KindMReach, keyplayer.WithSeed(5))
	require.NoError(t, err)
	assert.Equal(t, best, again)
}

func TestGreedyOptimize_Errors(t *testing.T) {
	g := build(t, nil, builder.Path(4))
	for _, k := range []int{0, 4, 10} {
		_, err := keyplayer.GreedyOptimize(g, k, keyplayer.KindF)
		require.ErrorIs(t, err, keyplayer.ErrInvalidArgument, "k=%d", k)
	}
	_, err := keyplayer.GreedyOptimize(g, 1, keyplayer.KindMReach, keyplayer.WithM(0))
	require.ErrorIs(t, err, keyplayer.ErrInvalidArgument)
	_, err = keyplayer.GreedyOptimize(g, 1, keyplayer.Kind(42))
	require.ErrorIs(t, err, keyplayer.ErrInvalidArgument)
	_, err = keyplayer.GreedyOptimize(build(t, nil, builder.Isolated(3)), 1, keyplayer.KindF)
	require.ErrorIs(t, err, keyplayer.ErrGraphSize)
}

func TestGreedyAdapter(t *testing.T) {
	gr := keyplayer.Greedy{Kind: keyplayer.KindMReach, Options: []keyplayer.Option{keyplayer.WithM(1)}}
	sol, err := gr.Optimize(build(t, nil, builder.Star(4)), 1)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, sol.Set)
}
