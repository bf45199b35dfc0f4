package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mazzalab/pyntacle/builder"
	"github.com/mazzalab/pyntacle/core"
	"github.com/mazzalab/pyntacle/graphio"
)

func newGenerateCmd(a *app) *cobra.Command {
	var (
		model  string
		n      int
		p      float64
		seed   uint64
		prefix string
		ids    string
		wmin   float64
		wmax   float64
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a synthetic graph as an edge list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var con builder.Constructor
			switch model {
			case "path":
				con = builder.Path(n)
			case "cycle":
				con = builder.Cycle(n)
			case "star":
				con = builder.Star(n)
			case "complete":
				con = builder.Complete(n)
			case "random":
				con = builder.RandomSparse(n, p)
			default:
				return fmt.Errorf("unknown model %q", model)
			}
			if !cmd.Flags().Changed("seed") {
				seed = a.cfg.KeyPlayer.Seed
			}

			gopts := []core.GraphOption{core.WithDirected(a.directed)}
			if a.weighted {
				gopts = append(gopts, core.WithWeighted())
			}
			bopts := []builder.BuilderOption{builder.WithSeed(seed)}
			switch {
			case prefix != "":
				bopts = append(bopts, builder.WithIDScheme(builder.PrefixIDFn(prefix)))
			case ids == "excel":
				bopts = append(bopts, builder.WithIDScheme(builder.ExcelColumnIDFn))
			case ids != "numeric":
				return fmt.Errorf("unknown id scheme %q", ids)
			}
			if a.weighted && cmd.Flags().Changed("weight-max") {
				if wmin <= 0 || wmax < wmin {
					return fmt.Errorf("weight range [%g, %g) needs 0 < min <= max", wmin, wmax)
				}
				bopts = append(bopts, builder.WithWeightFn(builder.UniformWeightFn(wmin, wmax)))
			}
			g, err := builder.BuildGraph(gopts, bopts, con)
			if err != nil {
				return err
			}
			a.log.WithFields(logrus.Fields{
				"model": model, "vertices": g.VertexCount(), "edges": g.EdgeCount(),
			}).Info("graph generated")

			return graphio.WriteEdgeList(cmd.OutOrStdout(), g)
		},
	}
	cmd.Flags().StringVar(&model, "model", "random", "Graph model: path|cycle|star|complete|random")
	cmd.Flags().IntVar(&n, "n", 10, "Number of vertices")
	cmd.Flags().Float64Var(&p, "p", 0.1, "Edge probability of the random model")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Random seed (default keyplayer.seed)")
	cmd.Flags().StringVar(&prefix, "prefix", "", "Vertex ID prefix followed by the index")
	cmd.Flags().StringVar(&ids, "ids", "numeric", "Vertex ID scheme: numeric|excel")
	cmd.Flags().Float64Var(&wmin, "weight-min", 1, "Lower bound of uniform edge weights (with --weighted)")
	cmd.Flags().Float64Var(&wmax, "weight-max", 1, "Upper bound of uniform edge weights (with --weighted)")
	return cmd
}
