package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mazzalab/pyntacle/core"
	"github.com/mazzalab/pyntacle/keyplayer"
	"github.com/mazzalab/pyntacle/report"
)

func newKeyPlayerCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keyplayer",
		Short: "Key-player indices and kp-set search",
	}
	cmd.AddCommand(keyPlayerInfoCmd(a))
	cmd.AddCommand(keyPlayerGreedyCmd(a))
	return cmd
}

func keyPlayerInfoCmd(a *app) *cobra.Command {
	var (
		nodes []string
		m     int
	)
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Report F, dF, m-reach and dR for a given kp-set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("m") {
				m = a.cfg.KeyPlayer.M
			}
			g, err := a.readGraph(cmd)
			if err != nil {
				return err
			}
			kp, err := vertexSet(g, nodes)
			if err != nil {
				return err
			}

			kpe, err := keyplayer.New(g, keyplayer.WithTopology(a.eng), keyplayer.WithLogger(a.log))
			if err != nil {
				return err
			}
			reach, err := kpe.MReach(m, kp, false)
			if err != nil {
				return err
			}
			dr, err := kpe.DR(kp, false)
			if err != nil {
				return err
			}
			rt := report.Table{Title: "reach of " + strings.Join(nodes, ","), Header: []string{"index", "value"}}
			rt.AddRow(fmt.Sprintf("%s (m=%d)", keyplayer.KindMReach, m), strconv.Itoa(reach))
			rt.AddRow(keyplayer.KindDR.String(), report.Float(dr))

			frag, err := fragmentationTable(kpe, kp)
			if err != nil {
				return err
			}

			return a.write(cmd, frag, rt)
		},
	}
	cmd.Flags().StringSliceVarP(&nodes, "nodes", "n", nil, "Comma-separated kp-set vertex names")
	cmd.Flags().IntVar(&m, "m", keyplayer.DefaultM, "Hop limit for m-reach")
	_ = cmd.MarkFlagRequired("nodes")
	return cmd
}

// fragmentationTable reports F and dF of the engine's graph before and after
// removing kp. The engine is moved onto the reduced graph; a reduced graph
// without edges is fully fragmented and scores 1 on both.
func fragmentationTable(kpe *keyplayer.Engine, kp []int) (report.Table, error) {
	t := report.Table{Title: "fragmentation", Header: []string{"index", "initial", "removed"}}
	before, err := fragmentation(kpe)
	if err != nil {
		return t, err
	}
	rest, _, err := core.RemoveVertices(kpe.Graph(), kp)
	if err != nil {
		return t, err
	}
	after := [2]float64{1, 1}
	if rest.EdgeCount() > 0 {
		if err := kpe.SetGraph(rest, true); err != nil {
			return t, err
		}
		if after, err = fragmentation(kpe); err != nil {
			return t, err
		}
	}
	t.AddRow(keyplayer.KindF.String(), report.Float(before[0]), report.Float(after[0]))
	t.AddRow(keyplayer.KindDF.String(), report.Float(before[1]), report.Float(after[1]))

	return t, nil
}

func fragmentation(kpe *keyplayer.Engine) ([2]float64, error) {
	var out [2]float64
	f, err := kpe.F(false)
	if err != nil {
		return out, err
	}
	df, err := kpe.DF(false)
	if err != nil {
		return out, err
	}
	out[0], out[1] = f, df

	return out, nil
}

func keyPlayerGreedyCmd(a *app) *cobra.Command {
	var (
		k     int
		kinds []string
	)
	cmd := &cobra.Command{
		Use:   "greedy",
		Short: "Search kp-sets of size k with a greedy swap optimizer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.readGraph(cmd)
			if err != nil {
				return err
			}
			t := report.Table{Title: "greedy kp-sets", Header: []string{"index", "k", "set", "value"}}
			for _, name := range kinds {
				kind, err := keyplayer.ParseKind(name)
				if err != nil {
					return err
				}
				sol, err := keyplayer.GreedyOptimize(g, k, kind, a.greedyOptions()...)
				if err != nil {
					return err
				}
				names, err := g.Names(sol.Set)
				if err != nil {
					return err
				}
				t.AddRow(kind.String(), strconv.Itoa(k), strings.Join(names, ","), report.Float(sol.Value))
			}
			return a.write(cmd, t)
		},
	}
	cmd.Flags().IntVarP(&k, "k", "k", 2, "Size of the kp-set")
	cmd.Flags().StringSliceVar(&kinds, "kind", []string{"F", "dF", "m-reach", "dR"}, "Indices to optimise")
	return cmd
}

func (a *app) greedyOptions() []keyplayer.Option {
	kp := a.cfg.KeyPlayer
	return []keyplayer.Option{
		keyplayer.WithTopology(a.eng),
		keyplayer.WithLogger(a.log),
		keyplayer.WithSeed(kp.Seed),
		keyplayer.WithM(kp.M),
		keyplayer.WithMaxIterations(kp.MaxIterations),
		keyplayer.WithRestarts(kp.Restarts),
	}
}
