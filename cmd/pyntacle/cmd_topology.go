package main

import (
	"github.com/spf13/cobra"

	"github.com/mazzalab/pyntacle/report"
	"github.com/mazzalab/pyntacle/topology"
)

func newTopologyCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "topology",
		Short: "Local and global topology indices",
	}
	cmd.AddCommand(topologyLocalCmd(a))
	cmd.AddCommand(topologyGlobalCmd(a))
	return cmd
}

func (a *app) topologyEngine(cmd *cobra.Command) (*topology.Engine, error) {
	g, err := a.readGraph(cmd)
	if err != nil {
		return nil, err
	}
	return topology.New(g,
		topology.WithEngine(a.eng),
		topology.WithDamping(a.cfg.Topology.Damping),
		topology.WithLogger(a.log))
}

func topologyLocalCmd(a *app) *cobra.Command {
	var kinds, nodes []string
	cmd := &cobra.Command{
		Use:   "local",
		Short: "Per-vertex indices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ks := make([]topology.LocalKind, 0, len(kinds))
			for _, name := range kinds {
				k, err := topology.ParseLocalKind(name)
				if err != nil {
					return err
				}
				ks = append(ks, k)
			}
			te, err := a.topologyEngine(cmd)
			if err != nil {
				return err
			}
			g := te.Graph()
			var idx []int
			if len(nodes) > 0 {
				if idx, err = g.Indices(nodes); err != nil {
					return err
				}
			}
			names := nodes
			if idx == nil {
				names = g.Vertices()
			}

			t := report.Table{Title: "local topology", Header: []string{"node"}}
			cols := make([][]float64, len(ks))
			for i, k := range ks {
				t.Header = append(t.Header, k.String())
				if cols[i], err = te.Local(k, idx, false); err != nil {
					return err
				}
			}
			for r, name := range names {
				row := []string{name}
				for _, col := range cols {
					row = append(row, report.Float(col[r]))
				}
				t.AddRow(row...)
			}
			return a.write(cmd, t)
		},
	}
	cmd.Flags().StringSliceVar(&kinds, "kind", localKindNames(), "Local indices to compute")
	cmd.Flags().StringSliceVarP(&nodes, "nodes", "n", nil, "Vertices to report (default all)")
	return cmd
}

func topologyGlobalCmd(a *app) *cobra.Command {
	var kinds []string
	cmd := &cobra.Command{
		Use:   "global",
		Short: "Whole-graph indices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ks := make([]topology.GlobalKind, 0, len(kinds))
			for _, name := range kinds {
				k, err := topology.ParseGlobalKind(name)
				if err != nil {
					return err
				}
				ks = append(ks, k)
			}
			te, err := a.topologyEngine(cmd)
			if err != nil {
				return err
			}
			t := report.Table{Title: "global topology", Header: []string{"index", "value"}}
			for _, k := range ks {
				v, err := te.Global(k, false)
				if err != nil {
					return err
				}
				t.AddRow(k.String(), report.Float(v))
			}
			return a.write(cmd, t)
		},
	}
	cmd.Flags().StringSliceVar(&kinds, "kind", globalKindNames(), "Global indices to compute")
	return cmd
}

func localKindNames() []string {
	var out []string
	for _, k := range topology.LocalKinds() {
		out = append(out, k.String())
	}
	return out
}

func globalKindNames() []string {
	var out []string
	for _, k := range topology.GlobalKinds() {
		out = append(out, k.String())
	}
	return out
}
