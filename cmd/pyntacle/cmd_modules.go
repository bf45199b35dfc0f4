package main

import (
	"errors"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mazzalab/pyntacle/core"
	"github.com/mazzalab/pyntacle/keyplayer"
	"github.com/mazzalab/pyntacle/modules"
	"github.com/mazzalab/pyntacle/report"
	"github.com/mazzalab/pyntacle/sparseness"
)

func newSparsenessCmd(a *app) *cobra.Command {
	var measures []string
	cmd := &cobra.Command{
		Use:   "sparseness",
		Short: "Sparseness indices of the whole graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ms, err := parseMeasures(measures)
			if err != nil {
				return err
			}
			g, err := a.readGraph(cmd)
			if err != nil {
				return err
			}
			t := report.Table{Title: "sparseness", Header: []string{"measure", "value"}}
			for _, m := range ms {
				v, err := sparseness.Compute(g, m)
				if errors.Is(err, sparseness.ErrGraphSize) {
					a.log.WithFields(logrus.Fields{"measure": m.String()}).Warn("index undefined for graph")
					t.AddRow(m.String(), "NA")
					continue
				}
				if err != nil {
					return err
				}
				t.AddRow(m.String(), report.Float(v))
			}
			return a.write(cmd, t)
		},
	}
	cmd.Flags().StringSliceVar(&measures, "measure", measureNames(), "Measures to compute")
	return cmd
}

func newModulesCmd(a *app) *cobra.Command {
	var (
		measures []string
		k        int
		kind     string
	)
	cmd := &cobra.Command{
		Use:   "modules",
		Short: "Split the graph into Louvain modules and analyse each one",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ms, err := parseMeasures(measures)
			if err != nil {
				return err
			}
			g, err := a.readGraph(cmd)
			if err != nil {
				return err
			}
			groups, err := a.eng.Louvain(g, a.cfg.Modules.Resolution, a.cfg.KeyPlayer.Seed)
			if err != nil {
				return err
			}
			orc, err := modules.New(g, modules.Partition(groups),
				modules.WithMinSize(a.cfg.Modules.MinSize), modules.WithLogger(a.log))
			if err != nil {
				return err
			}
			for _, m := range ms {
				if err := orc.Sparseness(m); err != nil {
					return err
				}
			}

			st := report.Table{Title: "module sparseness", Header: []string{"module", "size"}}
			for _, m := range ms {
				st.Header = append(st.Header, m.String())
			}
			for _, mod := range orc.Modules() {
				row := []string{strconv.Itoa(mod.ID), strconv.Itoa(len(mod.Vertices))}
				for _, m := range ms {
					v, err := orc.Result(mod.ID, m)
					if errors.Is(err, modules.ErrMissingResult) {
						row = append(row, "NA")
						continue
					}
					row = append(row, report.Float(v))
				}
				st.AddRow(row...)
			}
			tables := []report.Table{st}

			if k > 0 {
				kt, err := a.moduleKeyPlayers(g, orc, k, kind)
				if err != nil {
					return err
				}
				tables = append(tables, kt)
			}
			return a.write(cmd, tables...)
		},
	}
	cmd.Flags().StringSliceVar(&measures, "measure", measureNames(), "Measures to compute per module")
	cmd.Flags().IntVarP(&k, "k", "k", 0, "Search a kp-set of this size in every module (0 disables)")
	cmd.Flags().StringVar(&kind, "kind", keyplayer.KindF.String(), "Index optimised by the kp-set search")
	return cmd
}

func (a *app) moduleKeyPlayers(g *core.Graph, orc *modules.Orchestrator, k int, kindName string) (report.Table, error) {
	t := report.Table{Title: "module kp-sets", Header: []string{"module", "index", "set", "value"}}
	kind, err := keyplayer.ParseKind(kindName)
	if err != nil {
		return t, err
	}
	sols, err := orc.OptimizeKP(keyplayer.Greedy{Kind: kind, Options: a.greedyOptions()}, k)
	if err != nil {
		return t, err
	}
	for _, mod := range orc.Modules() {
		sol, ok := sols[mod.ID]
		if !ok {
			continue
		}
		names, err := g.Names(sol.Set)
		if err != nil {
			return t, err
		}
		t.AddRow(strconv.Itoa(mod.ID), sol.Kind.String(), strings.Join(names, ","), report.Float(sol.Value))
	}

	return t, nil
}

func measureNames() []string {
	ms := sparseness.Measures()
	names := make([]string, len(ms))
	for i, m := range ms {
		names[i] = m.String()
	}
	return names
}

func parseMeasures(names []string) ([]sparseness.Measure, error) {
	out := make([]sparseness.Measure, 0, len(names))
	for _, n := range names {
		m, err := sparseness.ParseMeasure(n)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}
