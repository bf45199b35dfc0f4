// Command pyntacle computes key-player, sparseness and topology indices of
// graphs read from edge lists.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mazzalab/pyntacle/core"
	"github.com/mazzalab/pyntacle/engine"
	"github.com/mazzalab/pyntacle/graphio"
	"github.com/mazzalab/pyntacle/internal/config"
	"github.com/mazzalab/pyntacle/internal/logging"
	"github.com/mazzalab/pyntacle/report"
)

// Build-time variables set via ldflags.
var (
	version   = "0.1.0"
	commit    = ""
	buildDate = ""
)

func versionString() string {
	if commit != "" && buildDate != "" {
		return fmt.Sprintf("pyntacle version %s (commit: %s, built: %s)", version, commit, buildDate)
	}
	return fmt.Sprintf("pyntacle version %s-dev", version)
}

// app carries the state resolved once per invocation and shared by every
// subcommand.
type app struct {
	cfgPath  string
	logLevel string
	format   string
	mode     string
	input    string
	directed bool
	weighted bool
	header   bool

	cfg *config.Config
	log *logrus.Logger
	out report.Format
	eng *engine.Engine
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:               "pyntacle",
		Short:             "pyntacle: key-player and sparseness analysis of networks",
		Version:           versionString(),
		PersistentPreRunE: a.setup,
		SilenceUsage:      true,
	}
	root.SetVersionTemplate("{{.Version}}\n")

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgPath, "config", "", "YAML config file (env: PYNTACLE_*)")
	pf.StringVar(&a.logLevel, "log-level", "", "Log level: debug|info|warn|error")
	pf.StringVar(&a.format, "format", "", "Output format: text|tsv|csv|yaml")
	pf.StringVar(&a.mode, "mode", "", "Shortest-path mode: bfs|floyd-warshall|parallel")
	pf.StringVarP(&a.input, "input", "i", "-", "Edge list to read, - for stdin")
	pf.BoolVar(&a.directed, "directed", false, "Read the edge list as a directed graph")
	pf.BoolVar(&a.weighted, "weighted", false, "Read a third column as edge weight")
	pf.BoolVar(&a.header, "header", false, "Skip the first data line of the edge list")

	root.AddCommand(newKeyPlayerCmd(a))
	root.AddCommand(newSparsenessCmd(a))
	root.AddCommand(newModulesCmd(a))
	root.AddCommand(newTopologyCmd(a))
	root.AddCommand(newGenerateCmd(a))

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), versionString())
		},
	}
	versionCmd.PersistentPreRunE = func(*cobra.Command, []string) error { return nil } // skip setup
	root.AddCommand(versionCmd)

	return root
}

// setup loads the configuration, applies flag overrides and builds the
// logger and graph engine.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if flags.Changed("format") {
		cfg.Report.Format = a.format
	}
	if flags.Changed("mode") {
		cfg.Engine.Mode = a.mode
	}

	log, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}
	log.SetOutput(cmd.ErrOrStderr())
	for _, w := range cfg.Validate() {
		log.Warn(w)
	}

	// Validate has already warned about unknown names; both parsers return
	// their default alongside the error.
	out, _ := report.ParseFormat(cfg.Report.Format)
	mode, _ := engine.ParseMode(cfg.Engine.Mode)

	a.cfg = cfg
	a.log = log
	a.out = out
	a.eng = engine.New(engine.WithMode(mode), engine.WithWorkers(cfg.Engine.Workers), engine.WithLogger(log))

	return nil
}

// readGraph parses the --input edge list.
func (a *app) readGraph(cmd *cobra.Command) (*core.Graph, error) {
	var r io.Reader = cmd.InOrStdin()
	if a.input != "-" && a.input != "" {
		f, err := os.Open(a.input)
		if err != nil {
			return nil, fmt.Errorf("opening input: %w", err)
		}
		defer f.Close()
		r = f
	}

	opts := []graphio.Option{graphio.WithLogger(a.log)}
	if a.directed {
		opts = append(opts, graphio.Directed())
	}
	if a.weighted {
		opts = append(opts, graphio.Weighted())
	}
	if a.header {
		opts = append(opts, graphio.SkipHeader())
	}
	g, err := graphio.ReadEdgeList(r, opts...)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", a.input, err)
	}
	a.log.WithFields(logrus.Fields{
		"input":    a.input,
		"vertices": g.VertexCount(),
		"edges":    g.EdgeCount(),
		"directed": g.Directed(),
	}).Info("graph loaded")

	return g, nil
}

func (a *app) write(cmd *cobra.Command, tables ...report.Table) error {
	return report.Write(cmd.OutOrStdout(), a.out, tables...)
}

// vertexSet resolves vertex names to indices.
func vertexSet(g *core.Graph, names []string) ([]int, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("no vertices given")
	}
	return g.Indices(names)
}
