// Package graphio reads and writes graphs as whitespace-separated edge lists.
//
// Each data line holds two vertex names and an optional weight:
//
//	# comment
//	source target [weight]
//
// Blank lines and lines starting with '#' are skipped. Vertices are indexed in
// order of first appearance; a line naming a single vertex adds it without
// edges, which is how isolated vertices round-trip. A line repeating an edge
// already read (on undirected graphs also "b a" after "a b") keeps the first
// occurrence and is logged at warn level.
package graphio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/mazzalab/pyntacle/core"
	"github.com/mazzalab/pyntacle/internal/logging"
)

// ErrMalformedLine indicates a data line that is not "a [b [w]]".
var ErrMalformedLine = errors.New("graphio: malformed line")

const commentPrefix = "#"

type options struct {
	directed bool
	weighted bool
	header   bool
	log      *logrus.Logger
}

// Option configures ReadEdgeList.
type Option func(*options)

// Directed builds a directed graph.
func Directed() Option { return func(o *options) { o.directed = true } }

// Weighted reads the third column as the edge weight; without it a third
// column is rejected.
func Weighted() Option { return func(o *options) { o.weighted = true } }

// SkipHeader ignores the first data line.
func SkipHeader() Option { return func(o *options) { o.header = true } }

// WithLogger sets the logger that reports skipped duplicate edges.
func WithLogger(log *logrus.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

// ReadEdgeList parses an edge list into a new graph.
// Errors carry the 1-based line number and wrap ErrMalformedLine or the
// core sentinel that rejected the edge (loop, duplicate, bad weight).
func ReadEdgeList(r io.Reader, opts ...Option) (*core.Graph, error) {
	o := options{log: logging.Discard()}
	for _, opt := range opts {
		opt(&o)
	}
	gopts := []core.GraphOption{core.WithDirected(o.directed)}
	if o.weighted {
		gopts = append(gopts, core.WithWeighted())
	}
	g := core.NewGraph(gopts...)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo, dups := 0, 0
	skip := o.header
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, commentPrefix) {
			continue
		}
		if skip {
			skip = false
			continue
		}
		err := addLine(g, strings.Fields(line), o.weighted)
		if errors.Is(err, core.ErrMultiEdgeNotAllowed) {
			dups++
			o.log.WithFields(logrus.Fields{"line": lineNo, "edge": line}).Warn("graphio: duplicate edge skipped")
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("ReadEdgeList: line %d: %w", lineNo, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("ReadEdgeList: %w", err)
	}
	if dups > 0 {
		o.log.WithField("duplicates", dups).Info("graphio: duplicate edges skipped")
	}

	return g, nil
}

func addLine(g *core.Graph, fields []string, weighted bool) error {
	switch {
	case len(fields) == 1:
		_, err := g.AddVertex(fields[0])
		return err
	case len(fields) == 2:
		w := 0.0
		if weighted {
			w = 1
		}
		_, err := g.AddEdge(fields[0], fields[1], w)
		return err
	case len(fields) == 3 && weighted:
		w, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return fmt.Errorf("weight %q: %w", fields[2], ErrMalformedLine)
		}
		_, err = g.AddEdge(fields[0], fields[1], w)
		return err
	}

	return fmt.Errorf("%d fields: %w", len(fields), ErrMalformedLine)
}

// WriteEdgeList writes g as an edge list readable by ReadEdgeList: one line
// per edge in insertion order (with the weight on weighted graphs), then one
// line per vertex without edges.
func WriteEdgeList(w io.Writer, g *core.Graph) error {
	bw := bufio.NewWriter(w)
	names := g.Vertices()
	for _, e := range g.Edges() {
		var err error
		if g.Weighted() {
			_, err = fmt.Fprintf(bw, "%s\t%s\t%s\n", names[e.From], names[e.To], strconv.FormatFloat(e.Weight, 'g', -1, 64))
		} else {
			_, err = fmt.Fprintf(bw, "%s\t%s\n", names[e.From], names[e.To])
		}
		if err != nil {
			return fmt.Errorf("WriteEdgeList: %w", err)
		}
	}
	for i, d := range g.Degrees() {
		if d > 0 {
			continue
		}
		if _, err := fmt.Fprintln(bw, names[i]); err != nil {
			return fmt.Errorf("WriteEdgeList: %w", err)
		}
	}

	return bw.Flush()
}
