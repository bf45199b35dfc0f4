// Package report renders analysis results as tables in text, TSV, CSV or
// YAML form.
package report

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat indicates an unrecognised output format name.
var ErrUnknownFormat = errors.New("report: unknown format")

// Format selects the rendering of a report.
type Format int

const (
	FormatText Format = iota
	FormatTSV
	FormatCSV
	FormatYAML
)

var formatNames = [...]string{
	FormatText: "text",
	FormatTSV:  "tsv",
	FormatCSV:  "csv",
	FormatYAML: "yaml",
}

func (f Format) String() string {
	if f >= 0 && int(f) < len(formatNames) {
		return formatNames[f]
	}

	return fmt.Sprintf("Format(%d)", int(f))
}

// ParseFormat maps a format name (case-insensitive) to a Format; "" selects
// FormatText.
func ParseFormat(s string) (Format, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return FormatText, nil
	}
	for f, n := range formatNames {
		if n == name {
			return Format(f), nil
		}
	}

	return FormatText, fmt.Errorf("ParseFormat(%q): %w", s, ErrUnknownFormat)
}

// Table is one titled block of a report.
type Table struct {
	Title  string     `yaml:"title"`
	Header []string   `yaml:"header"`
	Rows   [][]string `yaml:"rows"`
}

// AddRow appends a row of cells.
func (t *Table) AddRow(cells ...string) {
	t.Rows = append(t.Rows, cells)
}

// Float formats a metric value with the shortest exact representation.
func Float(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Write renders tables to w in format f.
func Write(w io.Writer, f Format, tables ...Table) error {
	switch f {
	case FormatText:
		return writeText(w, tables)
	case FormatTSV:
		return writeDelimited(w, '\t', tables)
	case FormatCSV:
		return writeDelimited(w, ',', tables)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(tables); err != nil {
			return fmt.Errorf("report: encode yaml: %w", err)
		}
		return enc.Close()
	}

	return fmt.Errorf("Write(%v): %w", f, ErrUnknownFormat)
}

// writeDelimited writes each table as a "# title" line, a header record and
// its rows, separating tables with a blank line.
func writeDelimited(w io.Writer, comma rune, tables []Table) error {
	for i, t := range tables {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if t.Title != "" {
			if _, err := fmt.Fprintf(w, "# %s\n", t.Title); err != nil {
				return err
			}
		}
		cw := csv.NewWriter(w)
		cw.Comma = comma
		if err := cw.Write(t.Header); err != nil {
			return fmt.Errorf("report: %w", err)
		}
		if err := cw.WriteAll(t.Rows); err != nil {
			return fmt.Errorf("report: %w", err)
		}
	}

	return nil
}

// writeText writes each table with left-aligned, padded columns under a
// dashed separator.
func writeText(w io.Writer, tables []Table) error {
	for i, t := range tables {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if t.Title != "" {
			if _, err := fmt.Fprintln(w, t.Title); err != nil {
				return err
			}
		}

		widths := make([]int, len(t.Header))
		for c, h := range t.Header {
			widths[c] = len(h)
		}
		for _, row := range t.Rows {
			for c, cell := range row {
				if c < len(widths) && len(cell) > widths[c] {
					widths[c] = len(cell)
				}
			}
		}
		printRow := func(cells []string) error {
			parts := make([]string, len(cells))
			for c, cell := range cells {
				wd := 0
				if c < len(widths) {
					wd = widths[c]
				}
				parts[c] = fmt.Sprintf("%-*s", wd, cell)
			}
			_, err := fmt.Fprintln(w, strings.TrimRight(strings.Join(parts, "  "), " "))
			return err
		}

		if err := printRow(t.Header); err != nil {
			return err
		}
		seps := make([]string, len(widths))
		for c, wd := range widths {
			seps[c] = strings.Repeat("-", wd)
		}
		if err := printRow(seps); err != nil {
			return err
		}
		for _, row := range t.Rows {
			if err := printRow(row); err != nil {
				return err
			}
		}
	}

	return nil
}
