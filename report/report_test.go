package report_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/mazzalab/pyntacle/report"
)

func sample() report.Table {
	t := report.Table{Title: "key players", Header: []string{"index", "value"}}
	t.AddRow("F", report.Float(0))
	t.AddRow("dR", report.Float(0.6))

	return t
}

func TestWrite_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, report.FormatText, sample()))
	assert.Equal(t, "key players\nindex  value\n-----  -----\nF      0\ndR     0.6\n", buf.String())
}

func TestWrite_Delimited(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, report.FormatTSV, sample()))
	assert.Equal(t, "# key players\nindex\tvalue\nF\t0\ndR\t0.6\n", buf.String())

	buf.Reset()
	second := report.Table{Header: []string{"a"}, Rows: [][]string{{"x,y"}}}
	require.NoError(t, report.Write(&buf, report.FormatCSV, sample(), second))
	assert.Equal(t, "# key players\nindex,value\nF,0\ndR,0.6\n\na\n\"x,y\"\n", buf.String())
}

func TestWrite_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, report.FormatYAML, sample()))

	var back []report.Table
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &back))
	require.Len(t, back, 1)
	assert.Equal(t, sample(), back[0])
}

func TestParseFormat(t *testing.T) {
	for _, name := range []string{"text", "TSV", " csv", "yaml"} {
		_, err := report.ParseFormat(name)
		require.NoError(t, err, name)
	}
	f, err := report.ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, report.FormatText, f)

	_, err = report.ParseFormat("xlsx")
	require.ErrorIs(t, err, report.ErrUnknownFormat)
	require.ErrorIs(t, report.Write(&bytes.Buffer{}, report.Format(9)), report.ErrUnknownFormat)
}
