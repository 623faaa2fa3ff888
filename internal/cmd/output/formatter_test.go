package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tolkit/cladegen/pkg/telomere"
)

var entries = []telomere.CladeEntry{
	{Name: "Coleoptera", Label: "Coleoptera", Motifs: []string{"TCAGG", "TTAGG"}, Length: 2},
}

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"table", "JSON", "yaml", ""} {
		_, err := ParseFormat(s)
		assert.NoError(t, err, s)
	}
	_, err := ParseFormat("xml")
	assert.Error(t, err)
}

func TestDetectFormatExplicit(t *testing.T) {
	assert.Equal(t, FormatYAML, DetectFormat("YAML"))
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatJSON).Format(&buf, entries))
	assert.Contains(t, buf.String(), `"motifs": [`)
	assert.Contains(t, buf.String(), `"length": 2`)
}

func TestYAMLFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatYAML).Format(&buf, entries))
	assert.Contains(t, buf.String(), "name: Coleoptera")
	assert.Contains(t, buf.String(), "- TCAGG")
}

func TestTableFormatterStructSlice(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatTable).Format(&buf, entries))

	out := buf.String()
	assert.Contains(t, out, "TCAGG, TTAGG")
	assert.Contains(t, out, "Coleoptera")
}

func TestTableFormatterSingleStruct(t *testing.T) {
	data := toTableData(entries[0])
	require.NotNil(t, data)
	assert.Equal(t, []string{"Property", "Value"}, data.Headers)
	assert.Equal(t, []string{"Motifs", "TCAGG, TTAGG"}, data.Rows[2])
}

func TestTableHeadersFromTags(t *testing.T) {
	data := toTableData(entries)
	require.NotNil(t, data)
	assert.Equal(t, []string{"Name", "Label", "Motifs", "Length"}, data.Headers)
	assert.Equal(t, [][]string{{"Coleoptera", "Coleoptera", "TCAGG, TTAGG", "2"}}, data.Rows)
}

func TestTableFormatterFallsBackToJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatTable).Format(&buf, map[string]int{"clades": 3}))
	assert.Contains(t, buf.String(), `"clades": 3`)
}
