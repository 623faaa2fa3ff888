package clades_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tolkit/cladegen/internal/source"
	"github.com/tolkit/cladegen/pkg/clades"
	"github.com/tolkit/cladegen/pkg/emitter"
	"github.com/tolkit/cladegen/pkg/telomere"
)

func TestLookup(t *testing.T) {
	seq, err := clades.Lookup("Hymenoptera")
	require.NoError(t, err)
	assert.Equal(t, "Hymenoptera", seq.Clade)
	assert.Equal(t, 5, seq.Length)
	assert.Len(t, seq.Seq, seq.Length)

	first, ok := seq.Seq.Get(0)
	assert.True(t, ok)
	assert.Equal(t, "TTAGG", first)
	_, ok = seq.Seq.Get(5)
	assert.False(t, ok)
	_, ok = seq.Seq.Get(-1)
	assert.False(t, ok)
}

func TestLookupUnknownClade(t *testing.T) {
	for _, name := range []string{"Diptera", "Galliformes", "", "primates"} {
		_, err := clades.Lookup(name)
		var unknown *clades.UnknownCladeError
		require.ErrorAs(t, err, &unknown, "clade %q", name)
		assert.Equal(t, name, unknown.Clade)
		assert.Contains(t, err.Error(), "is not yet accounted for")
	}
}

func TestMustLookupPanicsWithCladeName(t *testing.T) {
	assert.PanicsWithError(t, "Diptera is not yet accounted for in this pipeline", func() {
		clades.MustLookup("Diptera")
	})
	assert.NotPanics(t, func() { clades.MustLookup("Primates") })
}

func TestAllMatchesClades(t *testing.T) {
	all := clades.All()
	require.Len(t, all, len(clades.Clades))
	for i, seq := range all {
		assert.Equal(t, telomere.DisplayLabel(clades.Clades[i]), seq.Clade)
		assert.Equal(t, len(seq.Seq), seq.Length)
		for _, m := range seq.Seq {
			assert.True(t, telomere.IsInformative(m), "%s: %q", seq.Clade, m)
		}
	}
}

func TestSeqString(t *testing.T) {
	assert.Equal(t, "TCAGG, TTAGG", clades.Seq{"TCAGG", "TTAGG"}.String())
	assert.Equal(t, "", clades.Seq{}.String())
}

func TestPrintTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, clades.PrintTable(&buf))

	out := buf.String()
	assert.Contains(t, out, "Hymenoptera")
	assert.Contains(t, out, "TCAGG, TTAGG")
	assert.Contains(t, out, "a-telomeric-repeat-database")
	assert.NotContains(t, strings.ToUpper(out), "COUNT", "repeat counts are not shown")
	assert.Greater(t, strings.Index(out, "a-telomeric-repeat-database"), strings.Index(out, "Hymenoptera"),
		"attribution follows the table")
}

// TestTableIsUpToDate regenerates the table from the bundled dataset and
// compares it with the checked-in file.
func TestTableIsUpToDate(t *testing.T) {
	obs, err := source.NewReader().ReadFile(filepath.Join("..", "..", "data", "curated.csv"))
	require.NoError(t, err)

	entries := telomere.Build(t.Context(), obs, telomere.AggregateOptions{})
	em, err := emitter.New(emitter.Options{Source: "curated.csv"})
	require.NoError(t, err)
	want, err := em.Render(entries)
	require.NoError(t, err)

	got, err := os.ReadFile("table.go")
	require.NoError(t, err)
	assert.Equal(t, string(want), string(got), "run go generate ./pkg/clades")
}
