// Package docs renders the curated clade table as a markdown reference page.
package docs

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	md "github.com/nao1215/markdown"

	"github.com/tolkit/cladegen/pkg/telomere"
)

// Page describes one markdown reference page.
type Page struct {
	// Title is the level 1 heading.
	Title string
	// Source names the table the entries were built from.
	Source string
	// Entries are the clades kept in the lookup table.
	Entries []telomere.CladeEntry
	// Excluded are the clades dropped because none of their repeats is informative.
	Excluded []telomere.CladeGroup
}

// DefaultTitle is used when Page.Title is empty.
const DefaultTitle = "Telomeric repeat units by clade"

// NewPage builds a page from raw observations, separating kept and excluded clades.
func NewPage(source string, obs []telomere.Observation, opts telomere.AggregateOptions) *Page {
	kept, dropped := telomere.Partition(obs, opts)

	page := &Page{Title: DefaultTitle, Source: source, Excluded: dropped}
	for _, g := range kept {
		page.Entries = append(page.Entries, telomere.NewEntry(g))
	}
	return page
}

// Write renders the page to w.
func (p *Page) Write(w io.Writer) error {
	title := p.Title
	if title == "" {
		title = DefaultTitle
	}

	builder := md.NewMarkdown(w).H1(title).LF()

	if p.Source != "" {
		builder.PlainTextf("Generated from %s.", md.Code(p.Source)).LF()
	}
	builder.PlainTextf("%d clades carry at least one informative repeat unit.", len(p.Entries)).LF()

	rows := make([][]string, 0, len(p.Entries))
	for _, e := range p.Entries {
		rows = append(rows, []string{
			md.Bold(e.Label),
			codeList(e.Motifs),
			strconv.Itoa(e.Length),
		})
	}
	builder.Table(md.TableSet{
		Header: []string{"Clade", "Repeat units", "Count"},
		Rows:   rows,
	}).LF()

	if len(p.Excluded) > 0 {
		builder.H2("Excluded clades").LF()
		builder.PlainText("These clades only list tandem repeats or single-base runs.").LF()

		items := make([]string, 0, len(p.Excluded))
		for _, g := range p.Excluded {
			items = append(items, fmt.Sprintf("%s: %s", g.Clade, verdicts(g.Repeats)))
		}
		builder.BulletList(items...).LF()
	}

	return builder.Build()
}

// codeList formats motifs as comma-separated inline code.
func codeList(motifs []string) string {
	parts := make([]string, len(motifs))
	for i, m := range motifs {
		parts[i] = md.Code(m)
	}
	return strings.Join(parts, ", ")
}

// verdicts describes why each distinct repeat was dropped.
func verdicts(repeats []string) string {
	distinct := telomere.Distinct(repeats)
	if len(distinct) == 0 {
		return "no repeat recorded"
	}
	parts := make([]string, len(distinct))
	for i, r := range distinct {
		parts[i] = fmt.Sprintf("%s (%s)", md.Code(r), telomere.Classify(r))
	}
	return strings.Join(parts, ", ")
}
