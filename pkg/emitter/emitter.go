// Package emitter serializes clade entries as Go source: a Clades name list
// and a Lookup function dispatching on clade name. The output is gofmt'd and
// byte-for-byte stable for identical entries.
package emitter

import (
	"bytes"
	"go/format"
	"go/token"
	"io"
	"strconv"
	"strings"
	"text/template"

	"github.com/tolkit/cladegen/pkg/errors"
	"github.com/tolkit/cladegen/pkg/telomere"
)

// DefaultPackage is the package clause used when Options.Package is empty.
const DefaultPackage = "clades"

// DefaultGenerator is named in the generated-code header.
const DefaultGenerator = "cladegen"

// Options controls the shape of the generated file.
type Options struct {
	// Package is the package clause of the generated file.
	Package string
	// Source is the input file named in the generated-code header.
	Source string
	// Generator is the tool named in the generated-code header.
	Generator string
	// Standalone also emits TelomereSeq, Seq, UnknownCladeError and
	// MustLookup so the file compiles without a companion package.
	Standalone bool
	// BodyOnly omits the header and package clause, for splicing.
	BodyOnly bool
}

// Emitter writes clade tables.
type Emitter struct {
	opts Options
}

// New returns an Emitter, validating opts.
func New(opts Options) (*Emitter, error) {
	if opts.Package == "" {
		opts.Package = DefaultPackage
	}
	if opts.Generator == "" {
		opts.Generator = DefaultGenerator
	}
	if !token.IsIdentifier(opts.Package) {
		return nil, errors.NewValidationError("package", opts.Package, "not a valid Go package name")
	}
	if opts.BodyOnly && opts.Standalone {
		return nil, errors.NewValidationError("standalone", opts.Standalone, "cannot be combined with body-only output")
	}
	return &Emitter{opts: opts}, nil
}

// Options returns the effective options.
func (e *Emitter) Options() Options {
	return e.opts
}

type templateData struct {
	Options
	Entries []telomere.CladeEntry
}

// Render returns the formatted source for entries. Entries without motifs are
// left out of both the name list and the dispatch.
func (e *Emitter) Render(entries []telomere.CladeEntry) ([]byte, error) {
	kept, err := prepare(entries)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := tableTemplate.Execute(&buf, templateData{Options: e.opts, Entries: kept}); err != nil {
		return nil, errors.WrapResource("render", "table", "", err)
	}

	out, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, errors.WrapParse("go", "", err)
	}
	return out, nil
}

// Emit renders entries and writes them to w.
func (e *Emitter) Emit(w io.Writer, entries []telomere.CladeEntry) error {
	out, err := e.Render(entries)
	if err != nil {
		return err
	}
	if _, err := w.Write(out); err != nil {
		return errors.WrapIO("write", "", err)
	}
	return nil
}

// prepare drops empty entries and rejects ones the dispatch could not hold.
func prepare(entries []telomere.CladeEntry) ([]telomere.CladeEntry, error) {
	seen := make(map[string]bool, len(entries))
	kept := make([]telomere.CladeEntry, 0, len(entries))
	for _, entry := range entries {
		if len(entry.Motifs) == 0 {
			continue
		}
		if entry.Length != len(entry.Motifs) {
			return nil, errors.NewValidationError("length", entry.Length,
				"clade "+strconv.Quote(entry.Name)+" declares "+strconv.Itoa(entry.Length)+
					" motifs but has "+strconv.Itoa(len(entry.Motifs)))
		}
		if seen[entry.Name] {
			return nil, errors.NewValidationError("clade", entry.Name, "duplicate clade "+strconv.Quote(entry.Name))
		}
		seen[entry.Name] = true
		kept = append(kept, entry)
	}
	return kept, nil
}

var tableTemplate = template.Must(template.New("table").Funcs(template.FuncMap{
	"quote": strconv.Quote,
	"quoteAll": func(ss []string) string {
		quoted := make([]string, len(ss))
		for i, s := range ss {
			quoted[i] = strconv.Quote(s)
		}
		return strings.Join(quoted, ", ")
	},
}).Parse(tableSource))
