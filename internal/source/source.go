// Package source reads the curated observation table: a comma-delimited file
// with a header row and at least an Order column and a Telomeric repeat column.
package source

import (
	"encoding/csv"
	stderrors "errors"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/tolkit/cladegen/pkg/errors"
	"github.com/tolkit/cladegen/pkg/telomere"
)

// Default column names of the curated table.
const (
	DefaultCladeColumn  = "Order"
	DefaultRepeatColumn = "Telomeric repeat"
)

// Reader converts table rows into observations.
type Reader struct {
	// CladeColumn names the grouping key column.
	CladeColumn string
	// RepeatColumn names the telomeric repeat column.
	RepeatColumn string
	// Name is used in error messages; ReadFile sets it to the path.
	Name string
}

// NewReader returns a Reader using the default column names.
func NewReader() *Reader {
	return &Reader{
		CladeColumn:  DefaultCladeColumn,
		RepeatColumn: DefaultRepeatColumn,
	}
}

// ReadFile opens path and reads every observation from it.
func (r *Reader) ReadFile(path string) ([]telomere.Observation, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapIO("open", path, err)
	}
	defer f.Close() //nolint:errcheck // read-only

	named := *r
	named.Name = path
	return named.Read(f)
}

// Read parses a table from in. A missing required column is reported as a
// *errors.ColumnError and malformed CSV as a *errors.ParseError; in both cases
// no observations are returned.
//
// An empty repeat cell, or a row too short to have one, yields an absent
// observation. Rows with an empty clade cell are skipped.
func (r *Reader) Read(in io.Reader) ([]telomere.Observation, error) {
	cr := csv.NewReader(transform.NewReader(in, unicode.BOMOverride(unicode.UTF8.NewDecoder())))
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, errors.NewColumnError(r.Name, []string{r.cladeColumn(), r.repeatColumn()}, nil)
	}
	if err != nil {
		return nil, r.parseError(err)
	}
	header = append([]string(nil), header...)

	cladeIdx, repeatIdx := -1, -1
	for i, h := range header {
		switch strings.TrimSpace(h) {
		case r.cladeColumn():
			if cladeIdx < 0 {
				cladeIdx = i
			}
		case r.repeatColumn():
			if repeatIdx < 0 {
				repeatIdx = i
			}
		}
	}

	var missing []string
	if cladeIdx < 0 {
		missing = append(missing, r.cladeColumn())
	}
	if repeatIdx < 0 {
		missing = append(missing, r.repeatColumn())
	}
	if len(missing) > 0 {
		return nil, errors.NewColumnError(r.Name, missing, header)
	}

	var obs []telomere.Observation
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, r.parseError(err)
		}

		clade := cell(record, cladeIdx)
		if clade == "" {
			continue
		}
		repeat := cell(record, repeatIdx)
		if repeat == "" {
			obs = append(obs, telomere.Absent(clade))
			continue
		}
		obs = append(obs, telomere.Observed(clade, repeat))
	}

	return obs, nil
}

func (r *Reader) cladeColumn() string {
	if r.CladeColumn == "" {
		return DefaultCladeColumn
	}
	return r.CladeColumn
}

func (r *Reader) repeatColumn() string {
	if r.RepeatColumn == "" {
		return DefaultRepeatColumn
	}
	return r.RepeatColumn
}

func (r *Reader) parseError(err error) error {
	pe := errors.NewParseError("csv", r.Name, err.Error(), err)
	var csvErr *csv.ParseError
	if stderrors.As(err, &csvErr) {
		pe.Line = csvErr.Line
		pe.Column = csvErr.Column
		pe.Message = csvErr.Err.Error()
	}
	return pe
}

// cell returns the trimmed value at i, or "" when the row is too short.
func cell(record []string, i int) string {
	if i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}
