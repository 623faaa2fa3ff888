// Package clades is the compiled-in lookup table of telomeric repeat units
// per clade. table.go is generated by cladegen from data/curated.csv; the
// types it refers to live here.
package clades

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
)

//go:generate go run ../../cmd/cladegen generate --input ../../data/curated.csv --output table.go

// TelomereSeq holds the telomeric repeat units of one clade.
type TelomereSeq struct {
	Clade  string
	Seq    Seq
	Length int
}

// Seq is a list of telomeric repeat units.
type Seq []string

// Get returns the repeat unit at index i.
func (s Seq) Get(i int) (string, bool) {
	if i < 0 || i >= len(s) {
		return "", false
	}
	return s[i], true
}

// String joins the repeat units with ", ".
func (s Seq) String() string {
	return strings.Join(s, ", ")
}

// UnknownCladeError reports a clade that has no curated repeat.
type UnknownCladeError struct {
	Clade string
}

func (e *UnknownCladeError) Error() string {
	return fmt.Sprintf("%s is not yet accounted for in this pipeline", e.Clade)
}

// MustLookup is like Lookup but panics for unknown clades. Asking for a
// clade outside Clades is a programming error.
func MustLookup(clade string) TelomereSeq {
	seq, err := Lookup(clade)
	if err != nil {
		panic(err)
	}
	return seq
}

// All returns the entry of every clade in Clades order.
func All() []TelomereSeq {
	all := make([]TelomereSeq, 0, len(Clades))
	for _, c := range Clades {
		all = append(all, MustLookup(c))
	}
	return all
}

// Attribution is printed under the clade table.
const Attribution = `This table is modified from "A telomeric repeat database"
https://github.com/tolkit/a-telomeric-repeat-database`

// PrintTable renders every clade with its repeat units as a text table,
// followed by the attribution.
func PrintTable(w io.Writer) error {
	table := tablewriter.NewTable(w)
	table.Header("Clade", "Telomeric repeat units")
	for _, seq := range All() {
		if err := table.Append(seq.Clade, seq.Seq.String()); err != nil {
			return err
		}
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, Attribution)
	return err
}
