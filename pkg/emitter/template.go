package emitter

const tableSource = `
{{- if not .BodyOnly -}}
// Code generated by {{.Generator}}{{if .Source}} from {{.Source}}{{end}}. DO NOT EDIT.

package {{.Package}}
{{if .Standalone}}
import (
	"fmt"
	"strings"
)
{{end}}
{{end -}}
// Clades lists every clade with at least one informative telomeric repeat.
var Clades = []string{
{{- range .Entries}}
	{{quote .Name}},
{{- end}}
}

// Lookup returns the telomeric repeat units curated for clade. Clades not in
// Clades yield an *UnknownCladeError.
func Lookup(clade string) (TelomereSeq, error) {
	switch clade {
{{- range .Entries}}
	case {{quote .Name}}:
		return TelomereSeq{
			Clade:  {{quote .Label}},
			Seq:    Seq{ {{- quoteAll .Motifs -}} },
			Length: {{.Length}},
		}, nil
{{- end}}
	default:
		return TelomereSeq{}, &UnknownCladeError{Clade: clade}
	}
}
{{- if .Standalone}}

// TelomereSeq holds the telomeric repeat units of one clade.
type TelomereSeq struct {
	Clade  string
	Seq    Seq
	Length int
}

// Seq is a list of telomeric repeat units.
type Seq []string

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

// MustLookup is like Lookup but panics for unknown clades.
func MustLookup(clade string) TelomereSeq {
	seq, err := Lookup(clade)
	if err != nil {
		panic(err)
	}
	return seq
}
{{- end}}
`
