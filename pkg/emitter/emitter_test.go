package emitter

import (
	"bytes"
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tolkit/cladegen/pkg/errors"
	"github.com/tolkit/cladegen/pkg/telomere"
)

var sampleEntries = []telomere.CladeEntry{
	{Name: "Primates", Label: "Primates", Motifs: []string{"ttagg"}, Length: 1},
	{Name: "hymenoptera", Label: "Hymenoptera", Motifs: []string{"TTAGG", "TTAGGTTGGGG"}, Length: 2},
}

// dispatch maps each case label of Lookup's switch to the quoted motifs it returns.
func dispatch(t *testing.T, file *ast.File) (names []string, cases map[string][]string, hasDefault bool) {
	t.Helper()
	cases = make(map[string][]string)

	for _, decl := range file.Decls {
		switch d := decl.(type) {
		case *ast.GenDecl:
			for _, spec := range d.Specs {
				vs, ok := spec.(*ast.ValueSpec)
				if !ok || vs.Names[0].Name != "Clades" {
					continue
				}
				lit := vs.Values[0].(*ast.CompositeLit)
				for _, elt := range lit.Elts {
					s, err := strconv.Unquote(elt.(*ast.BasicLit).Value)
					require.NoError(t, err)
					names = append(names, s)
				}
			}
		case *ast.FuncDecl:
			if d.Name.Name != "Lookup" {
				continue
			}
			sw := d.Body.List[0].(*ast.SwitchStmt)
			for _, stmt := range sw.Body.List {
				cc := stmt.(*ast.CaseClause)
				if cc.List == nil {
					hasDefault = true
					continue
				}
				name, err := strconv.Unquote(cc.List[0].(*ast.BasicLit).Value)
				require.NoError(t, err)
				var motifs []string
				ast.Inspect(cc, func(n ast.Node) bool {
					kv, ok := n.(*ast.KeyValueExpr)
					if !ok || kv.Key.(*ast.Ident).Name != "Seq" {
						return true
					}
					for _, elt := range kv.Value.(*ast.CompositeLit).Elts {
						m, err := strconv.Unquote(elt.(*ast.BasicLit).Value)
						require.NoError(t, err)
						motifs = append(motifs, m)
					}
					return false
				})
				cases[name] = motifs
			}
		}
	}
	return names, cases, hasDefault
}

func TestRender(t *testing.T) {
	em, err := New(Options{Source: "curated.csv"})
	require.NoError(t, err)

	out, err := em.Render(sampleEntries)
	require.NoError(t, err)

	src := string(out)
	assert.True(t, strings.HasPrefix(src, "// Code generated by cladegen from curated.csv. DO NOT EDIT.\n"))
	assert.Contains(t, src, "package clades\n")
	assert.Contains(t, src, `Clade:  "Hymenoptera",`)
	assert.Contains(t, src, `Seq:    Seq{"TTAGG", "TTAGGTTGGGG"},`)
	assert.Contains(t, src, "Length: 2,")
	assert.Contains(t, src, "&UnknownCladeError{Clade: clade}")

	file, err := parser.ParseFile(token.NewFileSet(), "table.go", out, parser.ParseComments)
	require.NoError(t, err)

	names, cases, hasDefault := dispatch(t, file)
	assert.Equal(t, []string{"Primates", "hymenoptera"}, names)
	assert.Equal(t, map[string][]string{
		"Primates":    {"ttagg"},
		"hymenoptera": {"TTAGG", "TTAGGTTGGGG"},
	}, cases)
	assert.True(t, hasDefault)
}

func TestRenderIsStable(t *testing.T) {
	em, err := New(Options{})
	require.NoError(t, err)

	first, err := em.Render(sampleEntries)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := em.Render(sampleEntries)
		require.NoError(t, err)
		assert.True(t, bytes.Equal(first, again), "render %d differs", i)
	}
}

func TestRenderSuppressesEmptyEntries(t *testing.T) {
	em, err := New(Options{})
	require.NoError(t, err)

	entries := append([]telomere.CladeEntry{{Name: "Rodentia", Label: "Rodentia"}}, sampleEntries...)
	out, err := em.Render(entries)
	require.NoError(t, err)
	assert.NotContains(t, string(out), "Rodentia")
}

func TestRenderNoEntries(t *testing.T) {
	em, err := New(Options{})
	require.NoError(t, err)

	out, err := em.Render(nil)
	require.NoError(t, err)

	file, err := parser.ParseFile(token.NewFileSet(), "table.go", out, 0)
	require.NoError(t, err)
	names, cases, hasDefault := dispatch(t, file)
	assert.Empty(t, names)
	assert.Empty(t, cases)
	assert.True(t, hasDefault)
}

func TestRenderEscapesNames(t *testing.T) {
	em, err := New(Options{})
	require.NoError(t, err)

	entries := []telomere.CladeEntry{{Name: `odd "name"`, Label: `Odd "name"`, Motifs: []string{`TT\AGG`}, Length: 1}}
	out, err := em.Render(entries)
	require.NoError(t, err)

	file, err := parser.ParseFile(token.NewFileSet(), "table.go", out, 0)
	require.NoError(t, err)
	_, cases, _ := dispatch(t, file)
	assert.Equal(t, []string{`TT\AGG`}, cases[`odd "name"`])
}

func TestRenderRejectsInvalidEntries(t *testing.T) {
	em, err := New(Options{})
	require.NoError(t, err)

	_, err = em.Render([]telomere.CladeEntry{{Name: "A", Motifs: []string{"TTAGG"}, Length: 3}})
	assert.True(t, errors.IsValidationError(err))

	dup := []telomere.CladeEntry{sampleEntries[0], sampleEntries[0]}
	_, err = em.Render(dup)
	assert.True(t, errors.IsValidationError(err))
}

func TestNewValidatesOptions(t *testing.T) {
	_, err := New(Options{Package: "1clades"})
	assert.True(t, errors.IsValidationError(err))

	_, err = New(Options{Standalone: true, BodyOnly: true})
	assert.True(t, errors.IsValidationError(err))

	em, err := New(Options{})
	require.NoError(t, err)
	assert.Equal(t, DefaultPackage, em.Options().Package)
	assert.Equal(t, DefaultGenerator, em.Options().Generator)
}

func TestRenderStandaloneTypeChecks(t *testing.T) {
	em, err := New(Options{Package: "telomeres", Standalone: true})
	require.NoError(t, err)

	out, err := em.Render(sampleEntries)
	require.NoError(t, err)

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "table.go", out, 0)
	require.NoError(t, err)

	conf := types.Config{Importer: importer.ForCompiler(fset, "source", nil)}
	pkg, err := conf.Check("telomeres", fset, []*ast.File{file}, nil)
	require.NoError(t, err)
	assert.NotNil(t, pkg.Scope().Lookup("MustLookup"))
	assert.NotNil(t, pkg.Scope().Lookup("UnknownCladeError"))
}

func TestRenderBodyOnly(t *testing.T) {
	em, err := New(Options{BodyOnly: true})
	require.NoError(t, err)

	out, err := em.Render(sampleEntries)
	require.NoError(t, err)
	assert.NotContains(t, string(out), "package ")
	assert.NotContains(t, string(out), "Code generated")
	assert.True(t, strings.HasPrefix(string(out), "// Clades lists"))
}

func TestEmit(t *testing.T) {
	em, err := New(Options{})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, em.Emit(&buf, sampleEntries))

	rendered, err := em.Render(sampleEntries)
	require.NoError(t, err)
	assert.Equal(t, rendered, buf.Bytes())
}
