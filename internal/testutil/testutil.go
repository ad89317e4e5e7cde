// Package testutil builds type-checked packages from inline sources for
// tests.
package testutil

import (
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"testing"

	"github.com/stretchr/testify/require"

	"enumfrom/internal/analyze"
)

// File is one source file of a test package.
type File struct {
	Name string
	Src  string
}

// Source returns a single-file package.
func Source(src string) []File {
	return []File{{Name: "errors.go", Src: src}}
}

// Load parses and type-checks files as the package at path. Type errors
// fail the test unless allowErrors is set.
func Load(t *testing.T, path string, files []File, allowErrors bool) *analyze.Package {
	t.Helper()

	fset := token.NewFileSet()
	syntax := make([]*ast.File, 0, len(files))

	for _, f := range files {
		file, err := parser.ParseFile(fset, f.Name, f.Src, parser.ParseComments)
		require.NoError(t, err, "parse %s", f.Name)

		syntax = append(syntax, file)
	}

	info := &types.Info{
		Types:      make(map[ast.Expr]types.TypeAndValue),
		Defs:       make(map[*ast.Ident]types.Object),
		Uses:       make(map[*ast.Ident]types.Object),
		Implicits:  make(map[ast.Node]types.Object),
		Selections: make(map[*ast.SelectorExpr]*types.Selection),
		Scopes:     make(map[ast.Node]*types.Scope),
	}

	var typeErrs []error

	conf := types.Config{
		Importer: importer.ForCompiler(fset, "source", nil),
		Error:    func(err error) { typeErrs = append(typeErrs, err) },
	}

	tpkg, _ := conf.Check(path, fset, syntax, info)
	if !allowErrors {
		require.Empty(t, typeErrs)
	}

	return &analyze.Package{
		Name:      tpkg.Name(),
		PkgPath:   path,
		Dir:       t.TempDir(),
		Fset:      fset,
		Syntax:    syntax,
		Types:     tpkg,
		TypesInfo: info,
	}
}
