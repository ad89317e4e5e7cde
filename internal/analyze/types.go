package analyze

import (
	"go/ast"
	"go/token"
	"go/types"
	"path/filepath"

	"golang.org/x/tools/go/packages"

	"enumfrom/internal/diagnostic"
	"enumfrom/internal/directive"
)

// Package holds what the generator needs from one loaded Go package.
type Package struct {
	Name      string // package clause name
	PkgPath   string // import path
	Dir       string // directory of the first Go file
	Fset      *token.FileSet
	Syntax    []*ast.File // in go list order
	Types     *types.Package
	TypesInfo *types.Info
}

// FromPackages adapts a go/packages result.
func FromPackages(pkg *packages.Package) *Package {
	p := &Package{
		Name:      pkg.Name,
		PkgPath:   pkg.PkgPath,
		Fset:      pkg.Fset,
		Syntax:    pkg.Syntax,
		Types:     pkg.Types,
		TypesInfo: pkg.TypesInfo,
	}

	if len(pkg.GoFiles) > 0 {
		p.Dir = filepath.Dir(pkg.GoFiles[0])
	} else if len(pkg.CompiledGoFiles) > 0 {
		p.Dir = filepath.Dir(pkg.CompiledGoFiles[0])
	}

	return p
}

// Span returns the diagnostic span of node.
func (p *Package) Span(node ast.Node) diagnostic.Span {
	return diagnostic.AtNode(p.Fset, node)
}

// PackageInfo is the result of inspecting one package.
type PackageInfo struct {
	Package *Package
	// Enums in declaration order.
	Enums []*EnumInfo
	// Diagnostics found while discovering enums and variants.
	Diagnostics diagnostic.Diagnostics
}

// Enum returns the enum called name, or nil.
func (pi *PackageInfo) Enum(name string) *EnumInfo {
	for _, e := range pi.Enums {
		if e.Name == name {
			return e
		}
	}

	return nil
}

// EnumInfo describes a sealed interface acting as an enum.
type EnumInfo struct {
	Name string
	Spec *ast.TypeSpec
	File *ast.File
	// Marked is true when the declaration carries //enumfrom:enum. Enums
	// requested by name only are not marked.
	Marked    bool
	Interface *types.Interface
	Variants  []*VariantInfo
}

// Variant returns the variant called name, or nil.
func (e *EnumInfo) Variant(name string) *VariantInfo {
	for _, v := range e.Variants {
		if v.Name == name {
			return v
		}
	}

	return nil
}

// VariantInfo describes one struct type implementing an enum.
type VariantInfo struct {
	Name   string
	Spec   *ast.TypeSpec
	File   *ast.File
	Struct *ast.StructType
	// Pointer is true when only the pointer type implements the enum.
	Pointer bool
	Shape   Shape
	// Inner is the type expression the shape was derived from.
	Inner ast.Expr
	// Directives found in the variant's doc comment.
	Directives []directive.Directive
}
