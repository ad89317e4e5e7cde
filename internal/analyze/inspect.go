package analyze

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"slices"
	"strings"

	"enumfrom/internal/diagnostic"
	"enumfrom/internal/directive"
)

// typeDecl is one type specification together with its doc comment.
type typeDecl struct {
	file *ast.File
	spec *ast.TypeSpec
	doc  *ast.CommentGroup
}

// Inspect finds the enums of pkg and their variants.
//
// Enums are the types marked with //enumfrom:enum plus the types named in
// want. Declarations are visited in file order, then source order, so the
// result is stable for identical input. A //enumfrom:from directive on a
// type that is no variant of any enum is reported as a warning.
func Inspect(pkg *Package, want []string) *PackageInfo {
	info := &PackageInfo{Package: pkg}
	decls := collectTypeDecls(pkg.Syntax)
	claimed := make(map[*ast.TypeSpec]bool)

	for _, td := range decls {
		dirs := directive.ParseCommentGroup(td.doc)
		marked := directive.Has(dirs, directive.NameEnum)

		if !marked && !slices.Contains(want, td.spec.Name.Name) {
			continue
		}

		claimed[td.spec] = true

		enum := inspectEnum(pkg, td, dirs, marked, &info.Diagnostics)
		if enum == nil {
			continue
		}

		enum.Variants = collectVariants(pkg, enum, decls, claimed, &info.Diagnostics)
		info.Enums = append(info.Enums, enum)
	}

	reportOrphans(pkg, decls, claimed, &info.Diagnostics)

	return info
}

func collectTypeDecls(files []*ast.File) []typeDecl {
	var out []typeDecl

	for _, file := range files {
		for _, decl := range file.Decls {
			gen, ok := decl.(*ast.GenDecl)
			if !ok || gen.Tok != token.TYPE {
				continue
			}

			for _, spec := range gen.Specs {
				ts, ok := spec.(*ast.TypeSpec)
				if !ok {
					continue
				}

				doc := ts.Doc
				if doc == nil && !gen.Lparen.IsValid() {
					doc = gen.Doc
				}

				out = append(out, typeDecl{file: file, spec: ts, doc: doc})
			}
		}
	}

	return out
}

// inspectEnum validates that td declares a sealed interface. It returns nil
// when the declaration cannot be an enum.
func inspectEnum(pkg *Package, td typeDecl, dirs []directive.Directive, marked bool, diags *diagnostic.Diagnostics) *EnumInfo {
	name := td.spec.Name.Name
	span := pkg.Span(td.spec.Name)

	for _, d := range directive.Filter(dirs, directive.NameEnum) {
		if strings.TrimSpace(d.Args) != "" {
			diags.AddError(diagnostic.CodeMalformed,
				"expected //enumfrom:enum without arguments", diagnostic.At(pkg.Fset, d.Pos, d.End))
		}
	}

	if td.spec.TypeParams != nil {
		diags.AddError(diagnostic.CodeGenericEnum,
			fmt.Sprintf("%s has type parameters; generic enums are not supported", name), span)
		return nil
	}

	obj, _ := pkg.TypesInfo.Defs[td.spec.Name].(*types.TypeName)
	if obj == nil {
		diags.AddError(diagnostic.CodeUnknownType, fmt.Sprintf("no type information for %s", name), span)
		return nil
	}

	iface, ok := types.Unalias(obj.Type()).Underlying().(*types.Interface)
	if !ok {
		diags.AddError(diagnostic.CodeWrongKind,
			fmt.Sprintf("%s must be an interface to derive conversions, found %s", name, kindOf(td.spec.Type)), span)
		return nil
	}

	if iface.NumMethods() == 0 {
		diags.AddError(diagnostic.CodeWrongKind,
			fmt.Sprintf("%s must declare at least one method to seal its variants", name), span)
		return nil
	}

	return &EnumInfo{
		Name:      name,
		Spec:      td.spec,
		File:      td.file,
		Marked:    marked,
		Interface: iface,
	}
}

// collectVariants returns the struct types implementing enum, in
// declaration order. Every implementing type is added to claimed.
func collectVariants(pkg *Package, enum *EnumInfo, decls []typeDecl, claimed map[*ast.TypeSpec]bool, diags *diagnostic.Diagnostics) []*VariantInfo {
	var out []*VariantInfo

	for _, td := range decls {
		if td.spec == enum.Spec || td.spec.TypeParams != nil {
			continue
		}

		obj, _ := pkg.TypesInfo.Defs[td.spec.Name].(*types.TypeName)
		if obj == nil || types.IsInterface(obj.Type()) {
			continue
		}

		typ := obj.Type()
		pointer := false

		if !types.Implements(typ, enum.Interface) {
			if !types.Implements(types.NewPointer(typ), enum.Interface) {
				continue
			}

			pointer = true
		}

		claimed[td.spec] = true

		dirs := directive.ParseCommentGroup(td.doc)
		reportUnknownDirectives(pkg, dirs, diags)

		st, ok := td.spec.Type.(*ast.StructType)
		if !ok || td.spec.Assign.IsValid() {
			if directive.Has(dirs, directive.NameFrom) {
				diags.AddError(diagnostic.CodeNonStructVariant,
					fmt.Sprintf("variant %s of %s must be declared as a struct type", td.spec.Name.Name, enum.Name),
					pkg.Span(td.spec.Name))
			}

			continue
		}

		shape, inner := ClassifyShape(st)
		out = append(out, &VariantInfo{
			Name:       td.spec.Name.Name,
			Spec:       td.spec,
			File:       td.file,
			Struct:     st,
			Pointer:    pointer,
			Shape:      shape,
			Inner:      inner,
			Directives: dirs,
		})
	}

	return out
}

// reportOrphans warns about //enumfrom:from on types outside claimed.
func reportOrphans(pkg *Package, decls []typeDecl, claimed map[*ast.TypeSpec]bool, diags *diagnostic.Diagnostics) {
	for _, td := range decls {
		if claimed[td.spec] {
			continue
		}

		from := directive.Filter(directive.ParseCommentGroup(td.doc), directive.NameFrom)
		if len(from) == 0 {
			continue
		}

		name := td.spec.Name.Name

		var msg string

		switch unmarked := unmarkedInterfaces(pkg, td, decls, claimed); {
		case td.spec.TypeParams != nil:
			msg = fmt.Sprintf("%s carries //enumfrom:from but generic types cannot be enum variants", name)
		case len(unmarked) > 0:
			msg = fmt.Sprintf("%s carries //enumfrom:from but implements only unmarked interfaces (%s); mark the enum with //enumfrom:enum",
				name, strings.Join(unmarked, ", "))
		default:
			msg = fmt.Sprintf("%s carries //enumfrom:from but implements no enum in this package", name)
		}

		diags.AddWarning(diagnostic.CodeOrphanDirective, msg, diagnostic.At(pkg.Fset, from[0].Pos, from[0].End))
	}
}

// unmarkedInterfaces lists the non-generic interfaces with methods that
// are declared in pkg outside claimed and implemented by td or *td.
func unmarkedInterfaces(pkg *Package, td typeDecl, decls []typeDecl, claimed map[*ast.TypeSpec]bool) []string {
	if td.spec.TypeParams != nil {
		return nil
	}

	obj, _ := pkg.TypesInfo.Defs[td.spec.Name].(*types.TypeName)
	if obj == nil || types.IsInterface(obj.Type()) {
		return nil
	}

	var out []string

	for _, other := range decls {
		if other.spec == td.spec || other.spec.TypeParams != nil || claimed[other.spec] {
			continue
		}

		iobj, _ := pkg.TypesInfo.Defs[other.spec.Name].(*types.TypeName)
		if iobj == nil {
			continue
		}

		iface, ok := iobj.Type().Underlying().(*types.Interface)
		if !ok || iface.NumMethods() == 0 {
			continue
		}

		if types.Implements(obj.Type(), iface) || types.Implements(types.NewPointer(obj.Type()), iface) {
			out = append(out, other.spec.Name.Name)
		}
	}

	return out
}

func reportUnknownDirectives(pkg *Package, dirs []directive.Directive, diags *diagnostic.Diagnostics) {
	for _, d := range dirs {
		if d.Name == directive.NameFrom || d.Name == directive.NameEnum {
			continue
		}

		diags.AddWarning(diagnostic.CodeUnknownDirective,
			fmt.Sprintf("unknown directive //enumfrom:%s", d.Name), diagnostic.At(pkg.Fset, d.Pos, d.End))
	}
}

// kindOf names the kind of a type expression for messages.
func kindOf(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.StructType:
		return "a struct"
	case *ast.FuncType:
		return "a func type"
	case *ast.MapType:
		return "a map type"
	case *ast.ArrayType:
		if t.Len == nil {
			return "a slice type"
		}
		return "an array type"
	case *ast.ChanType:
		return "a channel type"
	case *ast.StarExpr:
		return "a pointer type"
	default:
		return "a defined type " + types.ExprString(expr)
	}
}
