package plan

import (
	"fmt"
	"go/ast"
	"go/types"
	"sort"
	"strconv"

	"enumfrom/internal/analyze"
	"enumfrom/internal/common"
	"enumfrom/internal/diagnostic"
	"enumfrom/internal/directive"
	"enumfrom/internal/mapping"
	"enumfrom/internal/match"
)

// literal is one target name, from a comment or from the directive file.
type literal struct {
	value    string
	isString bool
	origin   Origin
	span     diagnostic.Span
}

type extractor struct {
	info    *analyze.PackageInfo
	file    *mapping.DirectiveFile
	diags   diagnostic.Diagnostics
	imports map[string]ImportRef
}

// Extract turns the enums found in a package into conversion rules.
//
// Directives of each variant are taken in order: doc comment directives
// first, then entries from the directive file. Every error is collected so
// that one run reports all problems; the plan must not be rendered when
// Diagnostics has errors.
func Extract(info *analyze.PackageInfo, file *mapping.DirectiveFile) *PackagePlan {
	x := &extractor{
		info:    info,
		file:    file,
		imports: make(map[string]ImportRef),
	}
	x.diags.Merge(info.Diagnostics)

	p := &PackagePlan{Package: info.Package}

	for _, e := range info.Enums {
		p.Enums = append(p.Enums, x.enum(e))
	}

	for _, ref := range x.imports {
		p.Imports = append(p.Imports, ref)
	}

	sort.Slice(p.Imports, func(i, j int) bool {
		if p.Imports[i].Path != p.Imports[j].Path {
			return p.Imports[i].Path < p.Imports[j].Path
		}

		return p.Imports[i].Name < p.Imports[j].Name
	})

	p.Diagnostics = x.diags

	return p
}

func (x *extractor) enum(e *analyze.EnumInfo) EnumPlan {
	ep := EnumPlan{Enum: e}
	entry := x.file.Enum(e.Name)
	parsed := 0

	if entry != nil {
		for _, fv := range entry.Variants {
			if e.Variant(fv.Name) == nil {
				x.report(diagnostic.DiagnosticError, diagnostic.CodeUnknownVariant,
					fmt.Sprintf("%s is not a struct variant of %s%s", fv.Name, e.Name, match.Hint(fv.Name, variantNames(e))),
					e.Name, fv.Name, diagnostic.AtPosition(fv.Position))
			}
		}
	}

	for _, v := range e.Variants {
		lits, n := x.variantLiterals(e, v, entry.Variant(v.Name))
		parsed += n

		for _, lit := range lits {
			if r, ok := x.rule(e, v, lit); ok {
				ep.Rules = append(ep.Rules, r)
			}
		}
	}

	if parsed == 0 {
		x.report(diagnostic.DiagnosticError, diagnostic.CodeAttributeNotFound,
			fmt.Sprintf("attribute not found: no variant of %s carries a %s directive", e.Name, directive.FromForm),
			e.Name, "", x.info.Package.Span(e.Spec.Name))
	}

	x.checkDuplicates(ep.Rules)

	return ep
}

// variantLiterals gathers the targets of one variant and the number of
// directives that parsed.
func (x *extractor) variantLiterals(
	e *analyze.EnumInfo,
	v *analyze.VariantInfo,
	fv *mapping.VariantEntry,
) ([]literal, int) {
	var (
		out    []literal
		parsed int
	)

	fset := x.info.Package.Fset

	for _, d := range directive.Filter(v.Directives, directive.NameFrom) {
		args, err := directive.ParseArgs(d)
		if err != nil {
			x.report(diagnostic.DiagnosticError, diagnostic.CodeMalformed,
				"expected "+directive.FromForm, e.Name, v.Name, diagnostic.At(fset, d.Pos, d.End))

			continue
		}

		parsed++

		for _, a := range args {
			out = append(out, literal{
				value:    a.Value,
				isString: a.IsString,
				origin:   OriginComment,
				span:     diagnostic.At(fset, a.Pos, a.End),
			})
		}
	}

	if fv != nil {
		parsed++

		for _, t := range fv.Targets {
			out = append(out, literal{
				value:    t.Value,
				isString: t.IsString,
				origin:   OriginFile,
				span:     diagnostic.AtPosition(t.Position),
			})
		}
	}

	return out, parsed
}

func (x *extractor) rule(e *analyze.EnumInfo, v *analyze.VariantInfo, lit literal) (Rule, bool) {
	if !lit.isString {
		if lit.origin == OriginFile {
			x.report(diagnostic.DiagnosticError, diagnostic.CodeMalformed,
				fmt.Sprintf("target %s must be a string", lit.value), e.Name, v.Name, lit.span)
		} else {
			x.report(diagnostic.DiagnosticWarning, diagnostic.CodeIgnoredArgument,
				fmt.Sprintf("ignoring %s: targets must be string literals", lit.value), e.Name, v.Name, lit.span)
		}

		return Rule{}, false
	}

	if lit.value == "" {
		x.report(diagnostic.DiagnosticError, diagnostic.CodeEmptyTarget,
			"expected this to take a type name", e.Name, v.Name, lit.span)

		return Rule{}, false
	}

	target, ok := directive.ParseTarget(lit.value)
	if !ok {
		x.report(diagnostic.DiagnosticError, diagnostic.CodeInvalidTarget,
			fmt.Sprintf("%q is not a type name; expected Name, pkg.Name or a pointer to one", lit.value),
			e.Name, v.Name, lit.span)

		return Rule{}, false
	}

	r := Rule{
		Enum:          e.Name,
		Variant:       v.Name,
		Target:        lit.value,
		SourcePointer: target.Pointer,
		PkgName:       target.Pkg,
		TypeName:      target.Name,
		Shape:         v.Shape,
		Pointer:       v.Pointer,
		Origin:        lit.origin,
		Span:          lit.span,
	}

	if r.PkgName != "" {
		ref, ok := x.resolveImport(v.File, r.PkgName)
		if !ok {
			x.report(diagnostic.DiagnosticError, diagnostic.CodeUnknownPackage,
				fmt.Sprintf("no import named %s in the file declaring %s%s",
					r.PkgName, v.Name, match.Hint(r.PkgName, importNames(x.fileImports(v.File)))), e.Name, v.Name, lit.span)

			return Rule{}, false
		}

		x.imports[ref.Path+" "+ref.Name] = ref
		r.Import = &ref
	}

	if r.Shape != analyze.ShapeWrapped && !r.SourcePointer {
		r.TextByAddr = textNeedsAddr(x.lookupType(r))
	}

	return r, true
}

// lookupType returns the named source type of r, or nil when the type
// checker does not know it.
func (x *extractor) lookupType(r Rule) types.Type {
	pkg := x.info.Package.Types
	if pkg == nil {
		return nil
	}

	var obj types.Object

	if r.Import != nil {
		for _, imp := range pkg.Imports() {
			if imp.Path() == r.Import.Path {
				obj = imp.Scope().Lookup(r.TypeName)
				break
			}
		}
	} else {
		obj = pkg.Scope().Lookup(r.TypeName)
		if obj == nil {
			obj = types.Universe.Lookup(r.TypeName)
		}
	}

	tn, ok := obj.(*types.TypeName)
	if !ok {
		return nil
	}

	return tn.Type()
}

// textNeedsAddr reports whether fmt finds Error or String only on *t, in
// which case printing a t value dumps its fields instead.
func textNeedsAddr(t types.Type) bool {
	if t == nil || types.IsInterface(t) {
		return false
	}

	if hasTextMethod(types.NewMethodSet(t)) {
		return false
	}

	return hasTextMethod(types.NewMethodSet(types.NewPointer(t)))
}

// hasTextMethod reports whether ms holds Error() string or String() string.
func hasTextMethod(ms *types.MethodSet) bool {
	for i := range ms.Len() {
		fn := ms.At(i).Obj()
		if fn.Name() != "Error" && fn.Name() != "String" {
			continue
		}

		sig, ok := fn.Type().(*types.Signature)
		if ok && sig.Params().Len() == 0 && sig.Results().Len() == 1 &&
			types.Identical(sig.Results().At(0).Type(), types.Typ[types.String]) {
			return true
		}
	}

	return false
}

// resolveImport finds the import of file that is referred to as name.
func (x *extractor) resolveImport(file *ast.File, name string) (ImportRef, bool) {
	for _, ref := range x.fileImports(file) {
		if ref.Name == name {
			return ref, true
		}
	}

	return ImportRef{}, false
}

// fileImports lists the imports of file under the names code refers to
// them by. Blank and dot imports have no such name and are left out.
func (x *extractor) fileImports(file *ast.File) []ImportRef {
	if file == nil {
		return nil
	}

	var out []ImportRef

	for _, spec := range file.Imports {
		path, err := strconv.Unquote(spec.Path.Value)
		if err != nil {
			continue
		}

		ref := ImportRef{Path: path}

		switch {
		case spec.Name != nil:
			ref.Name = spec.Name.Name
			ref.Explicit = true
		case x.info.Package.TypesInfo != nil && x.info.Package.TypesInfo.PkgNameOf(spec) != nil:
			ref.Name = x.info.Package.TypesInfo.PkgNameOf(spec).Imported().Name()
		default:
			ref.Name = common.PkgAlias(path)
		}

		if ref.Name == "_" || ref.Name == "." {
			continue
		}

		out = append(out, ref)
	}

	return out
}

func importNames(refs []ImportRef) []string {
	names := make([]string, 0, len(refs))
	for _, r := range refs {
		names = append(names, r.Name)
	}

	return names
}

func variantNames(e *analyze.EnumInfo) []string {
	names := make([]string, 0, len(e.Variants))
	for _, v := range e.Variants {
		names = append(names, v.Name)
	}

	return names
}

// checkDuplicates warns about targets converted more than once into the
// same enum; both rules are kept. Different targets whose functions would
// share a name are an error.
func (x *extractor) checkDuplicates(rules []Rule) {
	seen := make(map[string]Rule, len(rules))
	names := make(map[string]Rule, len(rules))

	for _, r := range rules {
		key := r.TypeName
		if r.Import != nil {
			key = r.Import.Path + "." + r.TypeName
		}

		if r.SourcePointer {
			key = "*" + key
		}

		if first, dup := seen[key]; dup {
			x.report(diagnostic.DiagnosticWarning, diagnostic.CodeDuplicateRule,
				fmt.Sprintf("%s is already converted into %s by variant %s at %s",
					r.Target, r.Enum, first.Variant, positionString(first.Span)),
				r.Enum, r.Variant, r.Span)

			continue
		}

		seen[key] = r

		name := r.FuncName()
		if first, clash := names[name]; clash {
			x.report(diagnostic.DiagnosticError, diagnostic.CodeNameCollision,
				fmt.Sprintf("%s and %s would both generate %s; %s is converted by variant %s at %s",
					first.Target, r.Target, name, first.Target, first.Variant, positionString(first.Span)),
				r.Enum, r.Variant, r.Span)

			continue
		}

		names[name] = r
	}
}

func positionString(s diagnostic.Span) string {
	if !s.Position.IsValid() {
		return common.UnknownStr
	}

	return s.Position.String()
}

func (x *extractor) report(sev diagnostic.DiagnosticSeverity, code, msg, enum, variant string, span diagnostic.Span) {
	x.diags.Add(diagnostic.Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Enum:     enum,
		Variant:  variant,
		Span:     span,
	})
}
