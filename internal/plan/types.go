package plan

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"enumfrom/internal/analyze"
	"enumfrom/internal/common"
	"enumfrom/internal/diagnostic"
)

// PackagePlan is everything the generator needs for one package.
type PackagePlan struct {
	Package *analyze.Package
	// Enums in declaration order.
	Enums []EnumPlan
	// Imports referenced by qualified targets, sorted by path.
	Imports []ImportRef
	// Diagnostics contains all warnings and errors from extraction.
	Diagnostics diagnostic.Diagnostics
}

// RuleCount returns the number of rules across all enums.
func (p *PackagePlan) RuleCount() int {
	n := 0
	for _, e := range p.Enums {
		n += len(e.Rules)
	}

	return n
}

// EnumPlan holds the conversion rules of one enum.
type EnumPlan struct {
	Enum *analyze.EnumInfo
	// Rules in variant order, then directive order.
	Rules []Rule
}

// Rule is one conversion: a value of the source type Target becomes the
// variant Variant of Enum.
type Rule struct {
	Enum    string
	Variant string
	// Target is the source type as written, e.g. "NetworkError",
	// "store.ErrNotFound" or "*strconv.NumError".
	Target string
	// SourcePointer is set when Target names a pointer type.
	SourcePointer bool
	// PkgName is the qualifier of Target, empty for local types.
	PkgName string
	// TypeName is Target without its qualifier.
	TypeName string
	Shape    analyze.Shape
	// Pointer is true when the variant is constructed by address.
	Pointer bool
	// TextByAddr is set when the source's Error or String method has a
	// pointer receiver, so its text is taken from &src.
	TextByAddr bool
	// Import is set for qualified targets.
	Import *ImportRef
	// Origin says where the directive came from.
	Origin Origin
	Span   diagnostic.Span
}

// Qualified reports whether the source type lives in another package.
func (r Rule) Qualified() bool {
	return r.PkgName != ""
}

// FuncName returns the name of the conversion function:
// <Enum>From<Type>, with the package qualifier folded in for qualified
// targets, e.g. MainErrorFromStrconvNumError. Pointer targets are named
// after their element type.
func (r Rule) FuncName() string {
	title := cases.Title(language.Und, cases.NoLower)

	return r.Enum + "From" + title.String(r.PkgName) + title.String(r.TypeName)
}

// ImportRef is an import the generated file needs.
type ImportRef struct {
	// Name is the identifier the target is qualified with.
	Name string
	Path string
	// Explicit is true when the import spec carried a name, so the
	// generated file must repeat it.
	Explicit bool
}

// Origin indicates where a rule originated.
type Origin int

const (
	// OriginComment - from a //enumfrom:from directive.
	OriginComment Origin = iota
	// OriginFile - from the YAML directive file.
	OriginFile
)

func (o Origin) String() string {
	switch o {
	case OriginComment:
		return "comment"
	case OriginFile:
		return "file"
	default:
		return common.UnknownStr
	}
}
