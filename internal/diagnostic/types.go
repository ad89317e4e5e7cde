package diagnostic

import (
	"errors"
	"fmt"
	"go/token"
	"sort"
	"strings"

	"enumfrom/internal/common"
)

// Codes reported by the generator.
const (
	CodeWrongKind         = "wrong_kind"
	CodeGenericEnum       = "generic_enum"
	CodeNonStructVariant  = "non_struct_variant"
	CodeMalformed         = "malformed_directive"
	CodeAttributeNotFound = "attribute_not_found"
	CodeEmptyTarget       = "empty_target"
	CodeInvalidTarget     = "invalid_target"
	CodeUnknownPackage    = "unknown_package"
	CodeUnknownType       = "unknown_type"
	CodeUnknownVariant    = "unknown_variant"
	CodeDuplicateRule     = "duplicate_rule"
	CodeNameCollision     = "name_collision"
	CodeOrphanDirective   = "orphan_directive"
	CodeIgnoredArgument   = "ignored_argument"
	CodeUnknownDirective  = "unknown_directive"
	CodeTypeError         = "type_error"
)

// Diagnostics holds all diagnostic information from one generation pass.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity DiagnosticSeverity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Enum names the enum this relates to (if any).
	Enum string
	// Variant names the variant this relates to (if any).
	Variant string
	// Span locates the offending source construct.
	Span Span
}

// Span is a source range. Pos and End are only set for spans inside Go
// files known to a token.FileSet; Position is always filled when the
// location is known.
type Span struct {
	Pos      token.Pos
	End      token.Pos
	Position token.Position
}

// At builds a span covering [pos, end) in fset.
func At(fset *token.FileSet, pos, end token.Pos) Span {
	s := Span{Pos: pos, End: end}
	if fset != nil && pos.IsValid() {
		s.Position = fset.Position(pos)
	}

	return s
}

// AtNode builds a span covering node.
func AtNode(fset *token.FileSet, node interface {
	Pos() token.Pos
	End() token.Pos
}) Span {
	return At(fset, node.Pos(), node.End())
}

// AtPosition builds a span for a location outside any token.FileSet.
func AtPosition(p token.Position) Span {
	return Span{Position: p}
}

// DiagnosticSeverity represents the severity level of a diagnostic.
type DiagnosticSeverity int

const (
	DiagnosticInfo DiagnosticSeverity = iota
	DiagnosticWarning
	DiagnosticError
)

// String returns a human-readable severity name.
func (s DiagnosticSeverity) String() string {
	switch s {
	case DiagnosticInfo:
		return "info"
	case DiagnosticWarning:
		return "warning"
	case DiagnosticError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message string, span Span) {
	d.Errors = append(d.Errors, Diagnostic{
		Severity: DiagnosticError,
		Code:     code,
		Message:  message,
		Span:     span,
	})
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message string, span Span) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity: DiagnosticWarning,
		Code:     code,
		Message:  message,
		Span:     span,
	})
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message string, span Span) {
	d.Infos = append(d.Infos, Diagnostic{
		Severity: DiagnosticInfo,
		Code:     code,
		Message:  message,
		Span:     span,
	})
}

// Add appends an already built diagnostic to the matching list.
func (d *Diagnostics) Add(diag Diagnostic) {
	switch diag.Severity {
	case DiagnosticError:
		d.Errors = append(d.Errors, diag)
	case DiagnosticWarning:
		d.Warnings = append(d.Warnings, diag)
	default:
		d.Infos = append(d.Infos, diag)
	}
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// All returns every diagnostic ordered by file, line and column. Entries
// without a position keep their relative order at the end.
func (d *Diagnostics) All() []Diagnostic {
	all := make([]Diagnostic, 0, len(d.Errors)+len(d.Warnings)+len(d.Infos))
	all = append(all, d.Errors...)
	all = append(all, d.Warnings...)
	all = append(all, d.Infos...)

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Span.Position.IsValid() && less(all[i].Span.Position, all[j].Span.Position)
	})

	return all
}

func less(a, b token.Position) bool {
	if !b.IsValid() {
		return true
	}

	if a.Filename != b.Filename {
		return a.Filename < b.Filename
	}

	if a.Line != b.Line {
		return a.Line < b.Line
	}

	return a.Column < b.Column
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	errs := make([]Diagnostic, len(d.Errors))
	copy(errs, d.Errors)
	sort.SliceStable(errs, func(i, j int) bool {
		return errs[i].Span.Position.IsValid() && less(errs[i].Span.Position, errs[j].Span.Position)
	})

	parts := make([]string, 0, len(errs))
	for _, e := range errs {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "\n"))
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if d.Severity == DiagnosticWarning {
		msg = "warning: " + msg
	}

	if d.Span.Position.IsValid() {
		return d.Span.Position.String() + ": " + msg
	}

	var prefix []string
	if d.Enum != "" {
		prefix = append(prefix, d.Enum)
	}

	if d.Variant != "" {
		prefix = append(prefix, d.Variant)
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, ".") + ": " + msg
	}

	return msg
}
