package directive

import (
	"errors"
	"go/ast"
	"go/parser"
	"go/token"
	"strconv"
	"strings"
)

// Prefix starts every enumfrom directive.
const Prefix = "//enumfrom:"

// Directive names.
const (
	NameEnum = "enum"
	NameFrom = "from"
)

// FromForm is the expected shape of a from directive, used in messages.
const FromForm = `//enumfrom:from("TypeName", ...)`

// ErrMalformed is returned when a directive's arguments are not a
// parenthesized list.
var ErrMalformed = errors.New("malformed directive")

// Directive is one //enumfrom:<name> comment line.
type Directive struct {
	// Name is the text between the prefix and the arguments, e.g. "from".
	Name string
	// Args is the raw text after the name, e.g. `("NetworkError")`.
	Args string
	// Pos and End span the whole comment.
	Pos token.Pos
	End token.Pos
	// ArgsPos is the position of the first byte of Args.
	ArgsPos token.Pos
}

// Literal is one argument of a from directive.
type Literal struct {
	// Value is the unquoted string for string literals, the source text otherwise.
	Value    string
	IsString bool
	Pos      token.Pos
	End      token.Pos
}

// ParseCommentGroup returns the directives found in doc, in source order.
func ParseCommentGroup(doc *ast.CommentGroup) []Directive {
	if doc == nil {
		return nil
	}

	var out []Directive

	for _, c := range doc.List {
		d, ok := parseComment(c)
		if ok {
			out = append(out, d)
		}
	}

	return out
}

func parseComment(c *ast.Comment) (Directive, bool) {
	if !strings.HasPrefix(c.Text, Prefix) {
		return Directive{}, false
	}

	rest := c.Text[len(Prefix):]

	n := 0
	for n < len(rest) && isNameByte(rest[n]) {
		n++
	}

	return Directive{
		Name:    rest[:n],
		Args:    rest[n:],
		Pos:     c.Pos(),
		End:     c.End(),
		ArgsPos: c.Pos() + token.Pos(len(Prefix)+n),
	}, true
}

func isNameByte(b byte) bool {
	return b == '_' || b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9'
}

// Has reports whether ds contains a directive called name.
func Has(ds []Directive, name string) bool {
	for _, d := range ds {
		if d.Name == name {
			return true
		}
	}

	return false
}

// Filter returns the directives called name.
func Filter(ds []Directive, name string) []Directive {
	var out []Directive

	for _, d := range ds {
		if d.Name == name {
			out = append(out, d)
		}
	}

	return out
}

// ParseArgs parses d.Args as a Go call argument list. An empty list is
// valid. Anything other than a single parenthesized list returns
// ErrMalformed.
func ParseArgs(d Directive) ([]Literal, error) {
	src := d.Name + d.Args

	expr, err := parser.ParseExprFrom(token.NewFileSet(), "", src, 0)
	if err != nil {
		return nil, ErrMalformed
	}

	call, ok := expr.(*ast.CallExpr)
	if !ok || call.Ellipsis.IsValid() {
		return nil, ErrMalformed
	}

	if fun, ok := call.Fun.(*ast.Ident); !ok || fun.Name != d.Name {
		return nil, ErrMalformed
	}

	// The private file set starts at base 1, so offset = pos - 1. Shift
	// past the name to land in Args, then onto the real comment.
	shift := func(p token.Pos) token.Pos {
		return d.ArgsPos + p - 1 - token.Pos(len(d.Name))
	}

	lits := make([]Literal, 0, len(call.Args))

	for _, arg := range call.Args {
		lit := Literal{
			Pos: shift(arg.Pos()),
			End: shift(arg.End()),
		}
		lit.Value = src[arg.Pos()-1 : arg.End()-1]

		if bl, ok := arg.(*ast.BasicLit); ok && bl.Kind == token.STRING {
			v, err := strconv.Unquote(bl.Value)
			if err != nil {
				return nil, ErrMalformed
			}

			lit.Value = v
			lit.IsString = true
		}

		lits = append(lits, lit)
	}

	return lits, nil
}

// SplitTypeName splits a target type name into an optional package
// qualifier and a type name. It accepts "Name" and "pkg.Name" where both
// parts are Go identifiers.
func SplitTypeName(s string) (pkg, name string, ok bool) {
	pkg, name, qualified := strings.Cut(s, ".")
	if !qualified {
		return "", s, token.IsIdentifier(s)
	}

	if !token.IsIdentifier(pkg) || !token.IsIdentifier(name) {
		return "", "", false
	}

	return pkg, name, true
}

// Target is a parsed conversion target.
type Target struct {
	// Pointer is set for "*Name" and "*pkg.Name".
	Pointer bool
	Pkg     string
	Name    string
}

// ParseTarget parses a target type name: SplitTypeName's forms, optionally
// behind a single "*".
func ParseTarget(s string) (Target, bool) {
	rest, pointer := strings.CutPrefix(s, "*")

	pkg, name, ok := SplitTypeName(rest)
	if !ok {
		return Target{}, false
	}

	return Target{Pointer: pointer, Pkg: pkg, Name: name}, true
}
