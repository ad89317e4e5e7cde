package analyze

import (
	"fmt"
	"go/types"
	"io"
	"strings"
	"text/tabwriter"

	"enumfrom/internal/directive"
)

// TypeString renders the payload type a variant was classified by, or
// "-" when there is none.
func (v *VariantInfo) TypeString() string {
	if v.Inner == nil {
		return "-"
	}

	s := types.ExprString(v.Inner)
	if v.Pointer {
		s += " (pointer receiver)"
	}

	return s
}

// DirectiveString renders the from directives of a variant as written.
func (v *VariantInfo) DirectiveString() string {
	var parts []string

	for _, d := range directive.Filter(v.Directives, directive.NameFrom) {
		parts = append(parts, directive.Prefix+d.Name+d.Args)
	}

	if len(parts) == 0 {
		return "-"
	}

	return strings.Join(parts, " ")
}

// Describe writes a table of the enum's variants to w:
//
//	MainError (errors.go:12:6)
//	  Network   string-like    string         //enumfrom:from("NetworkError")
//	  Database  wrapped value  DatabaseError  //enumfrom:from("DatabaseError")
func Describe(w io.Writer, pkg *Package, e *EnumInfo) error {
	pos := pkg.Fset.Position(e.Spec.Name.Pos())
	if _, err := fmt.Fprintf(w, "%s (%s)\n", e.Name, pos); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, v := range e.Variants {
		_, err := fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\n", v.Name, v.Shape, v.TypeString(), v.DirectiveString())
		if err != nil {
			return err
		}
	}

	return tw.Flush()
}
