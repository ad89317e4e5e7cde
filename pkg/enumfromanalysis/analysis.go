// Package enumfromanalysis reports enumfrom problems through the
// golang.org/x/tools/go/analysis protocol, so that editors and go vet show
// them inline.
package enumfromanalysis

import (
	"strings"

	"golang.org/x/tools/go/analysis"

	"enumfrom/internal/analyze"
	"enumfrom/internal/plan"
)

// Analyzer validates enumfrom directives in the package.
var Analyzer = &analysis.Analyzer{
	Name: "enumfrom",
	Doc:  "check //enumfrom:enum and //enumfrom:from directives",
	Run:  run,
}

var typesFlag string

func init() {
	Analyzer.Flags.StringVar(&typesFlag, "types", "", "comma-separated enums to check even without //enumfrom:enum")
}

func run(pass *analysis.Pass) (any, error) {
	pkg := &analyze.Package{
		Name:      pass.Pkg.Name(),
		PkgPath:   pass.Pkg.Path(),
		Fset:      pass.Fset,
		Syntax:    pass.Files,
		Types:     pass.Pkg,
		TypesInfo: pass.TypesInfo,
	}

	p := plan.Extract(analyze.Inspect(pkg, splitTypes(typesFlag)), nil)

	// Diagnostics without a position in a Go file cannot be reported here
	for _, d := range p.Diagnostics.All() {
		if !d.Span.Pos.IsValid() {
			continue
		}

		pass.Report(analysis.Diagnostic{
			Pos:      d.Span.Pos,
			End:      d.Span.End,
			Category: d.Code,
			Message:  d.Message,
		})
	}

	return nil, nil
}

func splitTypes(s string) []string {
	var out []string

	for _, name := range strings.Split(s, ",") {
		if name = strings.TrimSpace(name); name != "" {
			out = append(out, name)
		}
	}

	return out
}
