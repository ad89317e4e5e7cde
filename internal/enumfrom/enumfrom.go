// Package enumfrom runs the generator: it loads packages, finds enums,
// extracts their conversion rules and renders one file per package.
package enumfrom

import (
	"context"
	"errors"
	"fmt"
	"go/types"
	"log/slog"
	"maps"
	"path/filepath"
	"slices"

	"enumfrom/internal/analyze"
	"enumfrom/internal/diagnostic"
	"enumfrom/internal/gen"
	"enumfrom/internal/mapping"
	"enumfrom/internal/match"
	"enumfrom/internal/plan"
)

var (
	// ErrLoad is returned when packages or the directive file cannot be read.
	ErrLoad = errors.New("load failed")
	// ErrDiagnostics is returned when any package reported an error.
	ErrDiagnostics = errors.New("generation failed")
)

// Options configures a run.
type Options struct {
	// Dir is the working directory; output paths are made relative to it.
	Dir string
	// Env is the environment of the go command, nil means inherit.
	Env []string
	// Tags are extra comma-separated build tags.
	Tags string
	// Patterns select the packages, "." when empty.
	Patterns []string
	// Types names enums to process even without //enumfrom:enum.
	Types []string
	// DirectivesPath is an optional YAML directive file.
	DirectivesPath string
	// OutputFile is the generated file name in each package.
	OutputFile string
	// Debug keeps unformatted output when formatting fails.
	Debug  bool
	Logger *slog.Logger
}

// Result is the outcome of a run.
type Result struct {
	// Files maps output paths to generated source. It is empty whenever
	// Diagnostics has errors.
	Files map[string][]byte
	// Plans holds one plan per package that declares an enum.
	Plans []*plan.PackagePlan
	// Diagnostics of all packages.
	Diagnostics diagnostic.Diagnostics
}

// GeneratedFiles returns Files sorted by path.
func (r *Result) GeneratedFiles() []gen.GeneratedFile {
	paths := slices.Sorted(maps.Keys(r.Files))

	out := make([]gen.GeneratedFile, 0, len(paths))
	for _, path := range paths {
		out = append(out, gen.GeneratedFile{Filename: path, Content: r.Files[path]})
	}

	return out
}

// Run generates the conversion functions for every enum in the selected
// packages. Nothing is generated when any package has an error: the
// returned error then wraps ErrDiagnostics and Result lists the problems.
func Run(ctx context.Context, opts Options) (*Result, error) {
	return run(ctx, opts, true)
}

// Check runs the same validation as Run without rendering any file.
func Check(ctx context.Context, opts Options) (*Result, error) {
	return run(ctx, opts, false)
}

// Inspect loads the selected packages and returns the enums they declare,
// without extracting rules.
func Inspect(ctx context.Context, opts Options) ([]*analyze.PackageInfo, error) {
	logger := loggerOf(opts)

	file, err := loadDirectives(opts)
	if err != nil {
		return nil, err
	}

	pkgs, err := loadPackages(ctx, opts, logger)
	if err != nil {
		return nil, err
	}

	want := wanted(opts, file)

	var out []*analyze.PackageInfo

	for _, pkg := range pkgs {
		info := analyze.Inspect(pkg, want)
		if len(info.Enums) > 0 || len(info.Diagnostics.All()) > 0 {
			out = append(out, info)
		}
	}

	return out, nil
}

func run(ctx context.Context, opts Options, render bool) (*Result, error) {
	logger := loggerOf(opts)

	file, err := loadDirectives(opts)
	if err != nil {
		return nil, err
	}

	pkgs, err := loadPackages(ctx, opts, logger)
	if err != nil {
		return nil, err
	}

	res := &Result{Files: make(map[string][]byte)}
	want := wanted(opts, file)
	found := make(map[string]bool)
	names := make(map[string]bool)

	for _, pkg := range pkgs {
		markDeclared(pkg, want, found, names)

		info := analyze.Inspect(pkg, want)
		if len(info.Enums) == 0 && !info.Diagnostics.HasErrors() {
			res.Diagnostics.Merge(info.Diagnostics)
			continue
		}

		p := plan.Extract(info, file)
		logger.Debug("extracted rules", "package", pkg.PkgPath, "enums", len(p.Enums), "rules", p.RuleCount())

		res.Plans = append(res.Plans, p)
		res.Diagnostics.Merge(p.Diagnostics)
	}

	reportUnknownTypes(opts, file, found, slices.Sorted(maps.Keys(names)), &res.Diagnostics)

	if res.Diagnostics.HasErrors() {
		return res, fmt.Errorf("%w: %d error(s)", ErrDiagnostics, len(res.Diagnostics.Errors))
	}

	if !render {
		return res, nil
	}

	g := gen.NewGenerator(gen.GeneratorConfig{OutputFile: opts.OutputFile, Debug: opts.Debug})

	var errs []error

	for _, p := range res.Plans {
		out, err := g.Generate(p)
		if err != nil {
			errs = append(errs, fmt.Errorf("generating %s: %w", p.Package.PkgPath, err))
			continue
		}

		res.Files[relPath(opts.Dir, out.Filename)] = out.Content
	}

	if len(errs) > 0 {
		res.Files = map[string][]byte{}
		return res, errors.Join(errs...)
	}

	return res, nil
}

func loggerOf(opts Options) *slog.Logger {
	if opts.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}

	return opts.Logger
}

func loadDirectives(opts Options) (*mapping.DirectiveFile, error) {
	if opts.DirectivesPath == "" {
		return nil, nil
	}

	path := opts.DirectivesPath
	if !filepath.IsAbs(path) && opts.Dir != "" {
		path = filepath.Join(opts.Dir, path)
	}

	file, err := mapping.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}

	return file, nil
}

func loadPackages(ctx context.Context, opts Options, logger *slog.Logger) ([]*analyze.Package, error) {
	patterns := opts.Patterns
	if len(patterns) == 0 {
		patterns = []string{"."}
	}

	a := analyze.NewAnalyzer(analyze.LoadConfig{Dir: opts.Dir, Env: opts.Env, Tags: opts.Tags}, logger)

	pkgs, err := a.LoadPackages(ctx, patterns...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}

	return pkgs, nil
}

// wanted returns the enum names requested by flag or directive file.
func wanted(opts Options, file *mapping.DirectiveFile) []string {
	want := slices.Clone(opts.Types)
	for _, name := range file.Names() {
		if !slices.Contains(want, name) {
			want = append(want, name)
		}
	}

	return want
}

// markDeclared records which wanted names pkg declares as types, and adds
// the names of its interface types to names for suggestions.
func markDeclared(pkg *analyze.Package, want []string, found, names map[string]bool) {
	if pkg.Types == nil {
		return
	}

	scope := pkg.Types.Scope()

	for _, name := range want {
		if _, ok := scope.Lookup(name).(*types.TypeName); ok {
			found[name] = true
		}
	}

	for _, name := range scope.Names() {
		if tn, ok := scope.Lookup(name).(*types.TypeName); ok && types.IsInterface(tn.Type()) {
			names[name] = true
		}
	}
}

// reportUnknownTypes flags requested enums that no package declares.
func reportUnknownTypes(opts Options, file *mapping.DirectiveFile, found map[string]bool, names []string, diags *diagnostic.Diagnostics) {
	for _, name := range opts.Types {
		if !found[name] {
			diags.Add(diagnostic.Diagnostic{
				Severity: diagnostic.DiagnosticError,
				Code:     diagnostic.CodeUnknownType,
				Message:  fmt.Sprintf("type %s not found in the selected packages%s", name, match.Hint(name, names)),
				Enum:     name,
			})
		}
	}

	if file == nil {
		return
	}

	for _, e := range file.Enums {
		if !found[e.Name] && !slices.Contains(opts.Types, e.Name) {
			diags.Add(diagnostic.Diagnostic{
				Severity: diagnostic.DiagnosticError,
				Code:     diagnostic.CodeUnknownType,
				Message:  fmt.Sprintf("type %s not found in the selected packages%s", e.Name, match.Hint(e.Name, names)),
				Enum:     e.Name,
				Span:     diagnostic.AtPosition(e.Position),
			})
		}
	}
}

func relPath(dir, path string) string {
	if dir == "" {
		return path
	}

	if rel, err := filepath.Rel(dir, path); err == nil {
		return rel
	}

	return path
}
