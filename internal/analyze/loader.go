package analyze

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/tools/go/packages"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedCompiledGoFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// BuildTag is set while loading so that files generated earlier, which
// carry "//go:build !enumfrom", do not take part in analysis.
const BuildTag = "enumfrom"

// LoadConfig controls package loading.
type LoadConfig struct {
	// Dir is the working directory for pattern resolution.
	Dir string
	// Env overrides the environment of the go command, nil means inherit.
	Env []string
	// Tags are extra comma-separated build tags.
	Tags string
}

// Analyzer loads Go packages for inspection.
type Analyzer struct {
	config LoadConfig
	logger *slog.Logger
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer(config LoadConfig, logger *slog.Logger) *Analyzer {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Analyzer{config: config, logger: logger}
}

// LoadPackages loads the packages matching patterns.
// Patterns are standard Go package patterns (e.g., "./...", "enumfrom/examples/mainerror").
//
// Listing and parse errors fail the load. Type errors are only logged:
// user code commonly calls functions that the generator has yet to write.
func (a *Analyzer) LoadPackages(ctx context.Context, patterns ...string) ([]*Package, error) {
	tags := BuildTag
	if a.config.Tags != "" {
		tags += "," + a.config.Tags
	}

	cfg := &packages.Config{
		Mode:       LoadMode,
		Context:    ctx,
		Dir:        a.config.Dir,
		Env:        a.config.Env,
		BuildFlags: []string{"-tags=" + tags},
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no packages found: %v", patterns)
	}

	var errs []error

	out := make([]*Package, 0, len(pkgs))
	for _, pkg := range pkgs {
		fatal := false

		for _, e := range pkg.Errors {
			if e.Kind == packages.TypeError {
				a.logger.Warn("type error", "package", pkg.PkgPath, "pos", e.Pos, "msg", e.Msg)
				continue
			}

			errs = append(errs, e)
			fatal = true
		}

		if fatal || pkg.Types == nil {
			continue
		}

		a.logger.Debug("loaded package", "package", pkg.PkgPath, "files", len(pkg.Syntax))
		out = append(out, FromPackages(pkg))
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %w", errors.Join(errs...))
	}

	return out, nil
}
