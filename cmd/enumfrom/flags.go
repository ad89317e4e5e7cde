package main

import (
	"errors"
	"os"

	"github.com/spf13/pflag"

	"enumfrom/internal/cli"
	"enumfrom/internal/enumfrom"
)

// genFlags are the flags shared by gen and check.
type genFlags struct {
	output     string
	tags       string
	directives string
	types      []string
	debug      bool
}

func (f *genFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&f.output, "output", "o", "", "generated file name in each package (default: enumfrom_gen.go)")
	fs.StringVar(&f.tags, "tags", "", "comma-separated build tags")
	fs.StringVar(&f.directives, "directives", "", "YAML directive file")
	fs.StringSliceVar(&f.types, "type", nil, "enums to process even without //enumfrom:enum (repeatable)")
	fs.BoolVar(&f.debug, "debug", false, "keep unformatted output when formatting fails")
}

// options resolves flag > config > default into run options.
func (f *genFlags) options(args []string) (enumfrom.Options, error) {
	wd, err := os.Getwd()
	if err != nil {
		return enumfrom.Options{}, cli.GeneralError("getting working directory", err)
	}

	return enumfrom.Options{
		Dir:            wd,
		Env:            os.Environ(),
		Tags:           resolveString(f.tags, cfg.Gen.Tags),
		Patterns:       args,
		Types:          resolveStrings(f.types, cfg.Gen.Types),
		DirectivesPath: resolveString(f.directives, cfg.Gen.Directives),
		OutputFile:     resolveString(f.output, cfg.Gen.Output),
		Debug:          resolveBool(f.debug, cfg.Gen.Debug),
		Logger:         logger,
	}, nil
}

// runError maps pipeline errors onto exit codes. res may be nil.
func runError(res *enumfrom.Result, err error) error {
	switch {
	case errors.Is(err, enumfrom.ErrDiagnostics):
		n := 0
		if res != nil {
			n = len(res.Diagnostics.Errors)
		}

		return cli.DiagnosticsError("invalid directives", n, "error", err)
	case errors.Is(err, enumfrom.ErrLoad):
		return cli.LoadError("loading packages", err)
	default:
		return cli.GeneralError("generating", err)
	}
}
