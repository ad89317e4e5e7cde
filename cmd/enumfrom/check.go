package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"enumfrom/internal/cli"
	"enumfrom/internal/enumfrom"
)

var (
	checkOpts  genFlags
	checkStale bool
)

var checkCmd = &cobra.Command{
	Use:   "check [packages]",
	Short: "Validate directives without writing files",
	Long: `Validate enumfrom directives and report every problem.

With --stale, also render the output and fail when a generated file on disk
differs from it.`,
	Example: `  # Validate the whole module
  enumfrom check ./...

  # Fail in CI when generated files are out of date
  enumfrom check --stale ./...`,
	RunE: func(cmd *cobra.Command, args []string) error {
		color, err := useColor(colorMode, os.Stderr)
		if err != nil {
			return cli.ConfigError("parsing flags", err)
		}

		opts, err := checkOpts.options(args)
		if err != nil {
			return err
		}

		run := enumfrom.Check
		if checkStale {
			run = enumfrom.Run
		}

		res, err := run(cmd.Context(), opts)
		if res != nil {
			printDiagnostics(os.Stderr, res.Diagnostics, opts.Dir, color)
		}

		if err != nil {
			return runError(res, err)
		}

		if checkStale {
			stale := staleFiles(opts.Dir, res)
			for _, path := range stale {
				fmt.Fprintf(os.Stderr, "%s: out of date, run enumfrom gen\n", path)
			}

			if len(stale) > 0 {
				return cli.DiagnosticsError("generated files out of date", len(stale), "stale file", nil)
			}
		}

		if !quiet {
			enums, rules := 0, 0
			for _, p := range res.Plans {
				enums += len(p.Enums)
				rules += p.RuleCount()
			}

			fmt.Printf("ok: %s, %s in %s\n",
				cli.Count(enums, "enum"), cli.Count(rules, "conversion"), cli.Count(len(res.Plans), "package"))
		}

		return nil
	},
}

func init() {
	checkOpts.register(checkCmd.Flags())
	checkCmd.Flags().BoolVar(&checkStale, "stale", false, "fail when generated files on disk are out of date")
}

// staleFiles returns the paths, in sorted order, whose content on disk
// differs from the rendered output.
func staleFiles(dir string, res *enumfrom.Result) []string {
	var stale []string

	for _, f := range res.GeneratedFiles() {
		path := f.Filename
		if !filepath.IsAbs(path) {
			path = filepath.Join(dir, path)
		}

		current, err := os.ReadFile(path)
		if err != nil || !bytes.Equal(current, f.Content) {
			stale = append(stale, f.Filename)
		}
	}

	return stale
}
