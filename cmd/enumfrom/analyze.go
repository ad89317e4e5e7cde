package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"enumfrom/internal/analyze"
	"enumfrom/internal/cli"
	"enumfrom/internal/diagnostic"
	"enumfrom/internal/enumfrom"
)

var analyzeOpts genFlags

var analyzeCmd = &cobra.Command{
	Use:   "analyze [packages]",
	Short: "List enums, variants and their directives",
	Long: `List every enum found in the packages with its variants, the payload
shape each variant was classified as, and its directives.`,
	Example: `  enumfrom analyze ./...`,
	RunE: func(cmd *cobra.Command, args []string) error {
		color, err := useColor(colorMode, os.Stderr)
		if err != nil {
			return cli.ConfigError("parsing flags", err)
		}

		opts, err := analyzeOpts.options(args)
		if err != nil {
			return err
		}

		infos, err := enumfrom.Inspect(cmd.Context(), opts)
		if err != nil {
			return runError(nil, err)
		}

		var diags diagnostic.Diagnostics

		for _, info := range infos {
			diags.Merge(info.Diagnostics)

			if len(info.Enums) == 0 {
				continue
			}

			fmt.Println(info.Package.PkgPath)

			for _, e := range info.Enums {
				if err := analyze.Describe(os.Stdout, info.Package, e); err != nil {
					return cli.GeneralError("writing output", err)
				}
			}

			fmt.Println()
		}

		printDiagnostics(os.Stderr, diags, opts.Dir, color)

		if diags.HasErrors() {
			return cli.DiagnosticsError("invalid directives", len(diags.Errors), "error", nil)
		}

		return nil
	},
}

func init() {
	analyzeOpts.register(analyzeCmd.Flags())
}
