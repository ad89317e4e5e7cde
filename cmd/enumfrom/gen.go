package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"enumfrom/internal/cli"
	"enumfrom/internal/enumfrom"
	"enumfrom/internal/gen"
)

var (
	genOpts   genFlags
	genDryRun bool
)

var genCmd = &cobra.Command{
	Use:   "gen [packages]",
	Short: "Generate conversion functions",
	Long: `Generate one file per package holding a conversion function for every
//enumfrom:from directive. Nothing is written when any package has an error.`,
	Example: `  # Generate for the current package (from a //go:generate line)
  enumfrom gen

  # Generate for a whole module with a directive file
  enumfrom gen --directives enumfrom.yaml ./...

  # Print the generated code instead of writing it
  enumfrom gen --dry-run ./internal/errors`,
	RunE: func(cmd *cobra.Command, args []string) error {
		color, err := useColor(colorMode, os.Stderr)
		if err != nil {
			return cli.ConfigError("parsing flags", err)
		}

		opts, err := genOpts.options(args)
		if err != nil {
			return err
		}

		res, err := enumfrom.Run(cmd.Context(), opts)
		if res != nil {
			printDiagnostics(os.Stderr, res.Diagnostics, opts.Dir, color)
		}

		if err != nil {
			return runError(res, err)
		}

		files := res.GeneratedFiles()

		if genDryRun {
			for _, f := range files {
				fmt.Printf("// %s\n%s\n", f.Filename, f.Content)
			}

			return nil
		}

		if err := gen.WriteFiles(files, opts.Dir); err != nil {
			return cli.GeneralError("writing files", err)
		}

		if !quiet {
			for _, f := range files {
				fmt.Println("Generated:", f.Filename)
			}
		}

		return nil
	},
}

func init() {
	genOpts.register(genCmd.Flags())
	genCmd.Flags().BoolVar(&genDryRun, "dry-run", false, "print generated code to stdout instead of writing files")
}
