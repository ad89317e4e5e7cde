package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"

	"enumfrom/internal/diagnostic"
)

const (
	red    = "\033[31m"
	yellow = "\033[33m"
	dim    = "\033[2m"
	reset  = "\033[0m"
)

// useColor decides whether diagnostics written to f get ANSI colors.
func useColor(mode string, f *os.File) (bool, error) {
	switch mode {
	case "auto":
		return isatty(f), nil
	case "always":
		return true, nil
	case "never":
		return false, nil
	default:
		return false, fmt.Errorf("invalid --color value: %s", mode)
	}
}

// isatty reports whether f is a terminal.
func isatty(f *os.File) bool {
	_, err := unix.IoctlGetWinsize(int(f.Fd()), unix.TIOCGWINSZ)
	return err == nil
}

// printDiagnostics writes diagnostics in file order, one per line, with
// file names relative to wd.
func printDiagnostics(w io.Writer, diags diagnostic.Diagnostics, wd string, color bool) {
	for _, d := range diags.All() {
		if d.Span.Position.IsValid() && wd != "" {
			if rel, err := filepath.Rel(wd, d.Span.Position.Filename); err == nil {
				d.Span.Position.Filename = rel
			}
		}

		line := d.String()
		if color {
			line = colorize(d, line)
		}

		fmt.Fprintln(w, line)
	}
}

func colorize(d diagnostic.Diagnostic, line string) string {
	switch d.Severity {
	case diagnostic.DiagnosticError:
		return red + line + reset
	case diagnostic.DiagnosticWarning:
		return yellow + line + reset
	default:
		return dim + line + reset
	}
}
