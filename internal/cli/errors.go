// Package cli provides shared configuration and utilities for the enumfrom CLI.
package cli

import (
	"errors"
	"fmt"
	"io"
)

// Exit codes.
const (
	ExitSuccess     = 0
	ExitGeneral     = 1
	ExitConfig      = 2
	ExitDiagnostics = 3
	ExitLoad        = 4
)

// ExitError ends a command with Code.
type ExitError struct {
	Code    int
	Message string
	// Reported counts the problems already printed to stderr, so the
	// final line only summarizes them.
	Reported int
	// Noun names what Reported counts, e.g. "error" or "stale file".
	Noun string
	Err  error
}

func (e *ExitError) Error() string {
	// The printed problems already say what went wrong
	if e.Reported > 0 {
		return fmt.Sprintf("%s: %s reported above", e.Message, Count(e.Reported, e.Noun))
	}

	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}

	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCode returns the process exit code for err.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	return ExitGeneral
}

// Report prints err to w and returns its exit code.
func Report(w io.Writer, err error) int {
	if err != nil {
		fmt.Fprintln(w, "enumfrom:", err)
	}

	return ExitCode(err)
}

// Count formats n with word, adding a plural "s" unless n is 1.
func Count(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}

	return fmt.Sprintf("%d %ss", n, word)
}

// ConfigError reports a bad flag or configuration file.
func ConfigError(msg string, err error) *ExitError {
	return &ExitError{Code: ExitConfig, Message: msg, Err: err}
}

// DiagnosticsError reports n problems of kind noun that were already
// printed. cause stays reachable through errors.Is.
func DiagnosticsError(msg string, n int, noun string, cause error) *ExitError {
	return &ExitError{Code: ExitDiagnostics, Message: msg, Reported: n, Noun: noun, Err: cause}
}

// LoadError reports packages or files that could not be read.
func LoadError(msg string, err error) *ExitError {
	return &ExitError{Code: ExitLoad, Message: msg, Err: err}
}

// GeneralError reports anything else.
func GeneralError(msg string, err error) *ExitError {
	return &ExitError{Code: ExitGeneral, Message: msg, Err: err}
}
