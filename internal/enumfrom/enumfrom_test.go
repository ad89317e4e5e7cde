package enumfrom

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"enumfrom/internal/diagnostic"
	"enumfrom/internal/gen"
)

const goodSrc = `package errs

import "fmt"

type NetworkError struct{ Code int }

func (e NetworkError) Error() string { return fmt.Sprintf("network %d", e.Code) }

type DatabaseError struct{ Table string }

//enumfrom:enum
type MainError interface{ isMainError() }

//enumfrom:from("NetworkError")
type Network struct{ string }

//enumfrom:from("DatabaseError")
type Database struct{ DatabaseError }

func (Network) isMainError()  {}
func (Database) isMainError() {}
`

const badSrc = `package bad

//enumfrom:enum
type BadError interface{ isBadError() }

//enumfrom:from("")
type Empty struct{ string }

func (Empty) isBadError() {}
`

// writeModule lays out a throwaway module and returns its directory.
func writeModule(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	files["go.mod"] = "module example.com/app\n\ngo 1.24\n"

	for name, src := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	}

	return dir
}

func options(dir string) Options {
	return Options{
		Dir:        dir,
		Env:        append(os.Environ(), "GOWORK=off", "GOFLAGS=-mod=mod", "GOPROXY=off"),
		Patterns:   []string{"./..."},
		OutputFile: gen.DefaultOutputFile,
	}
}

func TestRun(t *testing.T) {
	dir := writeModule(t, map[string]string{"errs/errors.go": goodSrc})

	res, err := Run(context.Background(), options(dir))
	require.NoError(t, err)
	require.Len(t, res.Plans, 1)

	out := filepath.Join("errs", gen.DefaultOutputFile)
	require.Contains(t, res.Files, out)

	content := string(res.Files[out])
	assert.Contains(t, content, "// Code generated by enumfrom. DO NOT EDIT.")
	assert.Contains(t, content, "func MainErrorFromNetworkError(src NetworkError) MainError {")
	assert.Contains(t, content, "return Network{fmt.Sprint(src)}")
	assert.Contains(t, content, "return Database{src}")

	files := res.GeneratedFiles()
	require.Len(t, files, 1)
	require.NoError(t, gen.WriteFiles(files, dir))

	// A second run ignores the generated file and yields the same bytes.
	again, err := Run(context.Background(), options(dir))
	require.NoError(t, err)
	assert.Equal(t, res.Files, again.Files)
}

func TestRun_AllOrNothing(t *testing.T) {
	dir := writeModule(t, map[string]string{
		"errs/errors.go": goodSrc,
		"bad/errors.go":  badSrc,
	})

	res, err := Run(context.Background(), options(dir))
	require.Error(t, err)
	require.ErrorIs(t, err, ErrDiagnostics)

	assert.Empty(t, res.Files)
	require.Len(t, res.Diagnostics.Errors, 1)

	d := res.Diagnostics.Errors[0]
	assert.Equal(t, diagnostic.CodeEmptyTarget, d.Code)
	assert.Equal(t, "expected this to take a type name", d.Message)
	assert.Equal(t, 6, d.Span.Position.Line)
	assert.Equal(t, filepath.Join(dir, "bad", "errors.go"), d.Span.Position.Filename)
}

func TestRun_OrphanDirectiveWarns(t *testing.T) {
	dir := writeModule(t, map[string]string{
		"errs/errors.go": goodSrc,
		"misc/misc.go": `package misc

type NetworkError struct{}

//enumfrom:from("NetworkError")
type Network struct{ string }
`,
	})

	res, err := Run(context.Background(), options(dir))
	require.NoError(t, err)
	require.Len(t, res.Plans, 1)
	assert.Len(t, res.Files, 1)

	require.Len(t, res.Diagnostics.Warnings, 1)

	w := res.Diagnostics.Warnings[0]
	assert.Equal(t, diagnostic.CodeOrphanDirective, w.Code)
	assert.Equal(t, "Network carries //enumfrom:from but implements no enum in this package", w.Message)
	assert.Equal(t, filepath.Join(dir, "misc", "misc.go"), w.Span.Position.Filename)
	assert.Equal(t, 5, w.Span.Position.Line)
}

func TestCheck(t *testing.T) {
	dir := writeModule(t, map[string]string{"errs/errors.go": goodSrc})

	res, err := Check(context.Background(), options(dir))
	require.NoError(t, err)
	assert.Empty(t, res.Files)
	require.Len(t, res.Plans, 1)
	assert.Equal(t, 2, res.Plans[0].RuleCount())
}

func TestRun_UnknownTypes(t *testing.T) {
	dir := writeModule(t, map[string]string{
		"errs/errors.go": goodSrc,
		"enumfrom.yaml":  "enums:\n  GhostError:\n    V: [X]\n",
	})

	opts := options(dir)
	opts.Types = []string{"MissingError"}
	opts.DirectivesPath = "enumfrom.yaml"

	res, err := Run(context.Background(), opts)
	require.ErrorIs(t, err, ErrDiagnostics)

	require.Len(t, res.Diagnostics.Errors, 2)

	for _, d := range res.Diagnostics.Errors {
		assert.Equal(t, diagnostic.CodeUnknownType, d.Code)
	}

	assert.Equal(t, "MissingError", res.Diagnostics.Errors[0].Enum)
	assert.False(t, res.Diagnostics.Errors[0].Span.Position.IsValid())

	ghost := res.Diagnostics.Errors[1]
	assert.Equal(t, "GhostError", ghost.Enum)
	assert.Equal(t, 2, ghost.Span.Position.Line)
	assert.Equal(t, filepath.Join(dir, "enumfrom.yaml"), ghost.Span.Position.Filename)
}

func TestRun_UnknownTypeHint(t *testing.T) {
	dir := writeModule(t, map[string]string{"errs/errors.go": goodSrc})

	opts := options(dir)
	opts.Types = []string{"MainErr"}

	res, err := Run(context.Background(), opts)
	require.ErrorIs(t, err, ErrDiagnostics)
	require.Len(t, res.Diagnostics.Errors, 1)

	assert.Equal(t, "type MainErr not found in the selected packages; did you mean MainError?",
		res.Diagnostics.Errors[0].Message)
}

func TestRun_DirectiveFileActivatesEnum(t *testing.T) {
	dir := writeModule(t, map[string]string{
		"errs/errors.go": `package errs

type TimeoutError struct{}

func (TimeoutError) Error() string { return "timeout" }

type StoreError interface{ isStoreError() }

type Timeout struct{ string }

func (Timeout) isStoreError() {}
`,
		"enumfrom.yaml": "version: \"1\"\nenums:\n  StoreError:\n    Timeout: TimeoutError\n",
	})

	opts := options(dir)
	opts.DirectivesPath = filepath.Join(dir, "enumfrom.yaml")

	res, err := Run(context.Background(), opts)
	require.NoError(t, err)

	content := string(res.Files[filepath.Join("errs", gen.DefaultOutputFile)])
	assert.Contains(t, content, "func StoreErrorFromTimeoutError(src TimeoutError) StoreError {")
}

func TestRun_LoadErrors(t *testing.T) {
	dir := writeModule(t, map[string]string{"errs/errors.go": "package errs\n\nfunc {\n"})

	_, err := Run(context.Background(), options(dir))
	require.ErrorIs(t, err, ErrLoad)

	opts := options(t.TempDir())
	opts.DirectivesPath = "missing.yaml"

	_, err = Run(context.Background(), opts)
	require.ErrorIs(t, err, ErrLoad)
}

func TestInspect(t *testing.T) {
	dir := writeModule(t, map[string]string{"errs/errors.go": goodSrc})

	infos, err := Inspect(context.Background(), options(dir))
	require.NoError(t, err)
	require.Len(t, infos, 1)

	enum := infos[0].Enum("MainError")
	require.NotNil(t, enum)
	assert.True(t, enum.Marked)
	require.Len(t, enum.Variants, 2)
	assert.Equal(t, "Network", enum.Variants[0].Name)
	assert.Equal(t, "Database", enum.Variants[1].Name)
}
