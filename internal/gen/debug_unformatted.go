package gen

import (
	"os"
	"path/filepath"
	"strings"
)

// writeDebugUnformatted writes unformatted code to a sidecar file next to the
// intended output. Failures are ignored by the caller.
func writeDebugUnformatted(outDir, filename string, content []byte) error {
	if filename == "" {
		return nil
	}

	if outDir != "" {
		if err := os.MkdirAll(outDir, dirPerm); err != nil {
			return err
		}
	}

	// The sidecar lives in the package directory, so it must not end in .go.
	debugName := strings.TrimSuffix(filename, ".go") + ".unformatted.go.txt"

	return os.WriteFile(filepath.Join(outDir, debugName), content, filePerm)
}
