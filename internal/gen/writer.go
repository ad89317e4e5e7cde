package gen

import (
	"fmt"
	"os"
	"path/filepath"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFiles writes all generated files. Relative file names are resolved
// against baseDir. Missing directories are created.
func WriteFiles(files []GeneratedFile, baseDir string) error {
	for _, file := range files {
		outputPath := file.Filename
		if !filepath.IsAbs(outputPath) {
			outputPath = filepath.Join(baseDir, outputPath)
		}

		err := os.MkdirAll(filepath.Dir(outputPath), dirPerm)
		if err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}

		err = os.WriteFile(outputPath, file.Content, filePerm)
		if err != nil {
			return fmt.Errorf("writing file %s: %w", file.Filename, err)
		}
	}

	return nil
}
