package enumfromanalysis_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/tools/go/analysis/analysistest"

	"enumfrom/pkg/enumfromanalysis"
)

// TestAnalysis checks the diagnostics reported for each package under
// testdata against the "// want `REGEXP`" comments in its sources.
// A package without want comments must produce no diagnostics.
func TestAnalysis(t *testing.T) {
	ents, err := os.ReadDir(filepath.FromSlash("testdata"))
	require.NoError(t, err)

	// Load from the module root so that analysistest runs in module mode.
	root, err := filepath.Abs(filepath.Join("..", ".."))
	require.NoError(t, err)

	t.Setenv("GOFLAGS", "-tags=enumfrom")

	for _, ent := range ents {
		if !ent.IsDir() {
			continue
		}

		t.Run(ent.Name(), func(t *testing.T) {
			defer func() {
				if t.Failed() {
					t.Logf("\n\tReproduce:\tgo run ./cmd/enumfrom check ./pkg/enumfromanalysis/testdata/%s", ent.Name())
				}
			}()

			analysistest.Run(t, root, enumfromanalysis.Analyzer, "./pkg/enumfromanalysis/testdata/"+ent.Name())
		})
	}
}
