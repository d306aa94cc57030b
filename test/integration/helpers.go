package integration

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/classpage/internal/generate"
	"git.home.luguber.info/inful/classpage/internal/model"
)

// generateFromModel builds every type of modelPath into a fresh directory.
func generateFromModel(t *testing.T, modelPath string, rc model.RenderContext) (string, *generate.Report) {
	t.Helper()

	types, err := model.LoadFile(modelPath)
	require.NoError(t, err, "failed to load model")

	outDir := filepath.Join(t.TempDir(), "docs")
	report, err := generate.Run(context.Background(), types, generate.Options{
		OutDir:        outDir,
		RenderContext: rc,
		Concurrency:   2,
	})
	require.NoError(t, err, "generation failed")
	return outDir, report
}

// listPages returns the page file names of dir, sorted.
func listPages(t *testing.T, dir, ext string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ext) {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names
}

// verifyGoldenPages compares every page in outputDir with the file of the
// same name in goldenDir, or rewrites goldenDir when updateGolden is set.
func verifyGoldenPages(t *testing.T, outputDir, goldenDir string, updateGolden bool) {
	t.Helper()

	actual := listPages(t, outputDir, ".md")

	if updateGolden {
		require.NoError(t, os.RemoveAll(goldenDir))
		require.NoError(t, os.MkdirAll(goldenDir, 0o750))
		for _, name := range actual {
			// #nosec G304 -- test utility reading from test output directory
			data, err := os.ReadFile(filepath.Join(outputDir, name))
			require.NoError(t, err)
			require.NoError(t, os.WriteFile(filepath.Join(goldenDir, name), data, 0o600))
		}
		t.Logf("Updated golden pages in %s", goldenDir)
		return
	}

	require.Equal(t, listPages(t, goldenDir, ".md"), actual, "page set differs from golden")
	for _, name := range actual {
		// #nosec G304 -- test utility reading from test directories
		want, err := os.ReadFile(filepath.Join(goldenDir, name))
		require.NoError(t, err)
		// #nosec G304 -- test utility reading from test output directory
		got, err := os.ReadFile(filepath.Join(outputDir, name))
		require.NoError(t, err)
		require.Equal(t, string(want), string(got), "page %s differs from golden", name)
	}
}
