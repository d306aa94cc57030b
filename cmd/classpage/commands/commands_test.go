package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"git.home.luguber.info/inful/classpage/internal/config"
	"git.home.luguber.info/inful/classpage/internal/foundation/errors"
	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/require"
)

const sampleModel = `types:
  - name: Foo
    package: {name: pkg}
    ancestors:
      - {name: Base, package: pkg, documented: true}
    methods:
      - name: bar
        signature:
          returns: {name: void}
  - name: Base
    package: {name: pkg}
`

func writeModel(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "model.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func writeConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "classpage.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: error\n"), 0o600))
	return path
}

func run(t *testing.T, args ...string) error {
	t.Helper()
	var cli CLI
	global := &Global{}
	parser, err := kong.New(&cli,
		kong.Name("classpage"),
		kong.Vars{"version": "test"},
		kong.Bind(global),
		kong.BindTo(context.Background(), (*context.Context)(nil)),
		kong.Exit(func(int) { t.Fatal("unexpected exit") }),
	)
	require.NoError(t, err)
	kctx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	return kctx.Run()
}

func TestGenerateAndVerify(t *testing.T) {
	modelPath := writeModel(t, sampleModel)
	out := filepath.Join(t.TempDir(), "docs")
	cfgPath := writeConfig(t)

	require.NoError(t, run(t, "-c", cfgPath, "generate", modelPath, "-o", out, "--metrics-file", filepath.Join(out, "metrics.prom")))
	require.FileExists(t, filepath.Join(out, "pkg", "Foo.md"))
	require.FileExists(t, filepath.Join(out, "pkg", "Base.md"))
	require.FileExists(t, filepath.Join(out, "metrics.prom"))

	require.NoError(t, run(t, "-c", cfgPath, "verify", out))
	err := run(t, "-c", cfgPath, "verify", out, "--require-index")
	require.True(t, errors.HasCategory(err, errors.CategoryValidation))
}

func TestGenerate_StrictFailsOnDroppedMember(t *testing.T) {
	modelPath := writeModel(t, "types:\n  - name: Foo\n    methods:\n      - name: broken\n")
	out := t.TempDir()
	cfgPath := writeConfig(t)

	require.NoError(t, run(t, "-c", cfgPath, "generate", modelPath, "-o", out))
	err := run(t, "-c", cfgPath, "generate", modelPath, "-o", out, "--strict")
	require.True(t, errors.HasCategory(err, errors.CategoryRender))
}

func TestExplicitMissingConfigFails(t *testing.T) {
	err := run(t, "--config", filepath.Join(t.TempDir(), "nope.yaml"), "verify", t.TempDir())
	require.True(t, errors.HasCategory(err, errors.CategoryConfig))
}

func TestInitWritesConfig(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "classpage.yaml")
	require.NoError(t, run(t, "--config", cfgPath, "init"))
	_, err := config.Load(cfgPath)
	require.NoError(t, err)
}

func TestLoadModels_Empty(t *testing.T) {
	_, err := loadModels([]string{writeModel(t, "types: []\n")})
	require.True(t, errors.HasCategory(err, errors.CategoryValidation))
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	newLogger(&buf, config.LogLevelWarn, config.LogFormatJSON, false).Info("hidden")
	require.Empty(t, buf.String())

	newLogger(&buf, config.LogLevelWarn, config.LogFormatJSON, true).Debug("shown")
	require.Contains(t, buf.String(), `"msg":"shown"`)
}
