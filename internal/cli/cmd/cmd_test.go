package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/sidepanel/internal/domain/build"
)

func isolateXDG(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("SIDEPANEL_LOG_LEVEL", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "state"))
	return dir
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	configFile, verbose = "", false
	simulateSettle, simulatePlain = false, false
	simulateWidth, simulateHeight = 120, 40
	schemaOutputDir, versionShort = "", false

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func writeFile(t *testing.T, path, content string) string {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestVersion(t *testing.T) {
	SetBuildInfo(build.Info{Version: "1.4.0", Commit: "abc123", BuildDate: "2026-10-01", GoVersion: "go1.25"})

	out, err := execute(t, "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, "1.4.0\n", out)

	out, err = execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "abc123")
}

func TestConfigPath_CreatesDefaultFile(t *testing.T) {
	dir := isolateXDG(t)

	out, err := execute(t, "config", "path")
	require.NoError(t, err)
	assert.Contains(t, out, filepath.Join(dir, "config", "sidepanel", "config.toml"))
	assert.Contains(t, out, "exists")
}

func TestConfigShow(t *testing.T) {
	isolateXDG(t)

	out, err := execute(t, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "[shell]")
	assert.Contains(t, out, "menu")
	assert.Contains(t, out, "details")
}

func TestConfigSchema(t *testing.T) {
	out, err := execute(t, "config", "schema")
	require.NoError(t, err)
	assert.Contains(t, out, "sidepanel configuration")

	dir := t.TempDir()
	out, err = execute(t, "config", "schema", "--output", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "config.schema.json")
	assert.FileExists(t, filepath.Join(dir, "config.schema.json"))
}

func TestConfigValidate(t *testing.T) {
	dir := isolateXDG(t)

	good := writeFile(t, filepath.Join(dir, "good.toml"), "[shell]\nmode = \"over\"\n")
	out, err := execute(t, "--config", good, "config", "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "2 panels")

	bad := writeFile(t, filepath.Join(dir, "bad.toml"), "[shell]\nmode = \"sideways\"\n")
	_, err = execute(t, "--config", bad, "config", "validate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "shell.mode")
}

const menuScript = `name: menu
width: 100
height: 30
steps:
  - action: toggle
    panel: menu
  - action: gesture
    gesture: swipeleft
`

func TestSimulate_Plain(t *testing.T) {
	dir := isolateXDG(t)
	script := writeFile(t, filepath.Join(dir, "menu.yaml"), menuScript)

	out, err := execute(t, "simulate", script, "--plain", "--settle")
	require.NoError(t, err)

	lines := bytes.Split(bytes.TrimSpace([]byte(out)), []byte("\n"))
	require.Len(t, lines, 3)
	assert.Equal(t, "0\tinitial\tleft=0\tright=0\tmenu=HIDDEN\tdetails=HIDDEN", string(lines[0]))
	assert.Equal(t, "1\ttoggle menu\tleft=24\tright=-24\tmenu=VISIBLE 0/24\tdetails=HIDDEN", string(lines[1]))
	assert.Equal(t, "2\tswipeleft\tleft=0\tright=0\tmenu=HIDDEN\tdetails=HIDDEN", string(lines[2]))
}

func TestSimulate_Table(t *testing.T) {
	dir := isolateXDG(t)
	script := writeFile(t, filepath.Join(dir, "menu.yaml"), menuScript)

	out, err := execute(t, "simulate", script, "--settle")
	require.NoError(t, err)
	assert.Contains(t, out, "toggle menu")
	assert.Contains(t, out, "VISIBLE 0/24")
}

func TestSimulate_StopsAtFailingStep(t *testing.T) {
	dir := isolateXDG(t)
	script := writeFile(t, filepath.Join(dir, "bad.yaml"), `steps:
  - action: toggle
    panel: menu
  - action: show
    panel: nowhere
`)

	out, err := execute(t, "simulate", script, "--plain", "--settle")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown panel "nowhere"`)
	assert.Contains(t, out, "1\ttoggle menu")
}

func TestSimulate_MissingScript(t *testing.T) {
	dir := isolateXDG(t)

	_, err := execute(t, "simulate", filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
}

func TestSimulate_BundledScripts(t *testing.T) {
	isolateXDG(t)
	paths, err := filepath.Glob(filepath.Join("..", "..", "..", "scripts", "*.yaml"))
	require.NoError(t, err)
	require.NotEmpty(t, paths)

	for _, path := range paths {
		t.Run(filepath.Base(path), func(t *testing.T) {
			out, err := execute(t, "simulate", path, "--plain")
			require.NoError(t, err)
			assert.Contains(t, out, "0\tinitial")
		})
	}
}
