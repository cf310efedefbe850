package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdirTemp switches the working directory to a fresh temp dir so
// LoadConfig cannot pick up a real covcheck.yaml.
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	oldWd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(oldWd) })
	return dir
}

func TestLoadConfig_DefaultsWithoutFile(t *testing.T) {
	chdirTemp(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "coverage/coverage-summary.json", cfg.Report.SummaryPath)
	assert.Equal(t, "coverage/coverage-final.json", cfg.Report.DetailPath)
	assert.Equal(t, 80, cfg.Thresholds.Lines)
	assert.Equal(t, 80, cfg.Thresholds.Statements)
	assert.Equal(t, 80, cfg.Thresholds.Functions)
	assert.Equal(t, 80, cfg.Thresholds.Branches)
	assert.Equal(t, ".cache", cfg.Cache.Dir)
	assert.Equal(t, []string{"package-lock.json", "vitest.config.js"}, cfg.Cache.InputFiles)
	assert.False(t, cfg.Enforce)
	assert.Equal(t, 20, cfg.BarWidth)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfig_FileOverridesDefaults(t *testing.T) {
	dir := chdirTemp(t)

	configContent := `
report:
  summary_path: "out/summary.json"
thresholds:
  branches: 70
cache:
  dir: ".ci-cache"
  input_files:
    - "package-lock.json"
    - "vitest.config.ts"
enforce: true
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "covcheck.yaml"), []byte(configContent), 0644))

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "out/summary.json", cfg.Report.SummaryPath)
	// Unset fields keep their defaults.
	assert.Equal(t, "coverage/coverage-final.json", cfg.Report.DetailPath)
	assert.Equal(t, 70, cfg.Thresholds.Branches)
	assert.Equal(t, 80, cfg.Thresholds.Lines)
	assert.Equal(t, ".ci-cache", cfg.Cache.Dir)
	assert.Equal(t, []string{"package-lock.json", "vitest.config.ts"}, cfg.Cache.InputFiles)
	assert.True(t, cfg.Enforce)
}

func TestLoadConfig_ConfigsSubdirectory(t *testing.T) {
	dir := chdirTemp(t)

	require.NoError(t, os.Mkdir(filepath.Join(dir, "configs"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "configs", "covcheck.yaml"), []byte("bar_width: 30\n"), 0644))

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.BarWidth)
}

func TestLoadConfig_MalformedFile(t *testing.T) {
	dir := chdirTemp(t)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "covcheck.yaml"), []byte(":\nnot yaml ["), 0644))

	_, err := LoadConfig()
	assert.Error(t, err)
}
