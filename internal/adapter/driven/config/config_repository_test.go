package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfigFileYAML(t *testing.T) {
	path := writeTempConfig(t, "config.yaml", `
profile: audit
regions:
  - us-east-1
  - sa-east-1
stream: central-logs
dry_run: true
email: ops@example.com
`)

	repo := NewConfigRepository()
	cfg, err := repo.LoadConfigFile(path)
	require.NoError(t, err)

	assert.Equal(t, "audit", cfg.Profile)
	assert.Equal(t, []string{"us-east-1", "sa-east-1"}, cfg.Regions)
	assert.Equal(t, "central-logs", cfg.Stream)
	assert.True(t, cfg.DryRun)
	assert.Equal(t, "ops@example.com", cfg.Email)
}

func TestLoadConfigFileTOML(t *testing.T) {
	path := writeTempConfig(t, "config.toml", `
profile = "audit"
stream = "central-logs"
filter_name = "MyFilter"
all_regions = true
`)

	repo := NewConfigRepository()
	cfg, err := repo.LoadConfigFile(path)
	require.NoError(t, err)

	assert.Equal(t, "audit", cfg.Profile)
	assert.Equal(t, "central-logs", cfg.Stream)
	assert.Equal(t, "MyFilter", cfg.FilterName)
	assert.True(t, cfg.AllRegions)
}

func TestLoadConfigFileJSON(t *testing.T) {
	path := writeTempConfig(t, "config.json", `{
  "profile": "audit",
  "stream": "central-logs",
  "report_type": ["json", "pdf"]
}`)

	repo := NewConfigRepository()
	cfg, err := repo.LoadConfigFile(path)
	require.NoError(t, err)

	assert.Equal(t, "audit", cfg.Profile)
	assert.Equal(t, []string{"json", "pdf"}, cfg.ReportType)
}

func TestLoadConfigFileUnsupportedExtension(t *testing.T) {
	path := writeTempConfig(t, "config.ini", "profile=audit")

	repo := NewConfigRepository()
	_, err := repo.LoadConfigFile(path)
	assert.ErrorContains(t, err, "unsupported config file format")
}

func TestLoadConfigFileMissing(t *testing.T) {
	repo := NewConfigRepository()
	_, err := repo.LoadConfigFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "error accessing config file")
}
