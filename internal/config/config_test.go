package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "palisade.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)

	assert.Equal(t, "ufw", cfg.Tool)
	assert.Equal(t, "pkexec", cfg.Helper)
	assert.Equal(t, "info", cfg.LogLevel)
	require.NotNil(t, cfg.History)
	assert.True(t, cfg.History.Enabled)
	assert.Equal(t, 90, cfg.History.RetentionDays)
}

func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, `
tool      = "/usr/sbin/ufw"
helper    = "doas"
log_level = "debug"

history {
  enabled        = false
  retention_days = 7
}
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/usr/sbin/ufw", cfg.Tool)
	assert.Equal(t, "doas", cfg.Helper)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.False(t, cfg.History.Enabled)
	assert.Equal(t, 7, cfg.History.RetentionDays)
	assert.NotEmpty(t, cfg.History.Path, "unset path keeps the default")
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `log_level = "warn"`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "ufw", cfg.Tool)
	assert.True(t, cfg.History.Enabled)
}

func TestLoadRejectsBadLogLevel(t *testing.T) {
	path := writeConfig(t, `log_level = "loud"`)
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log_level")
}

func TestLoadRejectsMalformedHCL(t *testing.T) {
	path := writeConfig(t, `tool = `)
	_, err := Load(path)
	require.Error(t, err)
}
