package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aklein/lobbyscribe/internal/config"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadFrom_MissingFileFallsBackToDefaults(t *testing.T) {
	cfg, err := config.LoadFrom(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.App.LogLevel)
	assert.Equal(t, "auto", cfg.Display.Color)
	assert.True(t, cfg.Display.Attribution)
	assert.Empty(t, cfg.Display.DefaultRegion)
}

func TestLoadFrom_ParsesFile(t *testing.T) {
	path := writeConfig(t, `
[app]
log_level = "debug"

[display]
color = "never"
attribution = false
default_region = "europe"
`)

	cfg, err := config.LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.Equal(t, "never", cfg.Display.Color)
	assert.False(t, cfg.Display.Attribution)
	assert.Equal(t, "europe", cfg.Display.DefaultRegion)
}

func TestLoadFrom_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
[app]
log_level = "info"
`)

	cfg, err := config.LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, "auto", cfg.Display.Color)
	assert.True(t, cfg.Display.Attribution)
}

func TestLoadFrom_RejectsInvalidEnum(t *testing.T) {
	path := writeConfig(t, `
[app]
log_level = "loud"
`)

	_, err := config.LoadFrom(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}

func TestLoadFrom_RejectsMalformedTOML(t *testing.T) {
	path := writeConfig(t, `[app`)

	_, err := config.LoadFrom(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config file")
}
