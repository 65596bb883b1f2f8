package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/portlogistics-go/internal/infrastructure/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "portlogistics.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadConfig_FileValuesAndDefaults(t *testing.T) {
	path := writeConfig(t, `
engine:
  enable_unload: true
  operations_per_second: 5
logging:
  format: json
`)

	cfg, err := config.LoadConfig(path)

	require.NoError(t, err)
	assert.True(t, cfg.Engine.EnableUnload)
	assert.False(t, cfg.Engine.EnforceCapacity)
	assert.Equal(t, 5.0, cfg.Engine.OperationsPerSecond)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "sqlite", cfg.Database.Type)
	assert.False(t, cfg.Database.Enabled)
}

func TestLoadConfig_EnvironmentOverridesFile(t *testing.T) {
	path := writeConfig(t, `
engine:
  enforce_capacity: false
`)
	t.Setenv("PL_ENGINE_ENFORCE_CAPACITY", "true")
	t.Setenv("PL_LOGGING_LEVEL", "debug")

	cfg, err := config.LoadConfig(path)

	require.NoError(t, err)
	assert.True(t, cfg.Engine.EnforceCapacity)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadConfig_InvalidValuesAreRejected(t *testing.T) {
	path := writeConfig(t, `
logging:
  level: chatty
`)

	_, err := config.LoadConfig(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "level")
}

func TestValidateConfig_PersistNeedsDatabase(t *testing.T) {
	cfg := &config.Config{}
	config.SetDefaults(cfg)
	cfg.Logging.Persist = true

	err := config.ValidateConfig(cfg)

	assert.ErrorContains(t, err, "database.enabled")
}

func TestValidateConfig_FileOutputNeedsPath(t *testing.T) {
	cfg := &config.Config{}
	config.SetDefaults(cfg)
	cfg.Logging.Output = "file"

	err := config.ValidateConfig(cfg)

	assert.ErrorContains(t, err, "file_path")
}

func TestValidateConfig_NegativePacing(t *testing.T) {
	cfg := &config.Config{}
	config.SetDefaults(cfg)
	cfg.Engine.OperationsPerSecond = -1

	assert.Error(t, config.ValidateConfig(cfg))
}

func TestLoadConfigOrDefault_FallsBackOnError(t *testing.T) {
	cfg := config.LoadConfigOrDefault(filepath.Join(t.TempDir(), "missing.yaml"))

	require.NotNil(t, cfg)
	assert.Equal(t, "info", cfg.Logging.Level)
}
