package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestConfig(t *testing.T) func() {
	// save original values
	origConfigDir := configDir
	origConfigFile := configFile

	// create temp directory
	tmpDir, err := os.MkdirTemp("", "ssui_config_test_*")
	require.NoError(t, err)

	configDir = tmpDir
	configFile = filepath.Join(tmpDir, "config.yaml")

	return func() {
		os.RemoveAll(tmpDir)
		configDir = origConfigDir
		configFile = origConfigFile
	}
}

func TestGetDefaultConfig(t *testing.T) {
	cfg := GetDefaultConfig()

	assert.NotNil(t, cfg)
	assert.NotEmpty(t, cfg.DBPath)
	assert.Equal(t, "ssui-theme", cfg.StorageKey)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 3*time.Second, cfg.Notify.Info())
	assert.Equal(t, 3*time.Second, cfg.Notify.Success())
	assert.Equal(t, 5*time.Second, cfg.Notify.Error())
}

func TestLoadConfig_Default(t *testing.T) {
	cleanup := setupTestConfig(t)
	defer cleanup()

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.NotNil(t, cfg)

	// should return default values when no config file exists
	assert.Equal(t, filepath.Join(configDir, "theme.db"), cfg.DBPath)
	assert.Equal(t, "ssui-theme", cfg.StorageKey)
	assert.Equal(t, 5000, cfg.Notify.ErrorMS)
}

func TestSaveAndLoadConfig(t *testing.T) {
	cleanup := setupTestConfig(t)
	defer cleanup()

	cfg := &Config{
		DBPath:     filepath.Join(configDir, "test.db"),
		StorageKey: "custom-key",
		LogLevel:   "debug",
		LogFile:    filepath.Join(configDir, "test.log"),
		Notify: NotifyConfig{
			InfoMS:    1000,
			SuccessMS: 2000,
			ErrorMS:   4000,
		},
	}

	err := SaveConfig(cfg)
	require.NoError(t, err)

	loaded, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, cfg, loaded)
}

func TestSaveConfig_CreatesDirectory(t *testing.T) {
	cleanup := setupTestConfig(t)
	defer cleanup()

	// remove the config directory
	os.RemoveAll(configDir)

	cfg := GetDefaultConfig()
	err := SaveConfig(cfg)
	require.NoError(t, err)

	// verify directory was created
	info, err := os.Stat(configDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestLoadConfig_ZeroDurationsGetDefaults(t *testing.T) {
	cleanup := setupTestConfig(t)
	defer cleanup()

	require.NoError(t, os.WriteFile(configFile, []byte("notify:\n  info_ms: 0\n  error_ms: -5\n"), 0644))

	loaded, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 3000, loaded.Notify.InfoMS)
	assert.Equal(t, 5000, loaded.Notify.ErrorMS)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	cleanup := setupTestConfig(t)
	defer cleanup()

	t.Setenv("SSUI_STORAGE_KEY", "from-env")
	t.Setenv("SSUI_NOTIFY_SUCCESS_MS", "1500")

	loaded, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "from-env", loaded.StorageKey)
	assert.Equal(t, 1500*time.Millisecond, loaded.Notify.Success())
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	cleanup := setupTestConfig(t)
	defer cleanup()

	require.NoError(t, os.WriteFile(configFile, []byte("db_path: [unterminated"), 0644))

	_, err := LoadConfig()
	assert.Error(t, err)
}
