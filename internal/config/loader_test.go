package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper function to create a temporary config file
func createTempConfigFile(t *testing.T, dir string, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0755))
	tempFilePath := filepath.Join(dir, configFileName)
	err := os.WriteFile(tempFilePath, []byte(content), 0644)
	require.NoError(t, err)
	return tempFilePath
}

// mockConfigPaths points both config layers into tempDir and restores them
// when the test ends.
func mockConfigPaths(t *testing.T, tempDir string) {
	t.Helper()
	originalGetUserConfigPath := getUserConfigPath
	originalGetProjectConfigPath := getProjectConfigPath
	t.Cleanup(func() {
		getUserConfigPath = originalGetUserConfigPath
		getProjectConfigPath = originalGetProjectConfigPath
	})

	getUserConfigPath = func() (string, error) {
		return filepath.Join(tempDir, "home", userConfigDir, configFileName), nil
	}
	getProjectConfigPath = func() (string, error) {
		return filepath.Join(tempDir, "project", projectConfigDir, configFileName), nil
	}
}

func TestLoadConfig_DefaultOnly(t *testing.T) {
	mockConfigPaths(t, t.TempDir())

	loadedConfig, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, GetDefaultConfig(), loadedConfig)
	assert.Equal(t, DefaultLowStockWarning, loadedConfig.Browser.LowStockThreshold())
}

func TestLoadConfig_UserOverride(t *testing.T) {
	tempDir := t.TempDir()
	mockConfigPaths(t, tempDir)

	createTempConfigFile(t, filepath.Join(tempDir, "home", userConfigDir), `
database:
  path: /data/shop.db
browser:
  lowStockWarning: 0
  doubleClickInterval: 250ms
`)

	loadedConfig, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "/data/shop.db", loadedConfig.Database.Path)
	assert.Equal(t, 0, loadedConfig.Browser.LowStockThreshold(), "explicit zero must override the default")
	assert.Equal(t, 250*time.Millisecond, loadedConfig.Browser.DoubleClickInterval)
	assert.Equal(t, DefaultCurrency, loadedConfig.Browser.Currency)
}

func TestLoadConfig_ProjectOverridesUser(t *testing.T) {
	tempDir := t.TempDir()
	mockConfigPaths(t, tempDir)

	createTempConfigFile(t, filepath.Join(tempDir, "home", userConfigDir), `
database:
  path: user.db
export:
  directory: /tmp/user-exports
`)
	createTempConfigFile(t, filepath.Join(tempDir, "project", projectConfigDir), `
database:
  path: project.db
browser:
  currency: USD
`)

	loadedConfig, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "project.db", loadedConfig.Database.Path)
	assert.Equal(t, "/tmp/user-exports", loadedConfig.Export.Directory)
	assert.Equal(t, "USD", loadedConfig.Browser.Currency)
}

func TestLoadConfig_ExplicitFile(t *testing.T) {
	tempDir := t.TempDir()
	mockConfigPaths(t, tempDir)

	createTempConfigFile(t, filepath.Join(tempDir, "project", projectConfigDir), `
database:
  path: ignored.db
`)
	explicit := createTempConfigFile(t, filepath.Join(tempDir, "explicit"), `
logging:
  level: debug
`)

	loadedConfig, err := LoadConfig(explicit)
	require.NoError(t, err)
	assert.Equal(t, DefaultDatabasePath, loadedConfig.Database.Path)
	assert.Equal(t, "debug", loadedConfig.Logging.Level)

	_, err = LoadConfig(filepath.Join(tempDir, "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadConfig_MalformedYAML(t *testing.T) {
	tempDir := t.TempDir()
	mockConfigPaths(t, tempDir)

	createTempConfigFile(t, filepath.Join(tempDir, "project", projectConfigDir), "database: [unclosed")

	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	tempDir := t.TempDir()
	mockConfigPaths(t, tempDir)

	createTempConfigFile(t, filepath.Join(tempDir, "project", projectConfigDir), `
browser:
  lowStockWarning: -1
`)

	_, err := LoadConfig("")
	assert.ErrorContains(t, err, "lowStockWarning")
}

func TestGetUserConfigDir(t *testing.T) {
	originalOsUserHomeDir := osUserHomeDir
	defer func() { osUserHomeDir = originalOsUserHomeDir }()

	osUserHomeDir = func() (string, error) { return "/home/tester", nil }

	dir, err := GetUserConfigDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/home/tester", userConfigDir), dir)
}

func TestDefaultProjectPathUsesWorkingDirectory(t *testing.T) {
	originalOsGetwd := osGetwd
	defer func() { osGetwd = originalOsGetwd }()

	osGetwd = func() (string, error) { return "/work/shop", nil }

	path, err := getProjectConfigPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/work/shop", projectConfigDir, configFileName), path)
}
