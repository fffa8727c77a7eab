package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd

const (
	userConfigDir    = ".config/stockctl"
	projectConfigDir = ".stockctl"
	configFileName   = "config.yaml"
)

// LoadConfig loads the stockctl configuration by layering default, user, and
// project settings. When explicitPath is set, that file replaces the user and
// project layers and must exist.
func LoadConfig(explicitPath string) (StockctlConfig, error) {
	config := GetDefaultConfig()

	if explicitPath != "" {
		fileConfig, err := loadConfigFromFile(explicitPath)
		if err != nil {
			return StockctlConfig{}, fmt.Errorf("error loading config from %s: %w", explicitPath, err)
		}
		config = mergeConfigs(config, fileConfig)
		return config, config.Validate()
	}

	userConfigPath, err := getUserConfigPath()
	if err != nil {
		// User config is optional.
		fmt.Fprintf(os.Stderr, "Warning: Could not determine user config path: %v\n", err)
	} else {
		if _, err := os.Stat(userConfigPath); !os.IsNotExist(err) {
			userConfig, err := loadConfigFromFile(userConfigPath)
			if err != nil {
				return StockctlConfig{}, fmt.Errorf("error loading user config from %s: %w", userConfigPath, err)
			}
			config = mergeConfigs(config, userConfig)
		}
	}

	projectConfigPath, err := getProjectConfigPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not determine project config path: %v\n", err)
	} else {
		if _, err := os.Stat(projectConfigPath); !os.IsNotExist(err) {
			projectConfig, err := loadConfigFromFile(projectConfigPath)
			if err != nil {
				return StockctlConfig{}, fmt.Errorf("error loading project config from %s: %w", projectConfigPath, err)
			}
			config = mergeConfigs(config, projectConfig)
		}
	}

	return config, config.Validate()
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

// loadConfigFromFile loads a StockctlConfig from a YAML file.
func loadConfigFromFile(filePath string) (StockctlConfig, error) {
	var config StockctlConfig
	data, err := os.ReadFile(filePath)
	if err != nil {
		return StockctlConfig{}, err
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return StockctlConfig{}, err
	}
	return config, nil
}

// mergeConfigs merges 'overlay' config into 'base' config. Only values set in
// the overlay replace base values.
func mergeConfigs(base, overlay StockctlConfig) StockctlConfig {
	merged := base

	if overlay.Database.Path != "" {
		merged.Database.Path = overlay.Database.Path
	}

	if overlay.Browser.LowStockWarning != nil {
		v := *overlay.Browser.LowStockWarning
		merged.Browser.LowStockWarning = &v
	}
	if overlay.Browser.DoubleClickInterval != 0 {
		merged.Browser.DoubleClickInterval = overlay.Browser.DoubleClickInterval
	}
	if overlay.Browser.Currency != "" {
		merged.Browser.Currency = overlay.Browser.Currency
	}

	if overlay.Export.Directory != "" {
		merged.Export.Directory = overlay.Export.Directory
	}

	if overlay.Logging.Level != "" {
		merged.Logging.Level = overlay.Logging.Level
	}

	return merged
}

// GetUserConfigDir returns the user configuration directory path
func GetUserConfigDir() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir), nil
}
