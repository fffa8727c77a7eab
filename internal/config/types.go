package config

import (
	"time"
)

// StockctlConfig is the top-level configuration structure for stockctl.
type StockctlConfig struct {
	Database DatabaseConfig `yaml:"database"`
	Browser  BrowserConfig  `yaml:"browser"`
	Export   ExportConfig   `yaml:"export"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// DatabaseConfig locates the catalog database.
type DatabaseConfig struct {
	Path string `yaml:"path,omitempty"` // SQLite file, or ":memory:"
}

// BrowserConfig tunes the terminal browser.
type BrowserConfig struct {
	// LowStockWarning highlights rows at or below this quantity. A pointer so
	// an explicit 0 in a config file is distinguishable from "not set".
	LowStockWarning     *int          `yaml:"lowStockWarning,omitempty"`
	DoubleClickInterval time.Duration `yaml:"doubleClickInterval,omitempty"` // e.g. "400ms"
	Currency            string        `yaml:"currency,omitempty"`
}

// ExportConfig controls where CSV exports land when no file is named.
type ExportConfig struct {
	Directory string `yaml:"directory,omitempty"`
}

// LoggingConfig sets the minimum log level ("debug", "info", "warn", "error").
type LoggingConfig struct {
	Level string `yaml:"level,omitempty"`
}

// LowStockThreshold returns the configured warning level, or the default when unset.
func (b BrowserConfig) LowStockThreshold() int {
	if b.LowStockWarning == nil {
		return DefaultLowStockWarning
	}
	return *b.LowStockWarning
}
