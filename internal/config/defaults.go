package config

import (
	"fmt"
	"time"
)

const (
	DefaultDatabasePath        = "inventory.db"
	DefaultLowStockWarning     = 5
	DefaultDoubleClickInterval = 400 * time.Millisecond
	DefaultCurrency            = "€"
	DefaultExportDirectory     = "."
	DefaultLogLevel            = "info"
)

// GetDefaultConfig returns the built-in configuration every other layer is
// merged onto.
func GetDefaultConfig() StockctlConfig {
	lowStock := DefaultLowStockWarning
	return StockctlConfig{
		Database: DatabaseConfig{
			Path: DefaultDatabasePath,
		},
		Browser: BrowserConfig{
			LowStockWarning:     &lowStock,
			DoubleClickInterval: DefaultDoubleClickInterval,
			Currency:            DefaultCurrency,
		},
		Export: ExportConfig{
			Directory: DefaultExportDirectory,
		},
		Logging: LoggingConfig{
			Level: DefaultLogLevel,
		},
	}
}

// Validate checks values that cannot be repaired by falling back to defaults.
func (c StockctlConfig) Validate() error {
	if c.Database.Path == "" {
		return fmt.Errorf("database.path must not be empty")
	}
	if c.Browser.LowStockThreshold() < 0 {
		return fmt.Errorf("browser.lowStockWarning must be >= 0, got %d", c.Browser.LowStockThreshold())
	}
	if c.Browser.DoubleClickInterval <= 0 {
		return fmt.Errorf("browser.doubleClickInterval must be positive, got %s", c.Browser.DoubleClickInterval)
	}
	return nil
}
