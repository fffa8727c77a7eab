package app

import (
	"context"
	"fmt"
	"os"

	"stockctl/internal/catalog"
	"stockctl/internal/config"
	"stockctl/internal/export"
	"stockctl/pkg/logging"
)

const bootstrapSubsystem = "Bootstrap"

// Application owns the catalog store and runs one of the front-ends over it.
type Application struct {
	config *Config
	store  *catalog.Store
}

// NewApplication loads configuration, sets up logging and opens the catalog.
func NewApplication(cfg *Config) (*Application, error) {
	logging.InitForCLI(cliLogLevel(cfg, ""), os.Stderr)

	settings, err := config.LoadConfig(cfg.ConfigPath)
	if err != nil {
		logging.Error(bootstrapSubsystem, err, "Failed to load configuration")
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if cfg.DatabasePath != "" {
		settings.Database.Path = cfg.DatabasePath
	}
	cfg.Settings = &settings

	logging.InitForCLI(cliLogLevel(cfg, settings.Logging.Level), os.Stderr)

	store, err := catalog.Open(settings.Database.Path)
	if err != nil {
		logging.Error(bootstrapSubsystem, err, "Failed to open catalog at %s", settings.Database.Path)
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	logging.Debug(bootstrapSubsystem, "Catalog ready at %s", store.Path())

	return &Application{config: cfg, store: store}, nil
}

func cliLogLevel(cfg *Config, configured string) logging.LogLevel {
	if cfg.Debug {
		return logging.LevelDebug
	}
	if configured == "" {
		return logging.LevelInfo
	}
	return logging.ParseLevel(configured)
}

// Store returns the open catalog.
func (a *Application) Store() *catalog.Store {
	return a.store
}

// Settings returns the merged configuration.
func (a *Application) Settings() config.StockctlConfig {
	return *a.config.Settings
}

// Exporter returns a CSV exporter writing to the configured directory.
func (a *Application) Exporter() export.Exporter {
	return export.Exporter{Dir: a.config.Settings.Export.Directory}
}

// Close releases the catalog.
func (a *Application) Close() error {
	return a.store.Close()
}

// Run executes the application in the configured mode
func (a *Application) Run(ctx context.Context) error {
	switch a.config.Mode {
	case ModeMenu:
		return runMenuMode(ctx, a)
	default:
		return runTUIMode(ctx, a)
	}
}
