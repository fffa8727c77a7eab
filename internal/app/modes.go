package app

import (
	"context"
	"os"

	"stockctl/internal/menu"
	"stockctl/internal/tui/controller"
	"stockctl/internal/tui/model"
	"stockctl/pkg/logging"
)

// runMenuMode runs the numbered menu on the configured streams.
func runMenuMode(ctx context.Context, a *Application) error {
	in, out := a.config.In, a.config.Out
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}

	logging.Debug("CLI", "Starting menu mode on %s", a.store.Path())
	settings := a.Settings()
	return menu.New(a.store, a.Exporter(), settings.Browser.Currency, in, out).Run(ctx)
}

// runTUIMode executes the interactive terminal UI mode
func runTUIMode(ctx context.Context, a *Application) error {
	settings := a.Settings()
	logLevel := cliLogLevel(a.config, settings.Logging.Level)

	// The alt screen owns stdout, so log entries go to the activity log.
	logChan := logging.InitForTUI(logLevel)
	defer logging.InitForCLI(logLevel, os.Stderr)
	defer logging.CloseTUIChannel()

	p, err := controller.NewProgram(model.TUIConfig{
		Context:             ctx,
		Store:               a.store,
		Exporter:            a.Exporter(),
		Currency:            settings.Browser.Currency,
		LowStockWarning:     settings.Browser.LowStockThreshold(),
		DoubleClickInterval: settings.Browser.DoubleClickInterval,
		DebugMode:           a.config.Debug,
		LogChannel:          logChan,
	})
	if err != nil {
		logging.Error("TUI-Lifecycle", err, "Error creating TUI program")
		return err
	}

	logging.Info("TUI-Lifecycle", "Browsing catalog %s", a.store.Path())
	if _, err := p.Run(); err != nil {
		logging.Error("TUI-Lifecycle", err, "Error running TUI program")
		return err
	}
	return nil
}
