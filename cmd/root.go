package cmd

import (
	"context"
	"fmt"
	"os"

	"stockctl/internal/app"

	"github.com/spf13/cobra"
)

// version is set by SetVersion from main.
var version = "dev"

// rootOptions are the persistent flags shared by every subcommand.
type rootOptions struct {
	configPath   string
	databasePath string
	debug        bool
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = newRootCmd()

// newRootCmd builds the full command tree. Running it without a subcommand
// opens the terminal browser.
func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "stockctl",
		Short: "Manage a product catalog from the terminal",
		Long: `stockctl keeps a small product catalog (codes, names, stock levels,
prices and locations) in a local SQLite database.

Run without arguments to open the interactive browser, use 'stockctl menu'
for the numbered line-oriented menu, or the one-shot commands for scripting.`,
		// SilenceUsage is set to true to prevent printing usage message on errors
		// that are not about the command line itself.
		SilenceUsage: true,
		Version:      version,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMode(cmd, opts, app.ModeBrowse)
		},
	}
	cmd.SetVersionTemplate(`{{printf "stockctl version %s\n" .Version}}`)

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default: layered ~/.config/stockctl/config.yaml and ./.stockctl/config.yaml)")
	cmd.PersistentFlags().StringVar(&opts.databasePath, "db", "", "SQLite catalog file (overrides database.path)")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Enable debug logging")

	cmd.AddCommand(newBrowseCmd(opts))
	cmd.AddCommand(newMenuCmd(opts))
	cmd.AddCommand(newListCmd(opts))
	cmd.AddCommand(newExportCmd(opts))
	cmd.AddCommand(newTotalCmd(opts))
	cmd.AddCommand(newVersionCmd())
	return cmd
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// withApplication opens the catalog for a one-shot command and closes it
// afterwards.
func withApplication(cmd *cobra.Command, opts *rootOptions, fn func(context.Context, *app.Application) error) error {
	a, err := app.NewApplication(app.NewConfig(app.ModeBrowse, opts.debug, opts.configPath, opts.databasePath))
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	defer a.Close()
	return fn(commandContext(cmd), a)
}

func runMode(cmd *cobra.Command, opts *rootOptions, mode app.Mode) error {
	cfg := app.NewConfig(mode, opts.debug, opts.configPath, opts.databasePath)
	cfg.In = cmd.InOrStdin()
	cfg.Out = cmd.OutOrStdout()

	a, err := app.NewApplication(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	defer a.Close()
	return a.Run(commandContext(cmd))
}
