package cmd

import (
	"stockctl/internal/app"

	"github.com/spf13/cobra"
)

func newBrowseCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Open the interactive catalog browser",
		Long: `Opens a full-screen table of the catalog.

Keys: ↑/↓ or j/k move, enter shows details, / searches, f filters, o and O
sort, a/e/c/d add, edit, duplicate and delete, x exports to CSV, h shows all
keys and q quits. Click a row to select it, double-click to show details.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMode(cmd, opts, app.ModeBrowse)
		},
	}
}

func newMenuCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Run the numbered line-oriented menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMode(cmd, opts, app.ModeMenu)
		},
	}
}
