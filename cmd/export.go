package cmd

import (
	"context"
	"fmt"

	"stockctl/internal/app"

	"github.com/spf13/cobra"
)

func newExportCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "export [file]",
		Short: "Write the whole catalog to a CSV file",
		Long: `Writes every product, in id order, to a CSV file. Without a file name the
export lands in export.directory as inventory_export_YYYYMMDD_HHMMSS.csv.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var filename string
			if len(args) == 1 {
				filename = args[0]
			}
			return withApplication(cmd, opts, func(ctx context.Context, a *app.Application) error {
				path, err := a.Exporter().Export(ctx, a.Store(), filename)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "Inventory exported to: %s\n", path)
				return err
			})
		},
	}
}

func newTotalCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "total",
		Short: "Print the total value of the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApplication(cmd, opts, func(ctx context.Context, a *app.Application) error {
				total, err := a.Store().TotalValue(ctx)
				if err != nil {
					return err
				}
				currency := a.Settings().Browser.Currency
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "Total value: %s %s\n", currency, total.StringFixed(2))
				return err
			})
		},
	}
}
