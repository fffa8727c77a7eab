package cmd

import (
	"context"
	"fmt"
	"strings"

	"stockctl/internal/app"
	"stockctl/internal/catalog"
	"stockctl/internal/menu"
	"stockctl/internal/query"

	"github.com/spf13/cobra"
)

type listOptions struct {
	search   string
	category string
	location string
	lowStock int
	sort     string
	desc     bool
}

func newListCmd(opts *rootOptions) *cobra.Command {
	lo := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print products as a table",
		Long: `Prints the catalog, or the products matching one filter, as a plain table.

Examples:
  stockctl list --search wid
  stockctl list --category Tools --sort price --desc
  stockctl list --low-stock 5`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := lo.descriptor(cmd)
			if err != nil {
				return err
			}
			return withApplication(cmd, opts, func(ctx context.Context, a *app.Application) error {
				rows, err := query.Evaluate(ctx, a.Store(), d)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), menu.FormatTable(rows))
				return err
			})
		},
	}

	cmd.Flags().StringVar(&lo.search, "search", "", "Only products whose code or name contains this text")
	cmd.Flags().StringVar(&lo.category, "category", "", "Only products in this category")
	cmd.Flags().StringVar(&lo.location, "location", "", "Only products at this location")
	cmd.Flags().IntVar(&lo.lowStock, "low-stock", 0, "Only products with quantity at or below this value")
	cmd.Flags().StringVar(&lo.sort, "sort", "", "Sort field: "+strings.Join(catalog.SortFields(), ", "))
	cmd.Flags().BoolVar(&lo.desc, "desc", false, "Sort in descending order")
	cmd.MarkFlagsMutuallyExclusive("search", "category", "location", "low-stock")
	return cmd
}

func (lo *listOptions) descriptor(cmd *cobra.Command) (query.Descriptor, error) {
	field, err := catalog.ParseSortField(lo.sort)
	if err != nil {
		return query.Descriptor{}, err
	}
	d := query.Descriptor{Kind: query.All, Sort: catalog.Sort{Field: field, Descending: lo.desc}}

	flags := cmd.Flags()
	switch {
	case flags.Changed("search"):
		d.Kind, d.Term = query.Search, lo.search
	case flags.Changed("category"):
		d.Kind, d.Value = query.ByCategory, lo.category
	case flags.Changed("location"):
		d.Kind, d.Value = query.ByLocation, lo.location
	case flags.Changed("low-stock"):
		d.Kind, d.Threshold = query.LowStock, lo.lowStock
	}
	return d, nil
}
