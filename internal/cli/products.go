package cli

import (
	"github.com/spf13/cobra"

	"github.com/Gunvolt24/storefront/internal/domain"
)

type productsOptions struct {
	search   string
	category string
	sort     string
}

func newProductsCommand(opts *RootOptions) *cobra.Command {
	po := &productsOptions{}

	cmd := &cobra.Command{
		Use:   "products",
		Short: "List catalog products",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withSession(cmd, true, func(s *Session) error {
				q := domain.ProductQuery{
					Search:   po.search,
					Category: po.category,
					Sort:     domain.ParseSortOrder(po.sort),
				}
				return opts.printer(cmd).Products(s.Catalog.Query(cmd.Context(), q))
			})
		},
	}

	cmd.Flags().StringVar(&po.search, "search", "", "case-insensitive substring of the title")
	cmd.Flags().StringVar(&po.category, "category", "", "exact category")
	cmd.Flags().StringVar(&po.sort, "sort", "", "sort by price (asc|desc)")

	return cmd
}
