package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Gunvolt24/storefront/internal/domain"
)

var errCatalogUnavailable = errors.New("catalog is not available")

func newShowCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print cart lines and total",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withSession(cmd, false, func(s *Session) error {
				return opts.printer(cmd).Cart(s.Cart.Snapshot())
			})
		},
	}
}

func newAddCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "add <product-id>",
		Short: "Add a catalog product to the cart (or increase its quantity)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseProductID(args[0])
			if err != nil {
				return err
			}
			return opts.withSession(cmd, true, func(s *Session) error {
				if !s.Catalog.Loaded() {
					return errCatalogUnavailable
				}
				p, ok := s.Catalog.Product(id)
				if !ok {
					return fmt.Errorf("product %d not found in catalog", id)
				}
				return opts.mutate(cmd, func(ctx context.Context) (domain.Cart, error) {
					return s.Cart.AddOrIncrement(ctx, p)
				})
			})
		},
	}
}

func newChangeCommand(opts *RootOptions, use, short string, delta int) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <product-id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseProductID(args[0])
			if err != nil {
				return err
			}
			return opts.withSession(cmd, false, func(s *Session) error {
				return opts.mutate(cmd, func(ctx context.Context) (domain.Cart, error) {
					return s.Cart.ChangeQuantity(ctx, id, delta)
				})
			})
		},
	}
}

func newRemoveCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <product-id>",
		Short: "Remove a line from the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseProductID(args[0])
			if err != nil {
				return err
			}
			return opts.withSession(cmd, false, func(s *Session) error {
				return opts.mutate(cmd, func(ctx context.Context) (domain.Cart, error) {
					return s.Cart.Remove(ctx, id)
				})
			})
		},
	}
}

// mutate — печатает корзину после изменения; ошибка записи возвращается после вывода.
func (o *RootOptions) mutate(cmd *cobra.Command, fn func(context.Context) (domain.Cart, error)) error {
	cart, err := fn(cmd.Context())
	if pErr := o.printer(cmd).Cart(cart); pErr != nil {
		return pErr
	}
	return err
}
