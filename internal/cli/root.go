// Пакет cli — команды cartctl: корзина и каталог из терминала через тот же CartStore.
package cli

import (
	"context"
	"fmt"
	"slices"
	"strconv"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/Gunvolt24/storefront/internal/ports"
	"github.com/Gunvolt24/storefront/pkg/ctxmeta"
)

// Форматы вывода.
const (
	OutputTable = "table"
	OutputJSON  = "json"
	OutputYAML  = "yaml"
)

// ValidOutputs — допустимые значения --output.
var ValidOutputs = []string{OutputTable, OutputJSON, OutputYAML}

// Session — корзина и каталог, открытые на время одной команды.
type Session struct {
	Cart    ports.CartService
	Catalog ports.CatalogReader
	Close   func()
}

// Opener — открывает сессию; needCatalog=true — каталог загружен до возврата.
type Opener func(ctx context.Context, needCatalog bool) (*Session, error)

// RootOptions — глобальные флаги.
type RootOptions struct {
	Output string
	open   Opener
}

// NewRootCommand — корневая команда cartctl.
func NewRootCommand(open Opener) *cobra.Command {
	opts := &RootOptions{open: open}

	cmd := &cobra.Command{
		Use:           "cartctl",
		Short:         "Storefront cart from the terminal",
		Long:          "Inspect and change the storefront cart. Uses the same storage as the server.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if !slices.Contains(ValidOutputs, opts.Output) {
				return fmt.Errorf("invalid output %q: must be one of %v", opts.Output, ValidOutputs)
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			ctx = ctxmeta.WithOrigin(ctx, ctxmeta.OriginCLI)
			ctx = ctxmeta.WithRequestID(ctx, uuid.NewString())
			cmd.SetContext(ctx)
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.Output, "output", "o", OutputTable, "output format (table|json|yaml)")

	cmd.AddCommand(newShowCommand(opts))
	cmd.AddCommand(newAddCommand(opts))
	cmd.AddCommand(newChangeCommand(opts, "inc", "Increase quantity of a cart line by one", 1))
	cmd.AddCommand(newChangeCommand(opts, "dec", "Decrease quantity of a cart line by one", -1))
	cmd.AddCommand(newRemoveCommand(opts))
	cmd.AddCommand(newProductsCommand(opts))

	return cmd
}

// withSession — открывает сессию, выполняет fn и закрывает её.
func (o *RootOptions) withSession(cmd *cobra.Command, needCatalog bool, fn func(*Session) error) error {
	s, err := o.open(cmd.Context(), needCatalog)
	if err != nil {
		return err
	}
	if s.Close != nil {
		defer s.Close()
	}
	return fn(s)
}

func (o *RootOptions) printer(cmd *cobra.Command) *Printer {
	return &Printer{Format: o.Output, W: cmd.OutOrStdout()}
}

func parseProductID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid product id %q", raw)
	}
	return id, nil
}
