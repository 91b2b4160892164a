package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/Gunvolt24/storefront/internal/domain"
	"github.com/Gunvolt24/storefront/internal/view"
)

// Printer — вывод корзины и товаров в формате --output.
type Printer struct {
	Format string
	W      io.Writer
}

type lineOutput struct {
	ID       int64   `json:"id" yaml:"id"`
	Title    string  `json:"title" yaml:"title"`
	Price    float64 `json:"price" yaml:"price"`
	Quantity int     `json:"quantity" yaml:"quantity"`
	Subtotal float64 `json:"subtotal" yaml:"subtotal"`
}

type cartOutput struct {
	Lines []lineOutput `json:"lines" yaml:"lines"`
	Count int          `json:"count" yaml:"count"`
	Total float64      `json:"total" yaml:"total"`
}

type productOutput struct {
	ID       int64   `json:"id" yaml:"id"`
	Title    string  `json:"title" yaml:"title"`
	Category string  `json:"category" yaml:"category"`
	Price    float64 `json:"price" yaml:"price"`
}

// Cart — корзина: строки, количество и итог.
func (p *Printer) Cart(cart domain.Cart) error {
	out := cartOutput{Lines: []lineOutput{}, Count: cart.Count(), Total: cart.Total()}
	for _, l := range cart.Lines() {
		out.Lines = append(out.Lines, lineOutput{
			ID:       l.ID,
			Title:    l.Title,
			Price:    l.Price,
			Quantity: l.Quantity,
			Subtotal: l.Subtotal(),
		})
	}

	if p.Format != OutputTable {
		return p.encode(out)
	}

	if len(out.Lines) == 0 {
		_, err := fmt.Fprintln(p.W, "cart is empty")
		return err
	}
	tw := tabwriter.NewWriter(p.W, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tPRICE\tQTY\tTOTAL")
	for _, l := range out.Lines {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%s\n", l.ID, l.Title, view.FormatMoney(l.Price), l.Quantity, view.FormatMoney(l.Subtotal))
	}
	fmt.Fprintf(tw, "\t\t\t%d\t%s\n", out.Count, view.FormatMoney(out.Total))
	return tw.Flush()
}

// Products — список товаров каталога.
func (p *Printer) Products(products []domain.Product) error {
	out := make([]productOutput, 0, len(products))
	for _, pr := range products {
		out = append(out, productOutput{ID: pr.ID, Title: pr.Title, Category: pr.Category, Price: pr.Price})
	}

	if p.Format != OutputTable {
		return p.encode(out)
	}

	if len(out) == 0 {
		_, err := fmt.Fprintln(p.W, "no products")
		return err
	}
	tw := tabwriter.NewWriter(p.W, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tCATEGORY\tPRICE")
	for _, pr := range out {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", pr.ID, pr.Title, domain.CategoryLabel(pr.Category), view.FormatPrice(pr.Price))
	}
	return tw.Flush()
}

func (p *Printer) encode(v any) error {
	switch p.Format {
	case OutputJSON:
		enc := json.NewEncoder(p.W)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case OutputYAML:
		enc := yaml.NewEncoder(p.W)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported output %q", p.Format)
	}
}
