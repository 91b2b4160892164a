package view_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Gunvolt24/storefront/internal/domain"
	"github.com/Gunvolt24/storefront/internal/view"
)

var (
	phone = domain.Product{ID: 1, Title: "iPhone 9", Price: 549, Category: "smartphones", Thumbnail: "/t/1.jpg",
		Description: "An apple mobile", DiscountPercentage: 12.96, Rating: 4.69}
	oil = domain.Product{ID: 3, Title: "Tree Oil 30ml", Price: 12.99, Category: "home-decoration"}
)

func TestFormatMoney(t *testing.T) {
	tests := map[float64]string{0: "0.00", 12.5: "12.50", 549: "549.00", 0.1 + 0.2: "0.30", 1749.999: "1750.00"}
	for in, want := range tests {
		if got := view.FormatMoney(in); got != want {
			t.Fatalf("FormatMoney(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatPrice(t *testing.T) {
	if got := view.FormatPrice(549); got != "549 USD" {
		t.Fatalf("FormatPrice(549) = %q", got)
	}
	if got := view.FormatPrice(12.99); got != "12.99 USD" {
		t.Fatalf("FormatPrice(12.99) = %q", got)
	}
}

func TestBuildCartPanel_TotalsAndRows(t *testing.T) {
	cart := domain.NewCart(
		domain.CartLine{Product: phone, Quantity: 2},
		domain.CartLine{Product: oil, Quantity: 1},
	)

	got := view.BuildCartPanel(cart, true)

	want := view.CartPanel{
		Rows: []view.CartRow{
			{ID: 1, Title: "iPhone 9", Thumbnail: "/t/1.jpg", Price: "549.00", Quantity: 2, Subtotal: "1098.00"},
			{ID: 3, Title: "Tree Oil 30ml", Price: "12.99", Quantity: 1, Subtotal: "12.99"},
		},
		Count:   3,
		Total:   "1110.99",
		Visible: true,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("panel mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildCartPanel_Empty(t *testing.T) {
	got := view.BuildCartPanel(domain.Cart{}, false)
	if !got.Empty || got.Total != "0.00" || got.Count != 0 || got.Visible || got.Rows == nil {
		t.Fatalf("unexpected empty panel: %+v", got)
	}
}

func TestCategoryOptions_Labels(t *testing.T) {
	got := view.CategoryOptions([]string{"smartphones", "home-decoration"}, "home-decoration")
	want := []view.SelectOption{
		{Value: "", Label: "All"},
		{Value: "smartphones", Label: "Smartphones"},
		{Value: "home-decoration", Label: "Home-decoration", Selected: true},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("options mismatch (-want +got):\n%s", diff)
	}
}

func TestStoreURL(t *testing.T) {
	tests := []struct {
		name   string
		q      domain.ProductQuery
		hidden bool
		id     int64
		want   string
	}{
		{"root", domain.ProductQuery{}, false, 0, "/"},
		{"hidden_cart", domain.ProductQuery{}, true, 0, "/?cart=hidden"},
		{"product", domain.ProductQuery{}, false, 7, "/products/7"},
		{"all", domain.ProductQuery{Search: " tree oil ", Category: "skincare", Sort: "DESC"}, true, 3,
			"/products/3?cart=hidden&category=skincare&q=tree+oil&sort=desc"},
	}
	for _, tt := range tests {
		if got := view.StoreURL(tt.q, tt.hidden, tt.id); got != tt.want {
			t.Fatalf("%s: StoreURL = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestBuildStorePage_DetailAndToggle(t *testing.T) {
	q := domain.ProductQuery{Category: "smartphones"}
	page := view.BuildStorePage([]domain.Product{phone}, []string{"smartphones"}, domain.Cart{}, view.Options{
		Query:  q,
		Detail: &phone,
		Loaded: true,
		Notice: view.NoticeUnsaved,
	})

	if page.Detail == nil || page.Detail.Discount != "12.96%" || page.Detail.Rating != "4.69" || page.Detail.Price != "549 USD" {
		t.Fatalf("unexpected detail: %+v", page.Detail)
	}
	if page.Detail.CloseURL != "/?category=smartphones" {
		t.Fatalf("close url: %q", page.Detail.CloseURL)
	}
	if page.ReturnPath != "/products/1?category=smartphones" {
		t.Fatalf("return path: %q", page.ReturnPath)
	}
	if page.ToggleCartURL != "/products/1?cart=hidden&category=smartphones" {
		t.Fatalf("toggle url: %q", page.ToggleCartURL)
	}
	if len(page.Products) != 1 || page.Products[0].URL != "/products/1?category=smartphones" {
		t.Fatalf("unexpected cards: %+v", page.Products)
	}
	if page.Notice == "" || !page.Cart.Visible {
		t.Fatalf("notice must be shown and cart visible: %+v", page)
	}
}

func TestTemplates_Render(t *testing.T) {
	tmpl := view.MustTemplates()
	cart := domain.NewCart(domain.CartLine{Product: oil, Quantity: 2})

	var buf bytes.Buffer
	page := view.BuildStorePage([]domain.Product{phone, oil}, []string{"smartphones", "home-decoration"}, cart,
		view.Options{Detail: &phone, Loaded: true})
	if err := tmpl.ExecuteTemplate(&buf, view.StoreTemplate, page); err != nil {
		t.Fatalf("render store: %v", err)
	}
	html := buf.String()
	for _, want := range []string{"iPhone 9", "Home-decoration", "Tree Oil 30ml (2)", "Add to Cart", `action="/cart/add/1"`} {
		if !strings.Contains(html, want) {
			t.Fatalf("store page must contain %q", want)
		}
	}

	buf.Reset()
	if err := tmpl.ExecuteTemplate(&buf, view.CartTemplate, view.BuildCartPage(cart, "")); err != nil {
		t.Fatalf("render cart: %v", err)
	}
	html = buf.String()
	for _, want := range []string{"25.98", "Total: 25.98", "Delete", `action="/cart/items/3/decrement"`} {
		if !strings.Contains(html, want) {
			t.Fatalf("cart page must contain %q", want)
		}
	}
}
