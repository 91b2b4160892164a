// Пакет view — модели страниц витрины: чистые функции (товары, корзина, опции) → данные шаблона.
package view

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/Gunvolt24/storefront/internal/domain"
)

// NoticeUnsaved — значение параметра notice после неудачной записи корзины.
const NoticeUnsaved = "unsaved"

// Options — состояние контролов страницы.
type Options struct {
	Query      domain.ProductQuery
	CartHidden bool
	Detail     *domain.Product // открытая карточка товара
	Notice     string
	Loaded     bool // каталог загружен
}

// SelectOption — пункт выпадающего списка.
type SelectOption struct {
	Value    string
	Label    string
	Selected bool
}

// ProductCard — плитка товара в сетке.
type ProductCard struct {
	ID        int64
	Title     string
	Thumbnail string
	Price     string
	URL       string
}

// ProductDetail — панель подробностей товара.
type ProductDetail struct {
	ID          int64
	Title       string
	Thumbnail   string
	Description string
	Category    string
	Discount    string
	Rating      string
	Price       string
	CloseURL    string
}

// CartRow — строка корзины.
type CartRow struct {
	ID        int64
	Title     string
	Thumbnail string
	Price     string
	Quantity  int
	Subtotal  string
}

// CartPanel — корзина на странице.
type CartPanel struct {
	Rows    []CartRow
	Count   int
	Total   string
	Empty   bool
	Visible bool
}

// StorePage — главная страница (сетка, фильтры, корзина, карточка).
type StorePage struct {
	Search        string
	Categories    []SelectOption
	Sorts         []SelectOption
	Products      []ProductCard
	Detail        *ProductDetail
	Cart          CartPanel
	CatalogLoaded bool
	ReturnPath    string // текущий адрес для форм
	ToggleCartURL string
	Notice        string
}

// CartPage — отдельная страница корзины.
type CartPage struct {
	Cart       CartPanel
	ReturnPath string
	Notice     string
}

// BuildStorePage — модель главной страницы. products — уже отфильтрованный список.
func BuildStorePage(products []domain.Product, categories []string, cart domain.Cart, opts Options) StorePage {
	q := opts.Query.Normalize()

	page := StorePage{
		Search:        q.Search,
		Categories:    CategoryOptions(categories, q.Category),
		Sorts:         SortOptions(q.Sort),
		Products:      make([]ProductCard, 0, len(products)),
		Cart:          BuildCartPanel(cart, !opts.CartHidden),
		CatalogLoaded: opts.Loaded,
		ReturnPath:    StoreURL(q, opts.CartHidden, 0),
		ToggleCartURL: StoreURL(q, !opts.CartHidden, detailID(opts.Detail)),
		Notice:        NoticeText(opts.Notice),
	}
	for _, p := range products {
		page.Products = append(page.Products, ProductCard{
			ID:        p.ID,
			Title:     p.Title,
			Thumbnail: p.Thumbnail,
			Price:     FormatPrice(p.Price),
			URL:       StoreURL(q, opts.CartHidden, p.ID),
		})
	}
	if d := opts.Detail; d != nil {
		page.Detail = &ProductDetail{
			ID:          d.ID,
			Title:       d.Title,
			Thumbnail:   d.Thumbnail,
			Description: d.Description,
			Category:    d.Category,
			Discount:    formatNumber(d.DiscountPercentage) + "%",
			Rating:      formatNumber(d.Rating),
			Price:       FormatPrice(d.Price),
			CloseURL:    StoreURL(q, opts.CartHidden, 0),
		}
		page.ReturnPath = StoreURL(q, opts.CartHidden, d.ID)
	}
	return page
}

// BuildCartPage — модель страницы корзины.
func BuildCartPage(cart domain.Cart, notice string) CartPage {
	return CartPage{
		Cart:       BuildCartPanel(cart, true),
		ReturnPath: "/cart",
		Notice:     NoticeText(notice),
	}
}

// BuildCartPanel — строки корзины с суммами (2 знака).
func BuildCartPanel(cart domain.Cart, visible bool) CartPanel {
	lines := cart.Lines()
	panel := CartPanel{
		Rows:    make([]CartRow, 0, len(lines)),
		Count:   cart.Count(),
		Total:   FormatMoney(cart.Total()),
		Empty:   len(lines) == 0,
		Visible: visible,
	}
	for _, l := range lines {
		panel.Rows = append(panel.Rows, CartRow{
			ID:        l.ID,
			Title:     l.Title,
			Thumbnail: l.Thumbnail,
			Price:     FormatMoney(l.Price),
			Quantity:  l.Quantity,
			Subtotal:  FormatMoney(l.Subtotal()),
		})
	}
	return panel
}

// CategoryOptions — "All" + категории с подписью через CategoryLabel.
func CategoryOptions(categories []string, selected string) []SelectOption {
	out := make([]SelectOption, 0, len(categories)+1)
	out = append(out, SelectOption{Value: "", Label: "All", Selected: selected == ""})
	for _, c := range categories {
		out = append(out, SelectOption{Value: c, Label: domain.CategoryLabel(c), Selected: c == selected})
	}
	return out
}

// SortOptions — варианты сортировки по цене.
func SortOptions(selected domain.SortOrder) []SelectOption {
	return []SelectOption{
		{Value: string(domain.SortNone), Label: "Sort by price", Selected: selected == domain.SortNone},
		{Value: string(domain.SortPriceAsc), Label: "Low to High", Selected: selected == domain.SortPriceAsc},
		{Value: string(domain.SortPriceDesc), Label: "High to Low", Selected: selected == domain.SortPriceDesc},
	}
}

// StoreURL — адрес главной (или карточки товара) с сохранением контролов.
func StoreURL(q domain.ProductQuery, cartHidden bool, productID int64) string {
	q = q.Normalize()
	v := url.Values{}
	if q.Search != "" {
		v.Set("q", q.Search)
	}
	if q.Category != "" {
		v.Set("category", q.Category)
	}
	if q.Sort != domain.SortNone {
		v.Set("sort", string(q.Sort))
	}
	if cartHidden {
		v.Set("cart", "hidden")
	}

	path := "/"
	if productID > 0 {
		path = "/products/" + strconv.FormatInt(productID, 10)
	}
	if len(v) == 0 {
		return path
	}
	return path + "?" + v.Encode()
}

// NoticeText — текст баннера по коду notice.
func NoticeText(code string) string {
	if code == NoticeUnsaved {
		return "Cart changes could not be saved."
	}
	return ""
}

// FormatMoney — сумма с двумя знаками после точки.
func FormatMoney(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// FormatPrice — цена каталога как в API ("549 USD", "12.99 USD").
func FormatPrice(v float64) string {
	return formatNumber(v) + " USD"
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func detailID(p *domain.Product) int64 {
	if p == nil {
		return 0
	}
	return p.ID
}
