package domain

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

// SortOrder — порядок сортировки по цене.
type SortOrder string

const (
	SortNone      SortOrder = ""
	SortPriceAsc  SortOrder = "asc"
	SortPriceDesc SortOrder = "desc"
)

// ParseSortOrder — разбирает значение контрола сортировки;
// неизвестное значение — порядок каталога.
func ParseSortOrder(s string) SortOrder {
	switch SortOrder(strings.ToLower(strings.TrimSpace(s))) {
	case SortPriceAsc:
		return SortPriceAsc
	case SortPriceDesc:
		return SortPriceDesc
	default:
		return SortNone
	}
}

// ProductQuery — параметры поиска/фильтрации/сортировки списка товаров.
type ProductQuery struct {
	Search   string    // подстрока в названии, без учёта регистра
	Category string    // точное совпадение категории
	Sort     SortOrder // сортировка по цене
}

// Normalize — обрезает пробелы и приводит сортировку к допустимому значению.
func (q ProductQuery) Normalize() ProductQuery {
	return ProductQuery{
		Search:   strings.TrimSpace(q.Search),
		Category: strings.TrimSpace(q.Category),
		Sort:     ParseSortOrder(string(q.Sort)),
	}
}

// IsZero — запрос без условий (весь каталог в исходном порядке).
func (q ProductQuery) IsZero() bool {
	n := q.Normalize()
	return n.Search == "" && n.Category == "" && n.Sort == SortNone
}

// Key — ключ кэша для нормализованного запроса.
func (q ProductQuery) Key() string {
	n := q.Normalize()
	return "q=" + cases.Fold().String(n.Search) + "&category=" + n.Category + "&sort=" + string(n.Sort)
}

// FilterProducts — применяет запрос к списку товаров.
// Исходный срез не меняется; сортировка стабильная.
func FilterProducts(products []Product, q ProductQuery) []Product {
	q = q.Normalize()
	fold := cases.Fold()
	term := fold.String(q.Search)

	out := make([]Product, 0, len(products))
	for _, p := range products {
		if q.Category != "" && p.Category != q.Category {
			continue
		}
		if term != "" && !strings.Contains(fold.String(p.Title), term) {
			continue
		}
		out = append(out, p)
	}

	switch q.Sort {
	case SortPriceAsc:
		slices.SortStableFunc(out, func(a, b Product) int { return comparePrice(a.Price, b.Price) })
	case SortPriceDesc:
		slices.SortStableFunc(out, func(a, b Product) int { return comparePrice(b.Price, a.Price) })
	}
	return out
}

// Categories — уникальные категории в порядке первого появления.
func Categories(products []Product) []string {
	seen := make(map[string]struct{}, len(products))
	out := make([]string, 0)
	for _, p := range products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out
}

// CategoryLabel — подпись категории: первая буква заглавная, остальное как есть.
func CategoryLabel(category string) string {
	r, size := utf8.DecodeRuneInString(category)
	if r == utf8.RuneError {
		return category
	}
	return string(unicode.ToUpper(r)) + category[size:]
}

func comparePrice(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
