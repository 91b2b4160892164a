//go:build integration

package testutil

import (
	"sync/atomic"

	"github.com/Gunvolt24/storefront/internal/domain"
)

var productSeq atomic.Int64

// MakeProduct — товар с уникальным ID.
func MakeProduct(opts ...func(*domain.Product)) domain.Product {
	id := 1000 + productSeq.Add(1)
	p := domain.Product{
		ID:                 id,
		Title:              "Widget",
		Thumbnail:          "https://cdn.example/thumb.jpg",
		Price:              10,
		Category:           "smartphones",
		Description:        "test product",
		DiscountPercentage: 5,
		Rating:             4.5,
	}
	for _, fn := range opts {
		fn(&p)
	}
	return p
}

// WithPrice — переопределить цену.
func WithPrice(price float64) func(*domain.Product) {
	return func(p *domain.Product) { p.Price = price }
}

// WithCategory — переопределить категорию.
func WithCategory(category string) func(*domain.Product) {
	return func(p *domain.Product) { p.Category = category }
}
