package ports

import (
	"context"

	"github.com/Gunvolt24/storefront/internal/domain"
)

// CartService — операции над корзиной, доступные транспортному слою.
// Мутации возвращают состояние корзины после изменения.
type CartService interface {
	AddOrIncrement(ctx context.Context, product domain.Product) (domain.Cart, error)
	ChangeQuantity(ctx context.Context, productID int64, delta int) (domain.Cart, error)
	Remove(ctx context.Context, productID int64) (domain.Cart, error)
	Snapshot() domain.Cart
}

// CatalogReader — чтение загруженного каталога.
type CatalogReader interface {
	Products() []domain.Product
	Product(id int64) (domain.Product, bool)
	Categories() []string
	Query(ctx context.Context, q domain.ProductQuery) []domain.Product
	Loaded() bool
}
