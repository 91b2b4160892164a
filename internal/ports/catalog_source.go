package ports

import (
	"context"

	"github.com/Gunvolt24/storefront/internal/domain"
)

// CatalogSource — внешний источник списка товаров.
type CatalogSource interface {
	FetchProducts(ctx context.Context) ([]domain.Product, error)
}
