package ports

import (
	"context"

	"github.com/Gunvolt24/storefront/internal/domain"
)

// QueryCache — кэш результатов поиска по каталогу.
// Требования к реализации: потокобезопасность; возврат копий.
type QueryCache interface {
	// Get — (products, true) при попадании, (nil, false) при промахе/истечении.
	Get(ctx context.Context, key string) ([]domain.Product, bool)

	// Set — сохранить/обновить результат запроса.
	Set(ctx context.Context, key string, products []domain.Product) error
}
