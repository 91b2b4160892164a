package ports

import (
	"context"

	"github.com/Gunvolt24/storefront/internal/domain"
)

// CartEventPublisher — отправка событий изменения корзины.
// Publish не должен блокировать вызывающего.
type CartEventPublisher interface {
	Publish(ctx context.Context, event domain.CartEvent)
}

// BackgroundWorker — фоновый компонент с жизненным циклом (Run до отмены контекста, затем Close).
type BackgroundWorker interface {
	Run(ctx context.Context) error
	Close() error
}
