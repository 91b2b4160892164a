package kafka

import (
	"context"

	"github.com/Gunvolt24/storefront/internal/domain"
)

// NopPublisher — публикация отключена: события отбрасываются без учёта.
type NopPublisher struct{}

// Publish — ничего не делает.
func (NopPublisher) Publish(context.Context, domain.CartEvent) {}

// Run — ждёт отмены контекста.
func (NopPublisher) Run(ctx context.Context) error {
	<-ctx.Done()
	return ctx.Err()
}

// Close — ничего не делает.
func (NopPublisher) Close() error { return nil }
