package cli

import (
	"context"

	"github.com/Gunvolt24/storefront/config"
	"github.com/Gunvolt24/storefront/internal/app"
	"github.com/Gunvolt24/storefront/internal/ports"
	"github.com/Gunvolt24/storefront/internal/usecase"
)

// NewOpener — сессии поверх хранилища, каталога и публикатора из конфигурации.
// События, поставленные в очередь за время команды, отправляются при Close.
func NewOpener(cfg *config.Config, log ports.Logger) Opener {
	return func(ctx context.Context, needCatalog bool) (*Session, error) {
		storage, closeStorage, err := app.OpenStorage(ctx, cfg, log)
		if err != nil {
			return nil, err
		}

		publisher := app.NewPublisher(cfg, log)
		runCtx, stop := context.WithCancel(context.WithoutCancel(ctx))
		done := make(chan struct{})
		go func() {
			defer close(done)
			_ = publisher.Run(runCtx)
		}()

		catalog := app.NewCatalog(cfg, log)
		if needCatalog {
			catalog.Load(ctx)
		}

		return &Session{
			Cart:    usecase.NewCartStore(ctx, storage, cfg.Storage.CartKey, log, usecase.WithEvents(publisher)),
			Catalog: catalog,
			Close: func() {
				stop()
				<-done
				if err := publisher.Close(); err != nil {
					log.Warnf(ctx, "cart event publisher close: %v", err)
				}
				closeStorage()
			},
		}, nil
	}
}
