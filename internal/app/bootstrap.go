package app

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/storefront/config"
	cachemem "github.com/Gunvolt24/storefront/internal/cache/memory"
	"github.com/Gunvolt24/storefront/internal/catalog/dummyjson"
	"github.com/Gunvolt24/storefront/internal/kafka"
	"github.com/Gunvolt24/storefront/internal/ports"
	rest "github.com/Gunvolt24/storefront/internal/transport/http"
	"github.com/Gunvolt24/storefront/internal/usecase"
	"github.com/Gunvolt24/storefront/pkg/logger"
	"github.com/Gunvolt24/storefront/pkg/metrics"
	"github.com/Gunvolt24/storefront/pkg/telemetry"
)

const defaultGracefulTimeout = 5 * time.Second

// CatalogLoader — фоновая загрузка каталога при старте.
type CatalogLoader interface {
	Load(ctx context.Context)
}

// App — собранное приложение и его внешние интерфейсы (HTTP, публикация событий).
type App struct {
	Logger          ports.Logger           // логгер
	HTTPServer      *http.Server           // HTTP-сервер
	Worker          ports.BackgroundWorker // публикация событий корзины
	Catalog         CatalogLoader          // загрузка каталога (может быть nil)
	gracefulTimeout time.Duration          // время ожидания завершения HTTP-сервера
}

// Cleanup — функция освобождения ресурсов.
type Cleanup func()

// applyGinMode — устанавливает режим Gin по строке;
// неизвестное значение → debug и предупреждение в лог.
func applyGinMode(ctx context.Context, mode string, log ports.Logger) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	case "", "debug":
		gin.SetMode(gin.DebugMode)
	default:
		gin.SetMode(gin.DebugMode)
		log.Warnf(ctx, "unknown GIN_MODE=%q, fallback to debug", mode)
	}
}

// EventWorker — публикатор событий корзины с фоновым циклом доставки.
type EventWorker interface {
	ports.CartEventPublisher
	ports.BackgroundWorker
}

// NewPublisher — Kafka-публикатор событий корзины или no-op при выключенной Kafka.
func NewPublisher(cfg *config.Config, log ports.Logger) EventWorker {
	if !cfg.Kafka.Enabled {
		return kafka.NopPublisher{}
	}
	return kafka.NewPublisher(kafka.PublisherConfig{
		Brokers:      cfg.Kafka.Brokers,
		Topic:        cfg.Kafka.Topic,
		QueueSize:    cfg.Kafka.QueueSize,
		WriteTimeout: cfg.Kafka.WriteTimeout,
		RetryInitial: cfg.Kafka.RetryInitial,
		RetryMax:     cfg.Kafka.RetryMax,
		MaxAttempts:  cfg.Kafka.MaxAttempts,
	}, log)
}

// NewCatalog — каталог поверх dummyjson с кэшем запросов.
func NewCatalog(cfg *config.Config, log ports.Logger) *usecase.CatalogService {
	source := dummyjson.New(cfg.Catalog.URL, cfg.Catalog.Timeout)
	var cache ports.QueryCache
	if cfg.Cache.Capacity > 0 {
		cache = cachemem.NewQueryCache(cfg.Cache.Capacity, cfg.Cache.TTL)
	}
	return usecase.NewCatalogService(source, cache, log)
}

// Bootstrap — собирает зависимости и возвращает приложение, функцию очистки и ошибку.
func Bootstrap(ctx context.Context, cfg *config.Config) (*App, Cleanup, error) {
	// Логгер (dev/prod режим задаётся конфигурацией).
	logg, cleanupLogger, err := logger.NewZapLogger(cfg.Logger.IsProd)
	if err != nil {
		return nil, func() {}, err
	}

	// Регистрация метрик (Prometheus).
	metrics.MustRegister()

	// Хранилище корзины.
	storage, closeStorage, err := OpenStorage(ctx, cfg, logg)
	if err != nil {
		if cErr := cleanupLogger(); cErr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cErr)
		}
		return nil, func() {}, err
	}

	// Трейсинг OTEL (при включённой конфигурации); по умолчанию — no-op.
	shutdownTrace := func(context.Context) error { return nil }
	if cfg.Tracing.Enabled {
		setup, tErr := telemetry.SetupTracing(ctx, telemetry.Config{
			ServiceName: cfg.Tracing.ServiceName,
			Endpoint:    cfg.Tracing.Endpoint,
			SampleRatio: cfg.Tracing.SampleRatio,
		})
		if tErr != nil {
			logg.Warnf(ctx, "failed to setup tracing: %v", tErr)
		} else {
			logg.Infof(ctx, "otel tracing enabled service=%s endpoint=%s sample=%.2f",
				cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
			shutdownTrace = setup
		}
	}

	// Сборка зависимостей доменного слоя.
	publisher := NewPublisher(cfg, logg)
	catalog := NewCatalog(cfg, logg)
	cart := usecase.NewCartStore(ctx, storage, cfg.Storage.CartKey, logg, usecase.WithEvents(publisher))

	// Режим Gin.
	applyGinMode(ctx, cfg.HTTP.GinMode, logg)

	// Имя сервиса для otelgin (только при включённом трейсинге).
	otelServiceName := ""
	if cfg.Tracing.Enabled {
		otelServiceName = cfg.Tracing.ServiceName
	}

	// Роутер и HTTP-сервер.
	httpHandler := rest.NewHandler(cart, catalog, logg, cfg.HTTP.HandlerTimeout)
	router := rest.NewRouter(httpHandler, cfg.HTTP.StaticDir, otelServiceName)

	httpSrv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
	}

	app := &App{
		Logger:          logg,
		HTTPServer:      httpSrv,
		Worker:          publisher,
		Catalog:         catalog,
		gracefulTimeout: defaultGracefulTimeout,
	}

	// Очистка ресурсов (в обратном порядке).
	cleanup := func() {
		if terr := shutdownTrace(context.Background()); terr != nil {
			logg.Warnf(ctx, "shutdown tracing: %v", terr)
		}
		closeStorage()
		if cerr := cleanupLogger(); cerr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cerr)
		}
	}

	return app, cleanup, nil
}

// Run — запускает загрузку каталога, публикатор событий и HTTP-сервер;
// ждёт отмены контекста или ошибки и останавливает их.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 2)

	// Каталог грузится в фоне и не блокирует операции с корзиной.
	if a.Catalog != nil {
		go a.Catalog.Load(ctx)
	}

	// Публикатор работает до отдельной отмены: сначала останавливаем HTTP,
	// затем отдаём ему накопленные события.
	workerCtx, stopWorker := context.WithCancel(context.WithoutCancel(ctx))
	defer stopWorker()

	var workerWG sync.WaitGroup
	workerWG.Add(1)
	go func() {
		defer workerWG.Done()
		a.Logger.Infof(ctx, "cart event worker starting")
		if err := a.Worker.Run(workerCtx); err != nil && !errors.Is(err, context.Canceled) {
			errCh <- err
		}
	}()

	// Запуск HTTP-сервера.
	go func() {
		a.Logger.Infof(ctx, "http server starting (addr=%s)", a.HTTPServer.Addr)
		if err := a.HTTPServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Ожидание сигнала остановки или фоновой ошибки.
	var runErr error
	select {
	case <-ctx.Done():
		a.Logger.Infof(ctx, "shutdown requested, starting graceful shutdown")
	case err := <-errCh:
		a.Logger.Warnf(ctx, "background error: %v", err)
		runErr = err
	}

	gt := a.gracefulTimeout
	if gt <= 0 {
		gt = defaultGracefulTimeout
	}

	// Корректная остановка HTTP-сервера.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), gt)
	defer cancel()

	if err := a.HTTPServer.Shutdown(shutdownCtx); err != nil {
		a.Logger.Warnf(ctx, "http server shutdown failed: %v", err)
	} else {
		a.Logger.Infof(ctx, "http server stopped gracefully")
	}

	// Остановка публикатора: дожидаемся сброса очереди в пределах того же таймаута.
	stopWorker()
	done := make(chan struct{})
	go func() {
		workerWG.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-shutdownCtx.Done():
		a.Logger.Warnf(ctx, "cart event worker did not stop in %s", gt)
	}
	if err := a.Worker.Close(); err != nil {
		a.Logger.Warnf(ctx, "cart event worker close error: %v", err)
	}

	a.Logger.Infof(ctx, "service stopped")
	return runErr
}
