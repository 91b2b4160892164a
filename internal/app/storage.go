package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Gunvolt24/storefront/config"
	"github.com/Gunvolt24/storefront/internal/ports"
	"github.com/Gunvolt24/storefront/internal/storage/memory"
	"github.com/Gunvolt24/storefront/internal/storage/postgres"
	"github.com/Gunvolt24/storefront/internal/storage/redis"
	"github.com/Gunvolt24/storefront/internal/storage/sqlite"
)

// Драйверы хранилища корзины.
const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
)

// ErrUnknownDriver — неизвестное значение STORE_STORAGE_DRIVER.
var ErrUnknownDriver = errors.New("unknown storage driver")

// OpenStorage — KV-хранилище корзины по конфигурации и функция его закрытия.
func OpenStorage(ctx context.Context, cfg *config.Config, log ports.Logger) (ports.KVStorage, func(), error) {
	driver := strings.ToLower(strings.TrimSpace(cfg.Storage.Driver))

	switch driver {
	case DriverMemory:
		log.Warnf(ctx, "storage driver=memory: cart is lost on restart")
		return memory.NewKVStore(), func() {}, nil

	case "", DriverSQLite:
		store, err := sqlite.Open(ctx, cfg.Storage.SQLitePath)
		if err != nil {
			return nil, func() {}, err
		}
		log.Infof(ctx, "storage driver=sqlite path=%s", cfg.Storage.SQLitePath)
		return store, func() {
			if cErr := store.Close(); cErr != nil {
				log.Warnf(ctx, "close sqlite: %v", cErr)
			}
		}, nil

	case DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConns)
		if err != nil {
			return nil, func() {}, err
		}
		if cfg.Postgres.AutoMigrate {
			if err := postgres.Migrate(ctx, pool); err != nil {
				pool.Close()
				return nil, func() {}, err
			}
		}
		log.Infof(ctx, "storage driver=postgres max_conns=%d", cfg.Postgres.MaxConns)
		return postgres.NewKVStore(pool), pool.Close, nil

	case DriverRedis:
		store, err := redis.Connect(ctx, cfg.Redis.URL, cfg.Redis.Password)
		if err != nil {
			return nil, func() {}, err
		}
		log.Infof(ctx, "storage driver=redis")
		return store, func() {
			if cErr := store.Close(); cErr != nil {
				log.Warnf(ctx, "close redis: %v", cErr)
			}
		}, nil

	default:
		return nil, func() {}, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Storage.Driver)
	}
}
