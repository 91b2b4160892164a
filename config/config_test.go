package config_test

import (
	"slices"
	"testing"
	"time"

	cfg "github.com/Gunvolt24/storefront/config"
)

// TestLoadWithPrefix_Defaults — проверка наличия значений по умолчанию.
func TestLoadWithPrefix_Defaults(t *testing.T) {
	t.Parallel()

	c, err := cfg.LoadWithPrefix("STORE_TEST_DEFAULTS")
	if err != nil {
		t.Fatalf("LoadWithPrefix error: %v", err)
	}

	// HTTP
	if c.HTTP.Addr != ":8080" || c.HTTP.GinMode != "debug" || c.HTTP.StaticDir != "web/static" {
		t.Fatalf("HTTP defaults wrong: %+v", c.HTTP)
	}
	if c.HTTP.ReadTimeout != 10*time.Second || c.HTTP.WriteTimeout != 10*time.Second {
		t.Fatalf("HTTP timeouts wrong: %+v", c.HTTP)
	}
	if c.HTTP.ReadHeaderTimeout != 5*time.Second || c.HTTP.IdleTimeout != 60*time.Second {
		t.Fatalf("HTTP header/idle timeouts wrong: %+v", c.HTTP)
	}
	if c.HTTP.HandlerTimeout != 3*time.Second {
		t.Fatalf("HTTP.HandlerTimeout: want 3s, got %v", c.HTTP.HandlerTimeout)
	}

	// Tracing
	if c.Tracing.Enabled {
		t.Fatalf("Tracing.Enabled: want false, got true")
	}
	if c.Tracing.ServiceName != "storefront" || c.Tracing.Endpoint != "jaeger:4318" || c.Tracing.SampleRatio != 1 {
		t.Fatalf("Tracing defaults wrong: %+v", c.Tracing)
	}

	// Catalog
	if c.Catalog.URL != "https://dummyjson.com/products" || c.Catalog.Timeout != 10*time.Second {
		t.Fatalf("Catalog defaults wrong: %+v", c.Catalog)
	}

	// Storage
	if c.Storage.Driver != "sqlite" || c.Storage.CartKey != "cart" || c.Storage.SQLitePath != "storefront.db" {
		t.Fatalf("Storage defaults wrong: %+v", c.Storage)
	}

	// Postgres
	if c.Postgres.DSN == "" {
		t.Fatalf("Postgres.DSN should have default, got empty")
	}
	if c.Postgres.MaxConns != 10 || !c.Postgres.AutoMigrate {
		t.Fatalf("Postgres defaults wrong: %+v", c.Postgres)
	}

	// Redis
	if c.Redis.URL != "redis://redis:6379/0" || c.Redis.Password != "" {
		t.Fatalf("Redis defaults wrong: %+v", c.Redis)
	}

	// Kafka
	if c.Kafka.Enabled {
		t.Fatalf("Kafka.Enabled: want false, got true")
	}
	if !slices.Equal(c.Kafka.Brokers, []string{"kafka:9092"}) || c.Kafka.Topic != "cart-events" {
		t.Fatalf("Kafka defaults wrong: %+v", c.Kafka)
	}
	if c.Kafka.QueueSize != 256 || c.Kafka.MaxAttempts != 5 {
		t.Fatalf("Kafka queue/attempts wrong: %+v", c.Kafka)
	}
	if c.Kafka.WriteTimeout != 5*time.Second || c.Kafka.RetryInitial != 200*time.Millisecond || c.Kafka.RetryMax != 5*time.Second {
		t.Fatalf("Kafka timeouts wrong: %+v", c.Kafka)
	}

	// Cache
	if c.Cache.Capacity != 128 || c.Cache.TTL != 10*time.Minute {
		t.Fatalf("Cache defaults wrong: %+v", c.Cache)
	}

	// Logger
	if c.Logger.IsProd {
		t.Fatalf("Logger.IsProd: want false, got true")
	}
}

// Меняем окружение.
func TestLoadWithPrefix_Overrides(t *testing.T) {
	const p = "STORE_TEST_OVR"

	t.Setenv(p+"_HTTP_ADDR", ":9999")
	t.Setenv(p+"_HTTP_GIN_MODE", "release")
	t.Setenv(p+"_HTTP_HANDLER_TIMEOUT", "4500ms")
	t.Setenv(p+"_HTTP_STATIC_DIR", "/srv/static")

	t.Setenv(p+"_TRACING_OTEL_ENABLED", "true")
	t.Setenv(p+"_TRACING_OTEL_SERVICE_NAME", "svc")
	t.Setenv(p+"_TRACING_OTEL_SAMPLE_RATIO", "0.25")

	t.Setenv(p+"_CATALOG_URL", "http://catalog.local/products")
	t.Setenv(p+"_CATALOG_TIMEOUT", "2s")

	t.Setenv(p+"_STORAGE_DRIVER", "redis")
	t.Setenv(p+"_STORAGE_CART_KEY", "cart-test")

	t.Setenv(p+"_POSTGRES_DSN", "postgres://u:p@h:5432/db?sslmode=disable")
	t.Setenv(p+"_POSTGRES_AUTO_MIGRATE", "false")

	t.Setenv(p+"_REDIS_URL", "redis://cache:6380/2")

	t.Setenv(p+"_KAFKA_ENABLED", "true")
	t.Setenv(p+"_KAFKA_BROKERS", "k1:9092,k2:9093")
	t.Setenv(p+"_KAFKA_TOPIC", "cart-test")
	t.Setenv(p+"_KAFKA_QUEUE_SIZE", "16")
	t.Setenv(p+"_KAFKA_RETRY_MAX", "2m")

	t.Setenv(p+"_CACHE_CAPACITY", "777")
	t.Setenv(p+"_CACHE_TTL", "30m")

	t.Setenv(p+"_LOGGER_IS_PROD", "true")

	c, err := cfg.LoadWithPrefix(p)
	if err != nil {
		t.Fatalf("LoadWithPrefix error: %v", err)
	}

	if c.HTTP.Addr != ":9999" || c.HTTP.GinMode != "release" ||
		c.HTTP.HandlerTimeout != 4500*time.Millisecond || c.HTTP.StaticDir != "/srv/static" {
		t.Fatalf("HTTP overrides wrong: %+v", c.HTTP)
	}
	if !c.Tracing.Enabled || c.Tracing.ServiceName != "svc" || c.Tracing.SampleRatio != 0.25 {
		t.Fatalf("Tracing overrides wrong: %+v", c.Tracing)
	}
	if c.Catalog.URL != "http://catalog.local/products" || c.Catalog.Timeout != 2*time.Second {
		t.Fatalf("Catalog overrides wrong: %+v", c.Catalog)
	}
	if c.Storage.Driver != "redis" || c.Storage.CartKey != "cart-test" {
		t.Fatalf("Storage overrides wrong: %+v", c.Storage)
	}
	if c.Postgres.DSN != "postgres://u:p@h:5432/db?sslmode=disable" || c.Postgres.AutoMigrate {
		t.Fatalf("Postgres overrides wrong: %+v", c.Postgres)
	}
	if c.Redis.URL != "redis://cache:6380/2" {
		t.Fatalf("Redis overrides wrong: %+v", c.Redis)
	}
	if !c.Kafka.Enabled || !slices.Equal(c.Kafka.Brokers, []string{"k1:9092", "k2:9093"}) ||
		c.Kafka.Topic != "cart-test" || c.Kafka.QueueSize != 16 || c.Kafka.RetryMax != 2*time.Minute {
		t.Fatalf("Kafka overrides wrong: %+v", c.Kafka)
	}
	if c.Cache.Capacity != 777 || c.Cache.TTL != 30*time.Minute {
		t.Fatalf("Cache overrides wrong: %+v", c.Cache)
	}
	if !c.Logger.IsProd {
		t.Fatalf("Logger.IsProd override wrong: %+v", c.Logger)
	}
}

// Тоже меняем окружение — но с невалидным значением.
func TestLoadWithPrefix_InvalidValue_ReturnsError(t *testing.T) {
	const p = "STORE_TEST_BAD"
	t.Setenv(p+"_CATALOG_TIMEOUT", "not-a-duration")

	if _, err := cfg.LoadWithPrefix(p); err == nil {
		t.Fatalf("expected error for invalid duration, got nil")
	}
}
