package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Корзина.
var (
	CartMutations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cart_mutations_total",
			Help: "Cart mutations by operation and result",
		},
		[]string{"op", "result"}, // op: add|change|remove; result: ok|noop|persist_error
	)
	CartLines = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "cart_lines",
			Help: "Number of lines currently in the cart",
		},
	)
	CartStorageLoads = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cart_storage_loads_total",
			Help: "Cart loads from storage by result",
		},
		[]string{"result"}, // ok|empty|read_error|decode_error
	)
)

// Каталог.
var (
	CatalogFetches = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_fetches_total",
			Help: "Catalog fetch attempts by result",
		},
		[]string{"result"}, // ok|error
	)
	CatalogProducts = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_products",
			Help: "Number of products in the loaded catalog",
		},
	)
)

// Кэш запросов к каталогу.
var (
	CacheOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "query_cache_operations_total",
			Help: "Query cache operations",
		},
		[]string{"op"}, // hit|miss|evicted|expired
	)
	CacheSize = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "query_cache_size",
			Help: "Number of items currently in query cache",
		},
	)
)

// События корзины (Kafka).
var (
	CartEventsPublished = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cart_events_published_total",
			Help: "Cart events written to Kafka",
		},
		[]string{"topic"},
	)
	CartEventsFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cart_events_failed_total",
			Help: "Cart events dropped after exhausting retries",
		},
		[]string{"topic"},
	)
	CartEventsDropped = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cart_events_dropped_total",
			Help: "Cart events dropped because the publish queue was full",
		},
		[]string{"topic"},
	)
)

var registerOnce sync.Once

// MustRegister — регистрирует метрики в глобальном реестре; повторный вызов ничего не делает.
func MustRegister() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			CartMutations, CartLines, CartStorageLoads,
			CatalogFetches, CatalogProducts,
			CacheOps, CacheSize,
			CartEventsPublished, CartEventsFailed, CartEventsDropped,
		)
	})
}
