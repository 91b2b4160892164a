package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/Gunvolt24/storefront/internal/domain"
	"github.com/Gunvolt24/storefront/internal/ports"
	"github.com/Gunvolt24/storefront/pkg/metrics"
)

// CatalogService — каталог товаров, загружаемый один раз за процесс.
// До окончания загрузки (или после неудачной) список пуст; повторных попыток нет.
type CatalogService struct {
	source ports.CatalogSource // внешний API каталога
	cache  ports.QueryCache    // кэш результатов поиска (может быть nil)
	log    ports.Logger

	once sync.Once
	done chan struct{}

	mu         sync.RWMutex
	products   []domain.Product
	byID       map[int64]int
	categories []string
	loaded     bool
}

// NewCatalogService — DI-конструктор. cache может быть nil.
func NewCatalogService(source ports.CatalogSource, cache ports.QueryCache, log ports.Logger) *CatalogService {
	return &CatalogService{
		source: source,
		cache:  cache,
		log:    log,
		done:   make(chan struct{}),
	}
}

// Load — единственная загрузка каталога; последующие вызовы ничего не делают.
// Ошибка не возвращается: каталог остаётся пустым, событие пишется в лог.
func (s *CatalogService) Load(ctx context.Context) {
	s.once.Do(func() {
		defer close(s.done)

		start := time.Now()
		products, err := s.source.FetchProducts(ctx)
		if err != nil {
			metrics.CatalogFetches.WithLabelValues("error").Inc()
			s.log.Warnf(ctx, "catalog fetch failed, catalog stays empty: err=%v", err)
			return
		}

		byID := make(map[int64]int, len(products))
		for i, p := range products {
			if _, dup := byID[p.ID]; !dup {
				byID[p.ID] = i
			}
		}

		s.mu.Lock()
		s.products = products
		s.byID = byID
		s.categories = domain.Categories(products)
		s.loaded = true
		s.mu.Unlock()

		metrics.CatalogFetches.WithLabelValues("ok").Inc()
		metrics.CatalogProducts.Set(float64(len(products)))
		s.log.Infof(ctx, "catalog loaded products=%d categories=%d took=%s",
			len(products), len(s.categories), time.Since(start))
	})
}

// Done — закрывается после завершения попытки загрузки.
func (s *CatalogService) Done() <-chan struct{} {
	return s.done
}

// Loaded — каталог успешно загружен.
func (s *CatalogService) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// Products — копия списка товаров в порядке API.
func (s *CatalogService) Products() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Product, len(s.products))
	copy(out, s.products)
	return out
}

// Product — товар по ID.
func (s *CatalogService) Product(id int64) (domain.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.byID[id]
	if !ok {
		return domain.Product{}, false
	}
	return s.products[i], true
}

// Categories — уникальные категории в порядке первого появления.
func (s *CatalogService) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.categories))
	copy(out, s.categories)
	return out
}

// Query — поиск, фильтр по категории и сортировка по цене.
// Результаты для загруженного каталога кэшируются по нормализованному запросу.
func (s *CatalogService) Query(ctx context.Context, q domain.ProductQuery) []domain.Product {
	q = q.Normalize()

	s.mu.RLock()
	products, loaded := s.products, s.loaded
	s.mu.RUnlock()

	if q.IsZero() || !loaded || s.cache == nil {
		return domain.FilterProducts(products, q)
	}

	key := q.Key()
	if cached, ok := s.cache.Get(ctx, key); ok {
		return cached
	}

	out := domain.FilterProducts(products, q)
	if err := s.cache.Set(ctx, key, out); err != nil {
		s.log.Warnf(ctx, "query cache set failed key=%s err=%v", key, err)
	}
	return out
}
