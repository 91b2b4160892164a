// Пакет memory — кэш результатов поиска по каталогу в памяти процесса (LRU + TTL).
package memory

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/Gunvolt24/storefront/internal/domain"
	"github.com/Gunvolt24/storefront/pkg/metrics"
)

type entry struct {
	key       string
	products  []domain.Product
	expiresAt time.Time
}

// QueryCache — LRU-кэш с ограничением по числу запросов и временем жизни записи.
// ttl <= 0 — записи не истекают.
type QueryCache struct {
	capacity int
	ttl      time.Duration
	now      func() time.Time

	mu    sync.Mutex
	ll    *list.List
	index map[string]*list.Element
}

// NewQueryCache — конструктор; capacity < 1 приводится к 1.
func NewQueryCache(capacity int, ttl time.Duration) *QueryCache {
	if capacity <= 0 {
		capacity = 1
	}
	return &QueryCache{
		capacity: capacity,
		ttl:      ttl,
		now:      time.Now,
		ll:       list.New(),
		index:    make(map[string]*list.Element),
	}
}

// Get — копия результата по ключу запроса.
func (c *QueryCache) Get(_ context.Context, key string) ([]domain.Product, bool) {
	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.index[key]
	if !ok {
		metrics.CacheOps.WithLabelValues("miss").Inc()
		return nil, false
	}
	ent := elem.Value.(*entry)
	if c.isExpired(ent, now) {
		metrics.CacheOps.WithLabelValues("expired").Inc()
		c.removeElement(elem)
		return nil, false
	}
	c.ll.MoveToFront(elem)

	metrics.CacheOps.WithLabelValues("hit").Inc()
	return cloneProducts(ent.products), true
}

// Set — сохранить результат запроса; при переполнении вытесняется самый старый.
func (c *QueryCache) Set(_ context.Context, key string, products []domain.Product) error {
	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.index[key]; ok {
		ent := elem.Value.(*entry)
		ent.products = cloneProducts(products)
		ent.expiresAt = c.expiryFrom(now)
		c.ll.MoveToFront(elem)
		return nil
	}

	c.pruneExpiredFromBack(now)

	c.index[key] = c.ll.PushFront(&entry{
		key:       key,
		products:  cloneProducts(products),
		expiresAt: c.expiryFrom(now),
	})
	if c.ll.Len() > c.capacity {
		c.removeElement(c.ll.Back())
		metrics.CacheOps.WithLabelValues("evicted").Inc()
	}
	metrics.CacheSize.Set(float64(c.ll.Len()))
	return nil
}

// Len — число записей (включая ещё не удалённые истёкшие).
func (c *QueryCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ll.Len()
}

func (c *QueryCache) removeElement(elem *list.Element) {
	if elem == nil {
		return
	}
	delete(c.index, elem.Value.(*entry).key)
	c.ll.Remove(elem)
	metrics.CacheSize.Set(float64(c.ll.Len()))
}

func (c *QueryCache) isExpired(ent *entry, now time.Time) bool {
	return c.ttl > 0 && now.After(ent.expiresAt)
}

func (c *QueryCache) expiryFrom(now time.Time) time.Time {
	if c.ttl <= 0 {
		return time.Time{}
	}
	return now.Add(c.ttl)
}

// pruneExpiredFromBack — удаляет истёкшие записи с хвоста до первой актуальной.
func (c *QueryCache) pruneExpiredFromBack(now time.Time) {
	if c.ttl <= 0 {
		return
	}
	for back := c.ll.Back(); back != nil; back = c.ll.Back() {
		if !c.isExpired(back.Value.(*entry), now) {
			return
		}
		c.removeElement(back)
		metrics.CacheOps.WithLabelValues("expired").Inc()
	}
}

func cloneProducts(products []domain.Product) []domain.Product {
	if products == nil {
		return nil
	}
	return append(make([]domain.Product, 0, len(products)), products...)
}
