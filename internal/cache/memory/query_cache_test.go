package memory

import (
	"context"
	"testing"
	"time"

	"github.com/Gunvolt24/storefront/internal/domain"
)

func products(ids ...int64) []domain.Product {
	out := make([]domain.Product, 0, len(ids))
	for _, id := range ids {
		out = append(out, domain.Product{ID: id, Title: "p"})
	}
	return out
}

// fakeClock — управляемые часы вместо time.Sleep.
type fakeClock struct{ t time.Time }

func (f *fakeClock) now() time.Time          { return f.t }
func (f *fakeClock) advance(d time.Duration) { f.t = f.t.Add(d) }

func TestSetGet_HitMiss(t *testing.T) {
	c := NewQueryCache(2, 5*time.Minute)
	ctx := context.Background()

	// miss
	if _, ok := c.Get(ctx, "q=phone"); ok {
		t.Fatalf("expected miss before Set")
	}

	// hit после Set
	_ = c.Set(ctx, "q=phone", products(1, 2))
	got, ok := c.Get(ctx, "q=phone")
	if !ok || len(got) != 2 || got[0].ID != 1 {
		t.Fatalf("expected hit for q=phone, got %+v ok=%v", got, ok)
	}
}

func TestTTL_Expiry(t *testing.T) {
	clock := &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	c := NewQueryCache(2, time.Minute)
	c.now = clock.now
	ctx := context.Background()

	_ = c.Set(ctx, "ttl", products(1))
	if _, ok := c.Get(ctx, "ttl"); !ok {
		t.Fatalf("expected hit right after Set")
	}
	clock.advance(61 * time.Second)
	if _, ok := c.Get(ctx, "ttl"); ok {
		t.Fatalf("expected miss after TTL expires")
	}
	if c.Len() != 0 {
		t.Fatalf("expired entry must be removed, len=%d", c.Len())
	}
}

func TestSet_PrunesExpiredTail(t *testing.T) {
	clock := &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	c := NewQueryCache(10, time.Minute)
	c.now = clock.now
	ctx := context.Background()

	_ = c.Set(ctx, "old-1", products(1))
	_ = c.Set(ctx, "old-2", products(2))
	clock.advance(2 * time.Minute)
	_ = c.Set(ctx, "fresh", products(3))

	if c.Len() != 1 {
		t.Fatalf("expected only fresh entry, len=%d", c.Len())
	}
}

func TestLRUEviction(t *testing.T) {
	c := NewQueryCache(2, 0) // 0 = без TTL
	ctx := context.Background()

	_ = c.Set(ctx, "A", products(1))
	_ = c.Set(ctx, "B", products(2))
	// A сделать «свежим»
	if _, ok := c.Get(ctx, "A"); !ok {
		t.Fatalf("expected hit for A")
	}
	// Добавляем C — вытеснит B (самый старый)
	_ = c.Set(ctx, "C", products(3))

	if _, ok := c.Get(ctx, "B"); ok {
		t.Fatalf("expected B to be evicted")
	}
	if _, ok := c.Get(ctx, "A"); !ok || c.Len() != 2 {
		t.Fatalf("expected A & C to stay in cache")
	}
}

func TestSet_OverwritesExisting(t *testing.T) {
	c := NewQueryCache(2, 0)
	ctx := context.Background()

	_ = c.Set(ctx, "A", products(1))
	_ = c.Set(ctx, "A", products(4, 5))

	got, ok := c.Get(ctx, "A")
	if !ok || len(got) != 2 || got[0].ID != 4 || c.Len() != 1 {
		t.Fatalf("expected overwritten value, got %+v len=%d", got, c.Len())
	}
}

func TestCloneImmutability(t *testing.T) {
	c := NewQueryCache(1, 0)
	ctx := context.Background()
	orig := products(7)
	_ = c.Set(ctx, "Z", orig)

	// меняем исходный срез и то, что вернул Get — кэш не должен меняться
	orig[0].Title = "changed-before"
	p1, _ := c.Get(ctx, "Z")
	p1[0].Title = "changed-after"

	p2, _ := c.Get(ctx, "Z")
	if p2[0].Title != "p" {
		t.Fatalf("cache must store and return copies, got %q", p2[0].Title)
	}
}

func TestNewQueryCache_MinCapacity(t *testing.T) {
	c := NewQueryCache(0, 0)
	ctx := context.Background()
	_ = c.Set(ctx, "A", products(1))
	_ = c.Set(ctx, "B", products(2))
	if c.Len() != 1 {
		t.Fatalf("capacity must be at least 1, len=%d", c.Len())
	}
}
