package memory_test

import (
	"context"
	"testing"

	"github.com/Gunvolt24/storefront/internal/ports"
	"github.com/Gunvolt24/storefront/internal/storage/memory"
)

var _ ports.KVStorage = (*memory.KVStore)(nil)

func TestKVStore_GetSet(t *testing.T) {
	s := memory.NewKVStore()
	ctx := context.Background()

	if _, found, err := s.Get(ctx, "cart"); found || err != nil {
		t.Fatalf("expected missing key, found=%v err=%v", found, err)
	}

	if err := s.Set(ctx, "cart", "[]"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Set(ctx, "cart", `[{"id":1,"quantity":2}]`); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	v, found, err := s.Get(ctx, "cart")
	if err != nil || !found || v != `[{"id":1,"quantity":2}]` {
		t.Fatalf("Get = %q, %v, %v", v, found, err)
	}
}
