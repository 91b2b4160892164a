package usecase_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"

	"github.com/Gunvolt24/storefront/internal/domain"
	"github.com/Gunvolt24/storefront/internal/ports/mocks"
	"github.com/Gunvolt24/storefront/internal/usecase"
)

func TestCatalogLoad_FetchesOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mocks.NewMockCatalogSource(ctrl)
	source.EXPECT().FetchProducts(gomock.Any()).Return([]domain.Product{phone, laptop, oil}, nil).Times(1)

	svc := usecase.NewCatalogService(source, nil, noopLogger{})

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			svc.Load(context.Background())
		}()
	}
	wg.Wait()
	<-svc.Done()

	if !svc.Loaded() || len(svc.Products()) != 3 {
		t.Fatalf("expected loaded catalog with 3 products, loaded=%v n=%d", svc.Loaded(), len(svc.Products()))
	}
	if diff := cmp.Diff([]string{"smartphones", "laptops", "skincare"}, svc.Categories()); diff != "" {
		t.Fatalf("categories mismatch (-want +got):\n%s", diff)
	}
	if p, ok := svc.Product(2); !ok || p.Title != "MacBook Pro" {
		t.Fatalf("Product(2) = %+v, %v", p, ok)
	}
	if _, ok := svc.Product(99); ok {
		t.Fatalf("Product(99) must be absent")
	}
}

func TestCatalogLoad_FailureLeavesEmptyList(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mocks.NewMockCatalogSource(ctrl)
	source.EXPECT().FetchProducts(gomock.Any()).Return(nil, errors.New("connection refused")).Times(1)

	svc := usecase.NewCatalogService(source, nil, noopLogger{})
	svc.Load(context.Background())
	svc.Load(context.Background()) // без повторной попытки

	if svc.Loaded() || len(svc.Products()) != 0 || len(svc.Categories()) != 0 {
		t.Fatalf("catalog must stay empty after failed fetch")
	}
	if got := svc.Query(context.Background(), domain.ProductQuery{Search: "phone"}); len(got) != 0 {
		t.Fatalf("query over empty catalog must be empty, got %+v", got)
	}
}

func TestCatalogQuery_UsesCacheAfterLoad(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mocks.NewMockCatalogSource(ctrl)
	cache := mocks.NewMockQueryCache(ctrl)

	source.EXPECT().FetchProducts(gomock.Any()).Return([]domain.Product{phone, laptop, oil}, nil)

	q := domain.ProductQuery{Search: "  PRO ", Sort: domain.SortPriceDesc}
	want := []domain.Product{laptop}

	gomock.InOrder(
		cache.EXPECT().Get(gomock.Any(), q.Key()).Return(nil, false),
		cache.EXPECT().Set(gomock.Any(), q.Key(), want).Return(nil),
		cache.EXPECT().Get(gomock.Any(), q.Key()).Return(want, true),
	)

	svc := usecase.NewCatalogService(source, cache, noopLogger{})
	svc.Load(context.Background())

	for i := 0; i < 2; i++ {
		if diff := cmp.Diff(want, svc.Query(context.Background(), q)); diff != "" {
			t.Fatalf("query #%d mismatch (-want +got):\n%s", i, diff)
		}
	}
}

func TestCatalogQuery_ZeroQuery_BypassesCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mocks.NewMockCatalogSource(ctrl)
	cache := mocks.NewMockQueryCache(ctrl) // обращений быть не должно

	source.EXPECT().FetchProducts(gomock.Any()).Return([]domain.Product{phone, laptop}, nil)

	svc := usecase.NewCatalogService(source, cache, noopLogger{})
	svc.Load(context.Background())

	if diff := cmp.Diff([]domain.Product{phone, laptop}, svc.Query(context.Background(), domain.ProductQuery{})); diff != "" {
		t.Fatalf("zero query mismatch (-want +got):\n%s", diff)
	}
}

func TestCatalogQuery_CacheSetError_StillReturnsResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mocks.NewMockCatalogSource(ctrl)
	cache := mocks.NewMockQueryCache(ctrl)

	source.EXPECT().FetchProducts(gomock.Any()).Return([]domain.Product{phone, laptop, oil}, nil)
	cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, false)
	cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("full"))

	svc := usecase.NewCatalogService(source, cache, noopLogger{})
	svc.Load(context.Background())

	got := svc.Query(context.Background(), domain.ProductQuery{Category: "skincare"})
	if len(got) != 1 || got[0].ID != oil.ID {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestCatalogProducts_ReturnsCopy(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mocks.NewMockCatalogSource(ctrl)
	source.EXPECT().FetchProducts(gomock.Any()).Return([]domain.Product{phone}, nil)

	svc := usecase.NewCatalogService(source, nil, noopLogger{})
	svc.Load(context.Background())

	list := svc.Products()
	list[0].Title = "changed"
	if p, _ := svc.Product(phone.ID); p.Title != phone.Title {
		t.Fatalf("Products must return a copy")
	}
}
