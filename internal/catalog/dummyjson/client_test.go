package dummyjson_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/Gunvolt24/storefront/internal/catalog/dummyjson"
	"github.com/Gunvolt24/storefront/internal/domain"
)

const sample = `{
  "products": [
    {"id": 1, "title": "iPhone 9", "description": "An apple mobile", "price": 549,
     "discountPercentage": 12.96, "rating": 4.69, "stock": 94, "brand": "Apple",
     "category": "smartphones", "thumbnail": "https://cdn.example/1/thumbnail.jpg",
     "images": ["https://cdn.example/1/1.jpg"]},
    {"id": 2, "title": "Tree Oil 30ml", "price": 12, "category": "skincare"}
  ],
  "total": 100, "skip": 0, "limit": 30
}`

func TestFetchProducts_OK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/products" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sample))
	}))
	defer srv.Close()

	got, err := dummyjson.New(srv.URL+"/products", time.Second).FetchProducts(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []domain.Product{
		{
			ID: 1, Title: "iPhone 9", Description: "An apple mobile", Price: 549,
			DiscountPercentage: 12.96, Rating: 4.69, Category: "smartphones",
			Thumbnail: "https://cdn.example/1/thumbnail.jpg",
		},
		{ID: 2, Title: "Tree Oil 30ml", Price: 12, Category: "skincare"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("products mismatch (-want +got):\n%s", diff)
	}
}

func TestFetchProducts_MissingProductsField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"total":0}`))
	}))
	defer srv.Close()

	got, err := dummyjson.New(srv.URL, time.Second).FetchProducts(context.Background())
	if err != nil || got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil list, got %v err=%v", got, err)
	}
}

func TestFetchProducts_Errors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		wantSub string
	}{
		{
			name:    "status_500",
			handler: func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusInternalServerError) },
			wantSub: "unexpected status 500",
		},
		{
			name:    "bad_json",
			handler: func(w http.ResponseWriter, _ *http.Request) { _, _ = w.Write([]byte(`{"products": [`)) },
			wantSub: "decode catalog",
		},
		{
			name: "timeout",
			handler: func(w http.ResponseWriter, r *http.Request) {
				select {
				case <-r.Context().Done():
				case <-time.After(2 * time.Second):
				}
			},
			wantSub: "fetch catalog",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			_, err := dummyjson.New(srv.URL, 100*time.Millisecond).FetchProducts(context.Background())
			if err == nil || !strings.Contains(err.Error(), tt.wantSub) {
				t.Fatalf("want error containing %q, got %v", tt.wantSub, err)
			}
		})
	}
}

func TestFetchProducts_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	if _, err := dummyjson.New(url, time.Second).FetchProducts(context.Background()); err == nil {
		t.Fatalf("expected transport error")
	}
}
