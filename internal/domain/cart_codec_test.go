package domain_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Gunvolt24/storefront/internal/domain"
)

func TestCartCodec_RoundTrip(t *testing.T) {
	t.Parallel()

	orig := domain.NewCart(
		domain.CartLine{Product: domain.Product{
			ID: 1, Title: "Essence Mascara", Thumbnail: "https://cdn/1.png", Price: 9.99,
			Category: "beauty", Description: "mascara", DiscountPercentage: 7.17, Rating: 4.94,
		}, Quantity: 2},
		domain.CartLine{Product: domain.Product{ID: 5, Title: "Red Nail Polish", Price: 8.99}, Quantity: 1},
	)

	raw, err := domain.MarshalCart(orig)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	got, err := domain.UnmarshalCart(raw)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if diff := cmp.Diff(orig.Lines(), got.Lines()); diff != "" {
		t.Fatalf("round-trip mismatch (-want +got):\n%s", diff)
	}
}

func TestMarshalCart_EmptyIsArray(t *testing.T) {
	t.Parallel()

	raw, err := domain.MarshalCart(domain.Cart{})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(raw) != "[]" {
		t.Fatalf("want [], got %s", raw)
	}
}

func TestMarshalCart_FlatLineShape(t *testing.T) {
	t.Parallel()

	raw, err := domain.MarshalCart(domain.NewCart(domain.CartLine{Product: domain.Product{ID: 3, Title: "x", Price: 1}, Quantity: 4}))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `[{"id":3,"title":"x","thumbnail":"","price":1,"category":"","description":"","discountPercentage":0,"rating":0,"quantity":4}]`
	if string(raw) != want {
		t.Fatalf("unexpected json:\nwant %s\ngot  %s", want, raw)
	}
}

func TestUnmarshalCart_EmptyInputs(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"", "  ", "null", "[]"} {
		c, err := domain.UnmarshalCart([]byte(in))
		if err != nil {
			t.Fatalf("input %q: unexpected error %v", in, err)
		}
		if !c.IsEmpty() {
			t.Fatalf("input %q: want empty cart", in)
		}
	}
}

func TestUnmarshalCart_Malformed(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"{", "{}", `"cart"`, `[{"id":"x"}]`, "42"} {
		c, err := domain.UnmarshalCart([]byte(in))
		if err == nil {
			t.Fatalf("input %q: want error", in)
		}
		if !c.IsEmpty() {
			t.Fatalf("input %q: want empty cart on error", in)
		}
	}
}

func TestUnmarshalCart_IgnoresUnknownFields(t *testing.T) {
	t.Parallel()

	raw := `[{"id":1,"title":"Mascara","price":9.99,"stock":5,"tags":["beauty"],"quantity":2}]`
	c, err := domain.UnmarshalCart([]byte(raw))
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	got, ok := c.Line(1)
	if !ok || got.Quantity != 2 || got.Title != "Mascara" {
		t.Fatalf("unexpected line: %+v ok=%v", got, ok)
	}
}
