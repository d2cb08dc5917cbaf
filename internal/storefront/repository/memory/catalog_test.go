package memory

import (
	"context"
	"errors"
	"testing"

	"marketplace-bot/internal/storefront"
)

func TestCatalogPage(t *testing.T) {
	c := NewCatalog(DefaultProducts())
	ctx := context.Background()

	tests := []struct {
		page, size   int
		wantTotal    int
		wantProducts int
	}{
		{0, 1, 5, 1},
		{4, 1, 5, 1},
		{5, 1, 5, 0},
		{0, 2, 3, 2},
		{2, 2, 3, 1},
		{0, 0, 5, 1},
		{-1, 1, 5, 1},
	}
	for _, tt := range tests {
		got, err := c.Page(ctx, tt.page, tt.size)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.TotalPages != tt.wantTotal || len(got.Products) != tt.wantProducts {
			t.Errorf("Page(%d, %d) = %d products / %d pages, want %d / %d",
				tt.page, tt.size, len(got.Products), got.TotalPages, tt.wantProducts, tt.wantTotal)
		}
	}

	empty, _ := NewCatalog(nil).Page(ctx, 0, 1)
	if empty.TotalPages != 0 || len(empty.Products) != 0 {
		t.Errorf("expected empty catalog, got %+v", empty)
	}
}

func TestCatalogGetProduct(t *testing.T) {
	c := NewCatalog(DefaultProducts())
	p, err := c.GetProduct(context.Background(), "prd-office")
	if err != nil || p.Name != "Office Suite License" {
		t.Errorf("unexpected product: %+v, %v", p, err)
	}
	if _, err := c.GetProduct(context.Background(), "nope"); !errors.Is(err, storefront.ErrProductNotFound) {
		t.Errorf("expected ErrProductNotFound, got %v", err)
	}
}

func TestCatalogReserveRelease(t *testing.T) {
	ctx := context.Background()
	c := NewCatalog(DefaultProducts())

	p, err := c.Reserve(ctx, "prd-office")
	if err != nil || p.Stock != 11 {
		t.Fatalf("unexpected reserve result: %+v, %v", p, err)
	}
	if _, err := c.Reserve(ctx, "prd-game-key"); !errors.Is(err, storefront.ErrOutOfStock) {
		t.Errorf("expected ErrOutOfStock, got %v", err)
	}
	if _, err := c.Reserve(ctx, "nope"); !errors.Is(err, storefront.ErrProductNotFound) {
		t.Errorf("expected ErrProductNotFound, got %v", err)
	}

	if err := c.Release(ctx, "prd-office"); err != nil {
		t.Fatalf("unexpected release error: %v", err)
	}
	if p, _ := c.GetProduct(ctx, "prd-office"); p.Stock != 12 {
		t.Errorf("expected stock back to 12, got %d", p.Stock)
	}
}
