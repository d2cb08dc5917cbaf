package memory

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"marketplace-bot/internal/model"
	"marketplace-bot/internal/storefront"
)

// Catalog is a fixed, ordered product list.
type Catalog struct {
	mu       sync.RWMutex
	products []model.Product
}

var _ storefront.ProductCatalog = (*Catalog)(nil)

func NewCatalog(products []model.Product) *Catalog {
	return &Catalog{products: append([]model.Product(nil), products...)}
}

// Page returns page (zero-based) of the given size. A page past the end is empty
// but still reports TotalPages.
func (c *Catalog) Page(ctx context.Context, page, size int) (storefront.ProductPage, error) {
	if err := ctx.Err(); err != nil {
		return storefront.ProductPage{}, err
	}
	if size <= 0 {
		size = 1
	}
	if page < 0 {
		page = 0
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	out := storefront.ProductPage{
		Page:       page,
		TotalPages: (len(c.products) + size - 1) / size,
	}
	start := page * size
	if start >= len(c.products) {
		return out, nil
	}
	end := min(start+size, len(c.products))
	out.Products = append([]model.Product(nil), c.products[start:end]...)
	return out, nil
}

func (c *Catalog) GetProduct(ctx context.Context, id string) (model.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if i := c.index(id); i >= 0 {
		return c.products[i], nil
	}
	return model.Product{}, storefront.ErrProductNotFound
}

// Reserve takes one unit of stock and returns the product as it was priced.
func (c *Catalog) Reserve(ctx context.Context, id string) (model.Product, error) {
	if err := ctx.Err(); err != nil {
		return model.Product{}, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.index(id)
	if i < 0 {
		return model.Product{}, storefront.ErrProductNotFound
	}
	if c.products[i].Stock <= 0 {
		return model.Product{}, storefront.ErrOutOfStock
	}
	c.products[i].Stock--
	return c.products[i], nil
}

// Release puts one unit back, e.g. after a refund.
func (c *Catalog) Release(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.index(id)
	if i < 0 {
		return storefront.ErrProductNotFound
	}
	c.products[i].Stock++
	return nil
}

func (c *Catalog) index(id string) int {
	for i, p := range c.products {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// DefaultProducts is the demo catalog the service starts with.
func DefaultProducts() []model.Product {
	return []model.Product{
		{ID: "prd-steam-50", Name: "Steam Gift Card $50", Description: "Digital code, delivered instantly.", Category: "Gift Cards", Seller: "CardHub", Price: decimal.RequireFromString("47.99"), Stock: 25},
		{ID: "prd-vpn-12m", Name: "VPN Premium 12 months", Description: "Unlimited bandwidth, 60+ locations.", Category: "Software", Seller: "SecureNet", Price: decimal.RequireFromString("39.00"), Stock: 100},
		{ID: "prd-office", Name: "Office Suite License", Description: "Lifetime license for one PC.", Category: "Software", Seller: "KeyStore", Price: decimal.RequireFromString("24.50"), Stock: 12},
		{ID: "prd-netflix-3m", Name: "Streaming Subscription 3 months", Description: "Standard plan, shared profile.", Category: "Subscriptions", Seller: "StreamDeals", Price: decimal.RequireFromString("19.99"), Stock: 40},
		{ID: "prd-game-key", Name: "Indie Game Bundle", Description: "Five games, region free.", Category: "Games", Seller: "PixelShop", Price: decimal.RequireFromString("9.99"), Stock: 0},
	}
}
