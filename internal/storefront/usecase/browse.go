package usecase

import (
	"context"
	"fmt"
	"html"
	"strings"

	"marketplace-bot/internal/model"
	"marketplace-bot/internal/storefront"
)

const (
	msgCatalogUnavailable = "⚠️ The catalog is unavailable right now. Please try again later."
	msgCatalogEmpty       = "🛍️ No products are available right now. Check back soon!"
)

// Browse shows one catalog page of up to PageSize products. Callback routes
// carry the page on screen and next/prev wrap around the ends of the catalog.
func (uc *implUseCase) Browse(ctx context.Context, req storefront.Request) error {
	first, err := uc.catalog.Page(ctx, 0, uc.opts.PageSize)
	if err != nil {
		uc.l.Errorf(ctx, "internal.storefront.usecase.Browse.Page: %v", err)
		return uc.reply(ctx, req.ChatID, msgCatalogUnavailable, nil)
	}
	if first.TotalPages == 0 {
		return uc.reply(ctx, req.ChatID, msgCatalogEmpty, nil)
	}

	page := targetPage(req.Route, first.TotalPages)
	result := first
	if page != 0 {
		if result, err = uc.catalog.Page(ctx, page, uc.opts.PageSize); err != nil {
			uc.l.Errorf(ctx, "internal.storefront.usecase.Browse.Page: %v", err)
			return uc.reply(ctx, req.ChatID, msgCatalogUnavailable, nil)
		}
	}
	if len(result.Products) == 0 {
		return uc.reply(ctx, req.ChatID, msgCatalogEmpty, nil)
	}

	var b strings.Builder
	for _, p := range result.Products {
		writeProduct(&b, p)
	}
	fmt.Fprintf(&b, "Page %d of %d", result.Page+1, result.TotalPages)

	return uc.reply(ctx, req.ChatID, b.String(), uc.productKeyboard(result.Products, result.Page, req.SenderID))
}

func writeProduct(b *strings.Builder, p model.Product) {
	fmt.Fprintf(b, "🛍️ <b>%s</b>\n\n", html.EscapeString(p.Name))
	if p.Description != "" {
		fmt.Fprintf(b, "%s\n\n", html.EscapeString(p.Description))
	}
	fmt.Fprintf(b, "💵 <b>Price:</b> $%s\n", p.Price.StringFixed(2))
	if p.Category != "" {
		fmt.Fprintf(b, "🏷️ <b>Category:</b> %s\n", html.EscapeString(p.Category))
	}
	if p.Seller != "" {
		fmt.Fprintf(b, "🏪 <b>Seller:</b> %s\n", html.EscapeString(p.Seller))
	}
	fmt.Fprintf(b, "📦 <b>In stock:</b> %d\n\n", p.Stock)
}

func targetPage(route storefront.Route, total int) int {
	page := route.Page
	switch route.Kind {
	case storefront.KindBrowseNext:
		page++
	case storefront.KindBrowsePrev:
		page--
	default:
		page = 0
	}
	return ((page % total) + total) % total
}
