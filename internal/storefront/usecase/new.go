package usecase

import (
	"strings"

	"marketplace-bot/internal/storefront"
	pkgLog "marketplace-bot/pkg/log"
)

const DefaultPageSize = 1

// Options configures the storefront handlers.
type Options struct {
	// SiteURL is the public web shop used for deep links, without a trailing slash.
	SiteURL  string
	PageSize int
}

type implUseCase struct {
	l         pkgLog.Logger
	messenger storefront.Messenger
	users     storefront.UserStore
	orders    storefront.OrderStore
	balances  storefront.BalanceStore
	catalog   storefront.ProductCatalog
	opts      Options
}

var _ storefront.UseCase = (*implUseCase)(nil)

// New creates the storefront command handlers.
func New(
	l pkgLog.Logger,
	messenger storefront.Messenger,
	users storefront.UserStore,
	orders storefront.OrderStore,
	balances storefront.BalanceStore,
	catalog storefront.ProductCatalog,
	opts Options,
) *implUseCase {
	opts.SiteURL = strings.TrimRight(opts.SiteURL, "/")
	if opts.PageSize <= 0 {
		opts.PageSize = DefaultPageSize
	}
	return &implUseCase{
		l:         l,
		messenger: messenger,
		users:     users,
		orders:    orders,
		balances:  balances,
		catalog:   catalog,
		opts:      opts,
	}
}
