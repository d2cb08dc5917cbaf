package telegram

import (
	"time"

	"marketplace-bot/internal/storefront"
	pkgLog "marketplace-bot/pkg/log"
)

const defaultProcessTimeout = 30 * time.Second

type handler struct {
	l              pkgLog.Logger
	router         storefront.Router
	security       *securityValidator
	processTimeout time.Duration
}

// New creates the inbound webhook handler.
func New(l pkgLog.Logger, router storefront.Router, cfg SecurityConfig) *handler {
	return &handler{
		l:              l,
		router:         router,
		security:       newSecurityValidator(cfg),
		processTimeout: defaultProcessTimeout,
	}
}
