package router

import (
	"marketplace-bot/internal/storefront"
	pkgLog "marketplace-bot/pkg/log"
)

// CommandRouter maps updates to handlers without any I/O of its own besides the
// callback acknowledgement.
type CommandRouter struct {
	l        pkgLog.Logger
	registry storefront.Registry
	ack      storefront.Acknowledger
}

var _ storefront.Router = (*CommandRouter)(nil)

// New creates a CommandRouter. ack may be nil when callbacks need no acknowledgement.
func New(l pkgLog.Logger, registry storefront.Registry, ack storefront.Acknowledger) *CommandRouter {
	return &CommandRouter{
		l:        l,
		registry: registry,
		ack:      ack,
	}
}
