package http

import (
	"marketplace-bot/internal/account"
	pkgLog "marketplace-bot/pkg/log"
)

type handler struct {
	l  pkgLog.Logger
	uc account.UseCase
}

// New creates the HTTP handler for the mock account flows.
func New(l pkgLog.Logger, uc account.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
