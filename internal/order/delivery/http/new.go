package http

import (
	"marketplace-bot/internal/order"
	pkgLog "marketplace-bot/pkg/log"
)

type handler struct {
	l  pkgLog.Logger
	uc order.UseCase
}

func New(l pkgLog.Logger, uc order.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
