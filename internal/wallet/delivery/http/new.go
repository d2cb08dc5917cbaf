package http

import (
	"marketplace-bot/internal/wallet"
	pkgLog "marketplace-bot/pkg/log"
)

type handler struct {
	l  pkgLog.Logger
	uc wallet.UseCase
}

func New(l pkgLog.Logger, uc wallet.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
