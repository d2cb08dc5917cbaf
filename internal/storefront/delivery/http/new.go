package http

import (
	pkgLog "marketplace-bot/pkg/log"
)

type handler struct {
	l pkgLog.Logger
}

// New creates the operator handler that previews how the bot would route an input.
func New(l pkgLog.Logger) *handler {
	return &handler{l: l}
}
