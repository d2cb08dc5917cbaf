package http

import (
	"time"

	"marketplace-bot/internal/notification"
	pkgLog "marketplace-bot/pkg/log"
)

type handler struct {
	l   pkgLog.Logger
	uc  notification.UseCase
	loc *time.Location
}

// New creates the operator HTTP handler for notification settings and webhook management.
// loc is the report timezone used to read request dates.
func New(l pkgLog.Logger, uc notification.UseCase, loc *time.Location) *handler {
	if loc == nil {
		loc = time.UTC
	}
	return &handler{
		l:   l,
		uc:  uc,
		loc: loc,
	}
}
