package http

import (
	"errors"
	"net/http"

	"marketplace-bot/internal/notification"
	pkgErrors "marketplace-bot/pkg/errors"
)

var errInvalidDate = pkgErrors.NewHTTPError(http.StatusBadRequest, "date must be formatted as YYYY-MM-DD")

// mapError translates notification errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, notification.ErrDeliveryNotConfigured):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, notification.ErrBotTokenMissing):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, notification.ErrInvalidWebhookURL):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
