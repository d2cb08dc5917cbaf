package http

import (
	"errors"
	"net/http"

	"marketplace-bot/internal/account"
	pkgErrors "marketplace-bot/pkg/errors"
)

// mapError translates account errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, account.ErrUsernameTaken):
		return pkgErrors.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, account.ErrInvalidCredentials):
		return pkgErrors.NewHTTPError(http.StatusUnauthorized, err.Error())
	case errors.Is(err, account.ErrSessionNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, account.ErrInvalidPayload):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
