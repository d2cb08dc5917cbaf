package http

import (
	"errors"
	"net/http"

	"marketplace-bot/internal/wallet"
	pkgErrors "marketplace-bot/pkg/errors"
)

var errInvalidStatus = pkgErrors.NewHTTPError(http.StatusBadRequest, "unknown deposit status")

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, wallet.ErrDepositNotFound),
		errors.Is(err, wallet.ErrCustomerNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, wallet.ErrUnsupportedCoin),
		errors.Is(err, wallet.ErrInvalidAmount),
		errors.Is(err, wallet.ErrTxHashRequired):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, wallet.ErrInvalidTransition):
		return pkgErrors.NewHTTPError(http.StatusConflict, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
