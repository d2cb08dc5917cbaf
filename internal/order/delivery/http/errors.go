package http

import (
	"errors"
	"net/http"

	"marketplace-bot/internal/order"
	pkgErrors "marketplace-bot/pkg/errors"
)

var errInvalidStatus = pkgErrors.NewHTTPError(http.StatusBadRequest, "status must be one of new, completed, refunded")

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, order.ErrOrderNotFound),
		errors.Is(err, order.ErrProductNotFound),
		errors.Is(err, order.ErrCustomerNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, order.ErrOutOfStock),
		errors.Is(err, order.ErrInvalidTransition):
		return pkgErrors.NewHTTPError(http.StatusConflict, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
