package http

import (
	"github.com/gin-gonic/gin"

	"marketplace-bot/pkg/response"
)

// Place godoc
// @Summary     Place an order
// @Description Reserves one unit of the product and notifies the operator chat.
// @Tags        Orders
// @Accept      json
// @Produce     json
// @Param       body body placeReq true "Buyer and product"
// @Success     200 {object} orderResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Unknown user or product"
// @Failure     409 {object} response.Resp "Out of stock"
// @Router      /api/v1/orders [POST]
func (h *handler) Place(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processPlaceReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	o, err := h.uc.Place(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Place: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newOrderResp(o))
}

// List godoc
// @Summary     List orders
// @Tags        Orders
// @Produce     json
// @Param       user_id query string false "Filter by buyer"
// @Param       status  query string false "Filter by status (new, completed, refunded)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/orders [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListResp(out))
}

// Detail godoc
// @Summary     Get an order
// @Tags        Orders
// @Produce     json
// @Param       id path string true "Order ID"
// @Success     200 {object} orderResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/orders/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	o, err := h.uc.Detail(ctx, c.Param("id"))
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newOrderResp(o))
}

// Complete godoc
// @Summary     Complete an order
// @Description Marks a new order as delivered and notifies the operator chat.
// @Tags        Orders
// @Produce     json
// @Param       X-Internal-Key header string true "Operator key"
// @Param       id path string true "Order ID"
// @Success     200 {object} orderResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Order is not new"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/orders/{id}/complete [POST]
func (h *handler) Complete(c *gin.Context) {
	ctx := c.Request.Context()

	o, err := h.uc.Complete(ctx, c.Param("id"))
	if err != nil {
		h.l.Warnf(ctx, "uc.Complete: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newOrderResp(o))
}

// Refund godoc
// @Summary     Refund an order
// @Description Refunds a new or completed order, restocks the product and notifies the operator chat.
// @Tags        Orders
// @Produce     json
// @Param       X-Internal-Key header string true "Operator key"
// @Param       id path string true "Order ID"
// @Success     200 {object} orderResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Already refunded"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/orders/{id}/refund [POST]
func (h *handler) Refund(c *gin.Context) {
	ctx := c.Request.Context()

	o, err := h.uc.Refund(ctx, c.Param("id"))
	if err != nil {
		h.l.Warnf(ctx, "uc.Refund: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newOrderResp(o))
}
