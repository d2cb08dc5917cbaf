package http

import (
	"github.com/gin-gonic/gin"

	"marketplace-bot/internal/wallet"
	"marketplace-bot/pkg/response"
)

// Create godoc
// @Summary     Create a deposit
// @Description Opens a pending crypto deposit with a fresh address and notifies the operator chat.
// @Tags        Deposits
// @Accept      json
// @Produce     json
// @Param       body body createDepositReq true "Deposit request"
// @Success     200 {object} depositResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Unknown user"
// @Router      /api/v1/deposits [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	d, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newDepositResp(d))
}

// List godoc
// @Summary     List deposits
// @Tags        Deposits
// @Produce     json
// @Param       user_id query string false "Filter by owner"
// @Param       status  query string false "Filter by status"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/deposits [GET]
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
// @Summary     Get a deposit
// @Tags        Deposits
// @Produce     json
// @Param       id path string true "Deposit ID"
// @Success     200 {object} depositResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/deposits/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	d, err := h.uc.Detail(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}
	response.OK(c, h.newDepositResp(d))
}

// Submit godoc
// @Summary     Mark a deposit as paid by the user
// @Tags        Deposits
// @Accept      json
// @Produce     json
// @Param       id   path string    true  "Deposit ID"
// @Param       body body txHashReq false "Optional transaction hash"
// @Success     200 {object} depositResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Deposit is not pending"
// @Router      /api/v1/deposits/{id}/submit [POST]
func (h *handler) Submit(c *gin.Context) {
	ctx := c.Request.Context()

	var req txHashReq
	if err := bindOptional(c, &req); err != nil {
		response.Error(c, err, nil)
		return
	}

	d, err := h.uc.Submit(ctx, wallet.SubmitInput{ID: c.Param("id"), TxHash: req.TxHash})
	if err != nil {
		h.l.Warnf(ctx, "uc.Submit: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newDepositResp(d))
}

// Confirm godoc
// @Summary     Confirm a deposit
// @Description Settles the deposit, credits the USD balance and notifies the operator chat.
// @Tags        Deposits
// @Accept      json
// @Produce     json
// @Param       X-Internal-Key header string true "Operator key"
// @Param       id   path string    true "Deposit ID"
// @Param       body body txHashReq true "Transaction hash"
// @Success     200 {object} depositResp
// @Failure     400 {object} response.Resp "Missing transaction hash"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Deposit already closed"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/deposits/{id}/confirm [POST]
func (h *handler) Confirm(c *gin.Context) {
	ctx := c.Request.Context()

	var req txHashReq
	if err := bindOptional(c, &req); err != nil {
		response.Error(c, err, nil)
		return
	}

	d, err := h.uc.Confirm(ctx, wallet.ConfirmInput{ID: c.Param("id"), TxHash: req.TxHash})
	if err != nil {
		h.l.Warnf(ctx, "uc.Confirm: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newDepositResp(d))
}

// Fail godoc
// @Summary     Fail a deposit
// @Tags        Deposits
// @Accept      json
// @Produce     json
// @Param       X-Internal-Key header string true "Operator key"
// @Param       id   path string  true  "Deposit ID"
// @Param       body body failReq false "Failure reason"
// @Success     200 {object} depositResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Deposit already closed"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/deposits/{id}/fail [POST]
func (h *handler) Fail(c *gin.Context) {
	ctx := c.Request.Context()

	var req failReq
	if err := bindOptional(c, &req); err != nil {
		response.Error(c, err, nil)
		return
	}

	d, err := h.uc.Fail(ctx, wallet.FailInput{ID: c.Param("id"), Reason: req.Reason})
	if err != nil {
		h.l.Warnf(ctx, "uc.Fail: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newDepositResp(d))
}

// Expire godoc
// @Summary     Expire a pending deposit
// @Tags        Deposits
// @Produce     json
// @Param       X-Internal-Key header string true "Operator key"
// @Param       id path string true "Deposit ID"
// @Success     200 {object} depositResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Deposit is not pending"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/deposits/{id}/expire [POST]
func (h *handler) Expire(c *gin.Context) {
	ctx := c.Request.Context()

	d, err := h.uc.Expire(ctx, c.Param("id"))
	if err != nil {
		h.l.Warnf(ctx, "uc.Expire: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newDepositResp(d))
}

// Balance godoc
// @Summary     Get a user's USD balance
// @Tags        Deposits
// @Produce     json
// @Param       user_id path string true "User ID"
// @Success     200 {object} balanceResp
// @Router      /api/v1/wallets/{user_id}/balance [GET]
func (h *handler) Balance(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.Balance(ctx, c.Param("user_id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.Balance: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newBalanceResp(out))
}
