package http

import (
	"github.com/gin-gonic/gin"

	"marketplace-bot/internal/account"
	"marketplace-bot/pkg/response"
)

// Register godoc
// @Summary     Register an account
// @Description Creates an account, optionally linked to a Telegram chat, and opens a session.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body registerReq true "Account data"
// @Success     200 {object} authResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     409 {object} response.Resp "Conflict - username taken"
// @Router      /api/v1/auth/register [POST]
func (h *handler) Register(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRegisterReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Register(ctx, req.toInput(clientInfo(c)))
	if err != nil {
		h.l.Warnf(ctx, "uc.Register: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newAuthResp(out))
}

// Login godoc
// @Summary     Log in
// @Description Opens a session. Passing telegram_id links the chat for notifications.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body loginReq true "Credentials"
// @Success     200 {object} authResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Invalid credentials"
// @Router      /api/v1/auth/login [POST]
func (h *handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processLoginReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Login(ctx, req.toInput(clientInfo(c)))
	if err != nil {
		h.l.Warnf(ctx, "uc.Login: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newAuthResp(out))
}

// Logout godoc
// @Summary     Log out
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body logoutReq true "Session token"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Session not found"
// @Router      /api/v1/auth/logout [POST]
func (h *handler) Logout(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processLogoutReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.Logout(ctx, account.LogoutInput{Token: req.Token, Client: clientInfo(c)}); err != nil {
		h.l.Warnf(ctx, "uc.Logout: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}
