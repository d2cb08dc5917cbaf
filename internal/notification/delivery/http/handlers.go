package http

import (
	"github.com/gin-gonic/gin"

	"marketplace-bot/pkg/response"
)

// TestConnection godoc
// @Summary     Send a Telegram test message
// @Description Sends a canned message to the configured chat and reports the outcome.
// @Tags        Admin
// @Produce     json
// @Param       X-Internal-Key header string true "Internal key"
// @Success     200 {object} testResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/admin/notifications/test [POST]
func (h *handler) TestConnection(c *gin.Context) {
	ctx := c.Request.Context()
	response.OK(c, h.newTestResp(h.uc.TestConnection(ctx)))
}

// SendDailyReport godoc
// @Summary     Send the daily deposit report
// @Description Aggregates the deposits of the given day (default yesterday) and sends the report.
// @Tags        Admin
// @Accept      json
// @Produce     json
// @Param       X-Internal-Key header string         true  "Internal key"
// @Param       body           body   dailyReportReq false "Report day"
// @Success     200 {object} deliveryResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/admin/notifications/daily-report [POST]
func (h *handler) SendDailyReport(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processDailyReportReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	res := h.uc.SendDailyReport(ctx, req.toDate(h.loc))
	response.OK(c, h.newDeliveryResp(res))
}

// GetSettings godoc
// @Summary     Get Telegram delivery settings
// @Description Returns the current delivery settings with the bot token masked.
// @Tags        Admin
// @Produce     json
// @Param       X-Internal-Key header string true "Internal key"
// @Success     200 {object} settingsResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/admin/settings/telegram [GET]
func (h *handler) GetSettings(c *gin.Context) {
	ctx := c.Request.Context()

	cfg, err := h.uc.Settings(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Settings: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newSettingsResp(cfg))
}

// UpdateSettings godoc
// @Summary     Update Telegram delivery settings
// @Description Partially updates bot token, chat id and the enabled flag. Takes effect on the next notification.
// @Tags        Admin
// @Accept      json
// @Produce     json
// @Param       X-Internal-Key header string            true "Internal key"
// @Param       body           body   updateSettingsReq true "Fields to update"
// @Success     200 {object} settingsResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/admin/settings/telegram [PUT]
func (h *handler) UpdateSettings(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateSettingsReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	cfg, err := h.uc.UpdateSettings(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.UpdateSettings: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newSettingsResp(cfg))
}

// GetWebhook godoc
// @Summary     Get webhook status
// @Tags        Admin
// @Produce     json
// @Param       X-Internal-Key header string true "Internal key"
// @Success     200 {object} webhookResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/admin/telegram/webhook [GET]
func (h *handler) GetWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	st, err := h.uc.WebhookInfo(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.WebhookInfo: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newWebhookResp(st))
}

// SetWebhook godoc
// @Summary     Register the Telegram webhook
// @Description Switches the bot to push mode for message and callback_query updates.
// @Tags        Admin
// @Accept      json
// @Produce     json
// @Param       X-Internal-Key header string        true "Internal key"
// @Param       body           body   setWebhookReq true "Webhook URL (https)"
// @Success     200 {object} operationResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/admin/telegram/webhook [PUT]
func (h *handler) SetWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSetWebhookReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	response.OK(c, h.newOperationResp(h.uc.SetWebhook(ctx, req.URL)))
}

// DeleteWebhook godoc
// @Summary     Remove the Telegram webhook
// @Description Switches the bot back to pull mode.
// @Tags        Admin
// @Produce     json
// @Param       X-Internal-Key header string true "Internal key"
// @Success     200 {object} operationResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/admin/telegram/webhook [DELETE]
func (h *handler) DeleteWebhook(c *gin.Context) {
	ctx := c.Request.Context()
	response.OK(c, h.newOperationResp(h.uc.DeleteWebhook(ctx)))
}
