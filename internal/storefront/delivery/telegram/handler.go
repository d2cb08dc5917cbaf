package telegram

import (
	"context"

	"github.com/gin-gonic/gin"

	"marketplace-bot/internal/storefront"
	pkgLog "marketplace-bot/pkg/log"
	pkgResponse "marketplace-bot/pkg/response"
	pkgTelegram "marketplace-bot/pkg/telegram"
)

// HandleWebhook godoc
// @Summary     Telegram webhook
// @Description Receives message and callback_query updates. Answers 200 at once and handles the update in the background.
// @Tags        Telegram
// @Accept      json
// @Produce     json
// @Param       X-Telegram-Bot-Api-Secret-Token header string false "Webhook secret token"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /webhook/telegram [POST]
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.security.validateSecret(c.GetHeader(HeaderSecretToken)); err != nil {
		h.l.Warnf(ctx, "internal.storefront.delivery.telegram.HandleWebhook: %v from %s", err, c.ClientIP())
		pkgResponse.Unauthorized(c)
		return
	}

	var raw pkgTelegram.Update
	if err := c.ShouldBindJSON(&raw); err != nil {
		h.l.Errorf(ctx, "internal.storefront.delivery.telegram.HandleWebhook: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	update, ok := storefront.NewUpdate(raw)
	if !ok {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	// Telegram redelivers on non-2xx, so throttled updates are acknowledged and dropped.
	if err := h.security.allow(chatOf(update)); err != nil {
		h.l.Warnf(ctx, "internal.storefront.delivery.telegram.HandleWebhook: chat %d: %v", chatOf(update), err)
		pkgResponse.OK(c, map[string]string{"status": "throttled"})
		return
	}

	requestID := pkgLog.RequestIDFromContext(ctx)
	go func() {
		bgCtx, cancel := context.WithTimeout(pkgLog.WithRequestID(context.Background(), requestID), h.processTimeout)
		defer cancel()
		if err := h.router.Dispatch(bgCtx, update); err != nil {
			h.l.Errorf(bgCtx, "internal.storefront.delivery.telegram.HandleWebhook: update %d: %v", raw.UpdateID, err)
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

func chatOf(u storefront.Update) int64 {
	switch v := u.(type) {
	case storefront.TextMessage:
		return v.ChatID
	case storefront.CallbackQuery:
		return v.ChatID
	}
	return 0
}
