package telegram

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the webhook endpoint. Telegram authenticates with the
// secret token header, so no other middleware applies.
func RegisterRoutes(r gin.IRouter, h *handler) {
	r.POST("/webhook/telegram", h.HandleWebhook)
}
