package http

import (
	"github.com/gin-gonic/gin"

	"marketplace-bot/internal/middleware"
)

// RegisterRoutes mounts the operator endpoints. Every route requires the internal key.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	admin := rg.Group("", mw.InternalAuth())

	notifications := admin.Group("/notifications")
	{
		notifications.POST("/test", h.TestConnection)
		notifications.POST("/daily-report", h.SendDailyReport)
	}

	admin.GET("/settings/telegram", h.GetSettings)
	admin.PUT("/settings/telegram", h.UpdateSettings)

	webhook := admin.Group("/telegram/webhook")
	{
		webhook.GET("", h.GetWebhook)
		webhook.PUT("", h.SetWebhook)
		webhook.DELETE("", h.DeleteWebhook)
	}
}
