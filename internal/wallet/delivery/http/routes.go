package http

import (
	"github.com/gin-gonic/gin"

	"marketplace-bot/internal/middleware"
)

// RegisterRoutes mounts the customer routes. Back-office transitions require the operator key.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	deposits := rg.Group("/deposits")
	{
		deposits.POST("", h.Create)
		deposits.GET("", h.List)
		deposits.GET("/:id", h.Detail)
		deposits.POST("/:id/submit", h.Submit)
		deposits.POST("/:id/confirm", mw.InternalAuth(), h.Confirm)
		deposits.POST("/:id/fail", mw.InternalAuth(), h.Fail)
		deposits.POST("/:id/expire", mw.InternalAuth(), h.Expire)
	}

	rg.GET("/wallets/:user_id/balance", h.Balance)
}
