package http

import (
	"github.com/gin-gonic/gin"

	"marketplace-bot/internal/middleware"
)

// RegisterRoutes mounts the customer routes. Back-office transitions require the operator key.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	orders := rg.Group("/orders")
	{
		orders.POST("", h.Place)
		orders.GET("", h.List)
		orders.GET("/:id", h.Detail)
		orders.POST("/:id/complete", mw.InternalAuth(), h.Complete)
		orders.POST("/:id/refund", mw.InternalAuth(), h.Refund)
	}
}
