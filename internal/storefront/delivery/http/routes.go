package http

import (
	"github.com/gin-gonic/gin"

	"marketplace-bot/internal/middleware"
)

func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/storefront/classify", mw.InternalAuth(), h.Classify)
}
