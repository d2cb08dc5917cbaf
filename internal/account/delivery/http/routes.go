package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps the auth endpoints.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	auth := rg.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.POST("/logout", h.Logout)
	}
}
