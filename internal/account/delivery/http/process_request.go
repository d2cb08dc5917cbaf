package http

import (
	"github.com/gin-gonic/gin"

	"marketplace-bot/internal/account"
)

func (h *handler) processRegisterReq(c *gin.Context) (registerReq, error) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

func (h *handler) processLoginReq(c *gin.Context) (loginReq, error) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

func (h *handler) processLogoutReq(c *gin.Context) (logoutReq, error) {
	var req logoutReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// clientInfo is what the session notifications show as origin.
func clientInfo(c *gin.Context) account.ClientInfo {
	return account.ClientInfo{
		IPAddress: c.ClientIP(),
		Device:    c.Request.UserAgent(),
	}
}
