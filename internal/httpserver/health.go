package httpserver

import (
	"github.com/gin-gonic/gin"

	"marketplace-bot/pkg/response"
)

const (
	HealthMessage = "Marketplace bot API"
	HealthVersion = "1.0.0"
	ServiceName   = "marketplace-bot"
)

func probe(status string) gin.H {
	return gin.H{
		"status":  status,
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	}
}

// healthCheck godoc
// @Summary Health Check
// @Tags    Health
// @Produce json
// @Success 200 {object} response.Resp
// @Router  /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, probe("healthy"))
}

// readyCheck reports whether inbound Telegram updates are accepted on this instance.
// @Summary Readiness Check
// @Tags    Health
// @Produce json
// @Success 200 {object} response.Resp
// @Router  /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	body := probe("ready")
	body["webhook_route"] = srv.storefrontRouter != nil
	body["admin_enabled"] = srv.internalKey != ""
	response.OK(c, body)
}

// @Summary Liveness Check
// @Tags    Health
// @Produce json
// @Success 200 {object} response.Resp
// @Router  /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, probe("alive"))
}
