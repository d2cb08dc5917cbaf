package http

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"
)

// processDailyReportReq binds the optional report date. An empty body is allowed.
func (h *handler) processDailyReportReq(c *gin.Context) (dailyReportReq, error) {
	var req dailyReportReq
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		return req, err
	}
	return req, req.validate()
}

func (h *handler) processUpdateSettingsReq(c *gin.Context) (updateSettingsReq, error) {
	var req updateSettingsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

func (h *handler) processSetWebhookReq(c *gin.Context) (setWebhookReq, error) {
	var req setWebhookReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
