package http

import (
	"github.com/gin-gonic/gin"

	"marketplace-bot/internal/storefront/router"
	"marketplace-bot/pkg/response"
)

// Classify godoc
// @Summary     Preview bot routing
// @Description Classifies a chat text or callback payload the way the bot would, without sending anything.
// @Tags        Admin
// @Accept      json
// @Produce     json
// @Param       X-Internal-Key header string      true "Operator key"
// @Param       body           body   classifyReq true "Exactly one of text or callback_data"
// @Success     200 {object} classifyResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/admin/storefront/classify [POST]
func (h *handler) Classify(c *gin.Context) {
	ctx := c.Request.Context()

	var req classifyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}
	if err := req.validate(); err != nil {
		response.Error(c, err, nil)
		return
	}

	route, ok := router.Classify(req.toUpdate())
	h.l.Debugf(ctx, "internal.storefront.delivery.http.Classify: %+v -> %s (%t)", req, route.Kind, ok)

	response.OK(c, h.newClassifyResp(route, ok))
}
