package http

import "github.com/gin-gonic/gin"

func (h *handler) processPlaceReq(c *gin.Context) (placeReq, error) {
	var req placeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
