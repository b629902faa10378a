package http

import (
	"github.com/gin-gonic/gin"
)

func (h *handler) processRetryRequest(c *gin.Context) (retryReq, error) {
	ctx := c.Request.Context()

	var req retryReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Errorf(ctx, "ingest.delivery.http.processRetryRequest: ShouldBindQuery failed: %v", err)
		return retryReq{}, errInvalidLimit
	}

	if req.Limit < 0 {
		return retryReq{}, errInvalidLimit
	}

	return req, nil
}
