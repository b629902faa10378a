package http

import (
	"monitor-srv/internal/model"
	"monitor-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Retry - Re-drive failed ingest batches
// @Summary Retry failed batches
// @Description Re-drive unresolved DLQ rows through the ingest pipeline
// @Tags Ingest
// @Produce json
// @Param limit query int false "Max rows to retry (default 50)"
// @Success 200 {object} retryResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/ingest/retry [post]
func (h *handler) Retry(c *gin.Context) {
	ctx := c.Request.Context()

	// 1. Process request
	req, err := h.processRetryRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "ingest.delivery.http.Retry: processRetryRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	// 2. Call UseCase. Internal calls carry no user scope.
	out, err := h.uc.RetryFailed(ctx, model.Scope{}, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "ingest.delivery.http.Retry: usecase RetryFailed failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	// 3. Return response
	response.OK(c, newRetryResp(out))
}
