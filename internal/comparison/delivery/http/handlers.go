package http

import (
	"monitor-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Compare - Compare two entities side by side
// @Summary Compare two entities
// @Description Fetch both entities' sentiment snapshots and return aspect deltas, volume breakdown and the winner
// @Tags Comparison
// @Produce json
// @Param entity_a query string true "First entity ID"
// @Param entity_b query string true "Second entity ID"
// @Param refresh query bool false "Bypass the snapshot cache on both sides"
// @Success 200 {object} comparisonResp
// @Failure 400 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/comparison [get]
func (h *handler) Compare(c *gin.Context) {
	ctx := c.Request.Context()

	// 1. Process request
	req, sc, err := h.processCompareRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "comparison.delivery.http.Compare: processCompareRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	// 2. Call UseCase
	output, err := h.uc.Compare(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "comparison.delivery.http.Compare: usecase Compare failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	// 3. Return response
	response.OK(c, h.newComparisonResp(output))
}
