package http

import (
	"monitor-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// GetEntityMetrics - Get the normalized sentiment snapshot for one entity
// @Summary Get entity sentiment metrics
// @Description Return sentiment counts, positive percentage, credibility average and per-aspect scores for an entity, served from the snapshot cache when fresh
// @Tags Metrics
// @Produce json
// @Param entity_id path string true "Entity ID"
// @Param refresh query bool false "Bypass the snapshot cache and refetch from the review service"
// @Success 200 {object} entityMetricsResp
// @Failure 400 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/metrics/{entity_id} [get]
func (h *handler) GetEntityMetrics(c *gin.Context) {
	ctx := c.Request.Context()

	// 1. Process request
	req, sc, err := h.processGetEntityMetricsRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "metrics.delivery.http.GetEntityMetrics: processGetEntityMetricsRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	// 2. Call UseCase
	output, err := h.uc.EntityMetrics(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "metrics.delivery.http.GetEntityMetrics: usecase EntityMetrics failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	// 3. Return response
	response.OK(c, h.newEntityMetricsResp(output))
}

// InvalidateEntityMetrics - Drop the cached snapshot for one entity
// @Summary Invalidate cached entity metrics
// @Description Delete the cached sentiment snapshot so the next read recomputes it from the review service
// @Tags Metrics
// @Produce json
// @Param entity_id path string true "Entity ID"
// @Success 200 {object} invalidateResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/metrics/{entity_id}/cache [delete]
func (h *handler) InvalidateEntityMetrics(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processInvalidateRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "metrics.delivery.http.InvalidateEntityMetrics: processInvalidateRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	if err := h.uc.Invalidate(ctx, sc, req.EntityID); err != nil {
		h.l.Errorf(ctx, "metrics.delivery.http.InvalidateEntityMetrics: usecase Invalidate failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, invalidateResp{EntityID: req.EntityID})
}
