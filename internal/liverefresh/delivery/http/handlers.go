package http

import (
	"monitor-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Activate - Start a live refresh for one or more entities
// @Summary Activate live refresh
// @Description Switch to the short polling interval and trigger a fresh backend analysis for each entity. Activating while already active is a no-op that does not extend the running window
// @Tags LiveRefresh
// @Accept json
// @Produce json
// @Param body body activateReq true "Activation request"
// @Success 200 {object} refreshStateResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/live-refresh/activate [post]
func (h *handler) Activate(c *gin.Context) {
	ctx := c.Request.Context()

	// 1. Process request
	req, sc, err := h.processActivateRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "liverefresh.delivery.http.Activate: processActivateRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	// 2. Call UseCase
	output, err := h.uc.Activate(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "liverefresh.delivery.http.Activate: usecase Activate failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	// 3. Return response
	response.OK(c, h.newRefreshStateResp(output.State, output.Activated))
}

// Deactivate - Revert to idle polling early
// @Summary Deactivate live refresh
// @Description Cancel the running live-refresh window and fall back to the idle polling interval
// @Tags LiveRefresh
// @Produce json
// @Success 200 {object} refreshStateResp
// @Failure 500 {object} response.Resp
// @Router /api/v1/live-refresh/deactivate [post]
func (h *handler) Deactivate(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processDeactivateRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	if err := h.uc.Deactivate(ctx, sc); err != nil {
		h.l.Errorf(ctx, "liverefresh.delivery.http.Deactivate: usecase Deactivate failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newRefreshStateResp(h.uc.State(ctx, sc), false))
}

// State - Current refresh mode and window
// @Summary Get live refresh state
// @Description Return the current mode, polling interval, activation batch and auto-revert deadline
// @Tags LiveRefresh
// @Produce json
// @Success 200 {object} refreshStateResp
// @Router /api/v1/live-refresh/state [get]
func (h *handler) State(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processStateRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	response.OK(c, h.newRefreshStateResp(h.uc.State(ctx, sc), false))
}
