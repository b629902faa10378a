package http

import (
	"monitor-srv/internal/model"
	"monitor-srv/internal/watchlist"
	"monitor-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Add - Watch an entity
// @Summary Add watchlist entry
// @Description Register an entity on the watchlist so the collector keeps its metrics snapshot warm
// @Tags Watchlist
// @Accept json
// @Produce json
// @Param body body addWatchReq true "Entity to watch"
// @Success 200 {object} watchResp
// @Failure 400 {object} response.Resp
// @Failure 409 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/watchlist [post]
func (h *handler) Add(c *gin.Context) {
	ctx := c.Request.Context()

	// 1. Process request
	req, sc, err := h.processAddRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "watchlist.delivery.http.Add: processAddRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	// 2. Call UseCase
	created, err := h.uc.Add(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "watchlist.delivery.http.Add: usecase Add failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	// 3. Return response
	response.OK(c, newWatchResp(created))
}

// List - List watched entities
// @Summary List watchlist
// @Description Return the watchlist page by page, newest first
// @Tags Watchlist
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} listWatchResp
// @Failure 500 {object} response.Resp
// @Router /api/v1/watchlist [get]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	// 1. Process request
	req, sc, err := h.processListRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "watchlist.delivery.http.List: processListRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	// 2. Call UseCase
	output, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "watchlist.delivery.http.List: usecase List failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	// 3. Return response
	response.OK(c, newListWatchResp(output))
}

// Detail - Get one watchlist entry
// @Summary Watchlist entry detail
// @Description Return a single watchlist row by its id
// @Tags Watchlist
// @Produce json
// @Param watch_id path string true "Watchlist row ID"
// @Success 200 {object} watchResp
// @Failure 404 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/watchlist/{watch_id} [get]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	// 1. Process request
	id, sc, err := h.processWatchIDRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "watchlist.delivery.http.Detail: processWatchIDRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	// 2. Call UseCase
	w, err := h.uc.Detail(ctx, sc, id)
	if err != nil {
		h.l.Errorf(ctx, "watchlist.delivery.http.Detail: usecase Detail failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	// 3. Return response
	response.OK(c, newWatchResp(w))
}

// Pin - Pin or unpin a comparison partner
// @Summary Pin comparison pair
// @Description Pin a standing comparison partner to a watchlist row, or clear it by sending a null pair_with
// @Tags Watchlist
// @Accept json
// @Produce json
// @Param watch_id path string true "Watchlist row ID"
// @Param body body pinPairReq true "Pair target, null to unpin"
// @Success 200 {object} watchResp
// @Failure 400 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/watchlist/{watch_id}/pin [patch]
func (h *handler) Pin(c *gin.Context) {
	ctx := c.Request.Context()

	// 1. Process request
	id, req, sc, err := h.processPinRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "watchlist.delivery.http.Pin: processPinRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	// 2. Call UseCase: null pair target means unpin
	var (
		updated model.WatchedEntity
		ucErr   error
	)
	if req.PairWith == nil {
		updated, ucErr = h.uc.UnpinPair(ctx, sc, id)
	} else {
		updated, ucErr = h.uc.PinPair(ctx, sc, watchlist.PinPairInput{ID: id, PairWith: *req.PairWith})
	}
	if ucErr != nil {
		h.l.Errorf(ctx, "watchlist.delivery.http.Pin: usecase pin failed: %v", ucErr)
		response.Error(c, h.mapError(ucErr), h.discord)
		return
	}

	// 3. Return response
	response.OK(c, newWatchResp(updated))
}

// Remove - Stop watching an entity
// @Summary Remove watchlist entry
// @Description Take an entity off the watchlist and drop its cached metrics snapshot
// @Tags Watchlist
// @Produce json
// @Param watch_id path string true "Watchlist row ID"
// @Success 200 {object} removeWatchResp
// @Failure 404 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/watchlist/{watch_id} [delete]
func (h *handler) Remove(c *gin.Context) {
	ctx := c.Request.Context()

	// 1. Process request
	id, sc, err := h.processWatchIDRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "watchlist.delivery.http.Remove: processWatchIDRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	// 2. Call UseCase
	if err := h.uc.Remove(ctx, sc, id); err != nil {
		h.l.Errorf(ctx, "watchlist.delivery.http.Remove: usecase Remove failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	// 3. Return response
	response.OK(c, removeWatchResp{ID: id, Removed: true})
}
