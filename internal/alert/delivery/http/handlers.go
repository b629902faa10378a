package http

import (
	"monitor-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// List - List alerts from the local store
// @Summary List alerts
// @Description Return the locally mirrored alert list, filtered by status and paginated. The list is refreshed from review-srv on a fixed cadence
// @Tags Alert
// @Produce json
// @Param status query string false "Filter: active, resolved or all" Enums(active, resolved, all)
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} listAlertsResp
// @Failure 400 {object} response.Resp
// @Router /api/v1/alerts [get]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	// 1. Process request
	req, sc, err := h.processListRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "alert.delivery.http.List: processListRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	// 2. Call UseCase
	output, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "alert.delivery.http.List: usecase List failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	// 3. Return response
	response.OK(c, h.newListAlertsResp(output))
}

// UnreadCount - Count unread alerts
// @Summary Unread alert count
// @Description Return the number of alerts that are neither read nor resolved
// @Tags Alert
// @Produce json
// @Success 200 {object} unreadCountResp
// @Router /api/v1/alerts/unread-count [get]
func (h *handler) UnreadCount(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processUnreadCountRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	response.OK(c, unreadCountResp{UnreadCount: h.uc.UnreadCount(ctx, sc)})
}

// Create - Create an alert
// @Summary Create alert
// @Description Create an alert through review-srv. The record shows up immediately with a provisional id and is reconciled on the next refresh
// @Tags Alert
// @Accept json
// @Produce json
// @Param body body createAlertReq true "Alert to create"
// @Success 200 {object} alertResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/alerts [post]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	// 1. Process request
	req, sc, err := h.processCreateRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "alert.delivery.http.Create: processCreateRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	// 2. Call UseCase
	created, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "alert.delivery.http.Create: usecase Create failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	// 3. Return response
	response.OK(c, newAlertResp(created))
}

// MarkRead - Mark an alert as read
// @Summary Mark alert read
// @Description Flip the read flag locally and confirm it with review-srv
// @Tags Alert
// @Produce json
// @Param alert_id path int true "Alert ID"
// @Success 200 {object} alertResp
// @Failure 400 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/alerts/{alert_id}/read [patch]
func (h *handler) MarkRead(c *gin.Context) {
	ctx := c.Request.Context()

	// 1. Process request
	alertID, sc, err := h.processAlertIDRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "alert.delivery.http.MarkRead: processAlertIDRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	// 2. Call UseCase
	updated, err := h.uc.MarkRead(ctx, sc, alertID)
	if err != nil {
		h.l.Errorf(ctx, "alert.delivery.http.MarkRead: usecase MarkRead failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	// 3. Return response
	response.OK(c, newAlertResp(updated))
}

// Resolve - Resolve an alert
// @Summary Resolve alert
// @Description Mark an alert as resolved locally and confirm it with review-srv
// @Tags Alert
// @Produce json
// @Param alert_id path int true "Alert ID"
// @Success 200 {object} alertResp
// @Failure 400 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/alerts/{alert_id}/resolve [patch]
func (h *handler) Resolve(c *gin.Context) {
	ctx := c.Request.Context()

	// 1. Process request
	alertID, sc, err := h.processAlertIDRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "alert.delivery.http.Resolve: processAlertIDRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	// 2. Call UseCase
	updated, err := h.uc.Resolve(ctx, sc, alertID)
	if err != nil {
		h.l.Errorf(ctx, "alert.delivery.http.Resolve: usecase Resolve failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	// 3. Return response
	response.OK(c, newAlertResp(updated))
}

// Delete - Delete an alert
// @Summary Delete alert
// @Description Remove an alert locally and delete it in review-srv. The id stays hidden while the server list catches up
// @Tags Alert
// @Produce json
// @Param alert_id path int true "Alert ID"
// @Success 200 {object} deleteAlertResp
// @Failure 400 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/alerts/{alert_id} [delete]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	// 1. Process request
	alertID, sc, err := h.processAlertIDRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "alert.delivery.http.Delete: processAlertIDRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	// 2. Call UseCase
	if err := h.uc.Delete(ctx, sc, alertID); err != nil {
		h.l.Errorf(ctx, "alert.delivery.http.Delete: usecase Delete failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	// 3. Return response
	response.OK(c, deleteAlertResp{AlertID: alertID, Deleted: true})
}
