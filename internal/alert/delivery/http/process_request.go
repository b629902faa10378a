package http

import (
	"strconv"

	"monitor-srv/internal/model"
	"monitor-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) processListRequest(c *gin.Context) (listAlertsReq, model.Scope, error) {
	var req listAlertsReq

	if err := c.ShouldBindQuery(&req); err != nil {
		return req, model.Scope{}, err
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}

func (h *handler) processUnreadCountRequest(c *gin.Context) (model.Scope, error) {
	return scope.GetScopeFromContext(c.Request.Context()), nil
}

func (h *handler) processCreateRequest(c *gin.Context) (createAlertReq, model.Scope, error) {
	var req createAlertReq

	if err := c.ShouldBindJSON(&req); err != nil {
		return req, model.Scope{}, err
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}

func (h *handler) processAlertIDRequest(c *gin.Context) (int64, model.Scope, error) {
	alertID, err := strconv.ParseInt(c.Param("alert_id"), 10, 64)
	if err != nil {
		return 0, model.Scope{}, errInvalidAlertID
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return alertID, sc, nil
}
