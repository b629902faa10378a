package http

import (
	"monitor-srv/internal/model"
	"monitor-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) processAddRequest(c *gin.Context) (addWatchReq, model.Scope, error) {
	var req addWatchReq

	if err := c.ShouldBindJSON(&req); err != nil {
		return req, model.Scope{}, err
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}

func (h *handler) processListRequest(c *gin.Context) (listWatchReq, model.Scope, error) {
	var req listWatchReq

	if err := c.ShouldBindQuery(&req); err != nil {
		return req, model.Scope{}, err
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}

func (h *handler) processWatchIDRequest(c *gin.Context) (string, model.Scope, error) {
	id := c.Param("watch_id")
	sc := scope.GetScopeFromContext(c.Request.Context())
	return id, sc, nil
}

func (h *handler) processPinRequest(c *gin.Context) (string, pinPairReq, model.Scope, error) {
	var req pinPairReq

	if err := c.ShouldBindJSON(&req); err != nil {
		return "", req, model.Scope{}, err
	}

	id := c.Param("watch_id")
	sc := scope.GetScopeFromContext(c.Request.Context())
	return id, req, sc, nil
}
