package http

import (
	"monitor-srv/internal/model"
	"monitor-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) processActivateRequest(c *gin.Context) (activateReq, model.Scope, error) {
	var req activateReq

	if err := c.ShouldBindJSON(&req); err != nil {
		return req, model.Scope{}, err
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}

func (h *handler) processDeactivateRequest(c *gin.Context) (model.Scope, error) {
	return scope.GetScopeFromContext(c.Request.Context()), nil
}

func (h *handler) processStateRequest(c *gin.Context) (model.Scope, error) {
	return scope.GetScopeFromContext(c.Request.Context()), nil
}
