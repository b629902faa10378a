package http

import (
	"monitor-srv/internal/model"
	"monitor-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) processCompareRequest(c *gin.Context) (compareReq, model.Scope, error) {
	var req compareReq

	if err := c.ShouldBindQuery(&req); err != nil {
		return req, model.Scope{}, err
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}
