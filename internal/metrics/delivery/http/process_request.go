package http

import (
	"monitor-srv/internal/model"
	"monitor-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) processGetEntityMetricsRequest(c *gin.Context) (getEntityMetricsReq, model.Scope, error) {
	req := getEntityMetricsReq{
		EntityID: c.Param("entity_id"),
		Refresh:  c.Query("refresh") == "true",
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}

func (h *handler) processInvalidateRequest(c *gin.Context) (invalidateReq, model.Scope, error) {
	req := invalidateReq{
		EntityID: c.Param("entity_id"),
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}
