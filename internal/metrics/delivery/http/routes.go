package http

import (
	"monitor-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1")
	api.Use(mw.Auth())
	{
		api.GET("/metrics/:entity_id", h.GetEntityMetrics)
		api.DELETE("/metrics/:entity_id/cache", h.InvalidateEntityMetrics)
	}
}
