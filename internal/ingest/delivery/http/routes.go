package http

import (
	"monitor-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

// Retry is service-to-service only, operators call it through the gateway
// with the internal key.
func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1")
	api.Use(mw.InternalAuth())
	{
		api.POST("/ingest/retry", h.Retry)
	}
}
