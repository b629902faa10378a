package http

import (
	"monitor-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1")
	api.Use(mw.Auth())
	{
		api.POST("/live-refresh/activate", h.Activate)
		api.POST("/live-refresh/deactivate", h.Deactivate)
		api.GET("/live-refresh/state", h.State)
	}
}
