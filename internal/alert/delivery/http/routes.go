package http

import (
	"monitor-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1")
	api.Use(mw.Auth())
	{
		api.GET("/alerts", h.List)
		api.GET("/alerts/unread-count", h.UnreadCount)
		api.POST("/alerts", h.Create)
		api.PATCH("/alerts/:alert_id/read", h.MarkRead)
		api.PATCH("/alerts/:alert_id/resolve", h.Resolve)
		api.DELETE("/alerts/:alert_id", h.Delete)
	}
}
