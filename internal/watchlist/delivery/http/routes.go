package http

import (
	"monitor-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1")
	api.Use(mw.Auth())
	{
		api.POST("/watchlist", h.Add)
		api.GET("/watchlist", h.List)
		api.GET("/watchlist/:watch_id", h.Detail)
		api.PATCH("/watchlist/:watch_id/pin", h.Pin)
		api.DELETE("/watchlist/:watch_id", h.Remove)
	}
}
