package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"monitor-srv/pkg/response"
)

// Service identity reported by the health endpoints.
const (
	HealthMessage = "From Smap Monitor API V1 With Love"
	HealthVersion = "1.0.0"
	ServiceName   = "monitor-srv"
)

func identity(status string) gin.H {
	return gin.H{
		"status":  status,
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	}
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, identity("healthy"))
}

// readyCheck reports 503 until every backing store answers a ping.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Router /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	ctx := c.Request.Context()

	probes := []struct {
		name string
		ping func(context.Context) error
	}{
		{"database", srv.postgresDB.PingContext},
		{"redis", srv.redisClient.Ping},
	}

	for _, p := range probes {
		if err := p.ping(ctx); err != nil {
			c.JSON(503, gin.H{
				"status":  "not ready",
				"message": p.name + " connection failed",
				"error":   err.Error(),
			})
			return
		}
	}

	body := identity("ready")
	body["database"] = "connected"
	body["redis"] = "connected"
	response.OK(c, body)
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, identity("alive"))
}
