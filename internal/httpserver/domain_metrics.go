package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	metricsHTTP "monitor-srv/internal/metrics/delivery/http"
	metricsRedis "monitor-srv/internal/metrics/repository/redis"
	metricsUsecase "monitor-srv/internal/metrics/usecase"
	"monitor-srv/internal/middleware"
)

// setupMetricsDomain initializes the metrics domain (cache repo -> usecase -> delivery)
func (srv *HTTPServer) setupMetricsDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	cacheRepo := metricsRedis.New(srv.redisClient, srv.l)

	srv.metricsUC = metricsUsecase.New(srv.l, srv.reviewSrv, cacheRepo)

	handler := metricsHTTP.New(srv.l, srv.metricsUC, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Metrics domain registered")
	return nil
}
