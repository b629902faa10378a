package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	comparisonHTTP "monitor-srv/internal/comparison/delivery/http"
	comparisonUsecase "monitor-srv/internal/comparison/usecase"
	"monitor-srv/internal/middleware"
)

func (srv *HTTPServer) setupComparisonDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	srv.comparisonUC = comparisonUsecase.New(srv.l, srv.metricsUC)

	handler := comparisonHTTP.New(srv.l, srv.comparisonUC, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Comparison domain registered")
	return nil
}
