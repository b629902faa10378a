package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"monitor-srv/internal/middleware"
	watchlistHTTP "monitor-srv/internal/watchlist/delivery/http"
	watchlistPostgre "monitor-srv/internal/watchlist/repository/postgre"
	watchlistUsecase "monitor-srv/internal/watchlist/usecase"
)

func (srv *HTTPServer) setupWatchlistDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	repo := watchlistPostgre.New(srv.postgresDB, srv.l)

	srv.watchlistUC = watchlistUsecase.New(srv.l, repo, srv.metricsUC)

	handler := watchlistHTTP.New(srv.l, srv.watchlistUC, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Watchlist domain registered")
	return nil
}
