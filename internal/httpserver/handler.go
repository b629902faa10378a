package httpserver

import (
	"context"

	"monitor-srv/internal/collector"
	"monitor-srv/internal/middleware"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (srv *HTTPServer) mapHandlers() error {
	mw := middleware.New(srv.l, srv.jwtManager, srv.cookieConfig, srv.config.InternalConfig.InternalKey, srv.config, srv.encrypter)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	ctx := context.Background()

	root := srv.gin.Group("")

	// Domain order matters: comparison reads the metrics usecase and the
	// collector reads all four.
	if err := srv.setupMetricsDomain(ctx, root, mw); err != nil {
		return err
	}
	if err := srv.setupComparisonDomain(ctx, root, mw); err != nil {
		return err
	}
	if err := srv.setupLiveRefreshDomain(ctx, root, mw); err != nil {
		return err
	}
	if err := srv.setupAlertDomain(ctx, root, mw); err != nil {
		return err
	}
	if err := srv.setupWatchlistDomain(ctx, root, mw); err != nil {
		return err
	}
	if err := srv.setupIngestDomain(ctx, root, mw); err != nil {
		return err
	}

	srv.collector = collector.New(
		srv.l,
		srv.watchlistUC,
		srv.metricsUC,
		srv.comparisonUC,
		srv.liverefreshUC,
		collector.Config{Concurrency: srv.config.Collector.Concurrency},
	)

	return nil
}

func (srv *HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(middleware.Recovery(srv.l, srv.discord))

	// Locale middleware extracts the locale from the request header
	srv.gin.Use(mw.Locale())
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	// Swagger UI and docs
	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}
