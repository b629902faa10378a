package httpserver

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	liverefreshHTTP "monitor-srv/internal/liverefresh/delivery/http"
	liverefreshConsumer "monitor-srv/internal/liverefresh/delivery/kafka/consumer"
	liverefreshUsecase "monitor-srv/internal/liverefresh/usecase"
	"monitor-srv/internal/middleware"
)

// setupLiveRefreshDomain initializes the live-refresh controller, its HTTP
// delivery and the batch-completed consumer that resolves refresh windows
// early.
func (srv *HTTPServer) setupLiveRefreshDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	cfg := liverefreshUsecase.DefaultConfig()
	if srv.config.LiveRefresh.Window > 0 {
		cfg.Window = time.Duration(srv.config.LiveRefresh.Window) * time.Second
	}
	if srv.config.LiveRefresh.TriggerStagger > 0 {
		cfg.TriggerStagger = time.Duration(srv.config.LiveRefresh.TriggerStagger) * time.Millisecond
	}
	if srv.config.LiveRefresh.IdleInterval > 0 {
		cfg.IdleInterval = time.Duration(srv.config.LiveRefresh.IdleInterval) * time.Second
	}
	if srv.config.LiveRefresh.ActiveInterval > 0 {
		cfg.ActiveInterval = time.Duration(srv.config.LiveRefresh.ActiveInterval) * time.Second
	}

	srv.liverefreshUC = liverefreshUsecase.New(srv.l, srv.reviewSrv, cfg)

	handler := liverefreshHTTP.New(srv.l, srv.liverefreshUC, srv.discord)
	handler.RegisterRoutes(r, mw)

	consumer, err := liverefreshConsumer.New(liverefreshConsumer.Config{
		Logger:      srv.l,
		KafkaConfig: srv.kafkaConfig,
		UseCase:     srv.liverefreshUC,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize live-refresh consumer: %w", err)
	}
	srv.lrConsumer = consumer

	srv.l.Infof(ctx, "Live-refresh domain registered")
	return nil
}
