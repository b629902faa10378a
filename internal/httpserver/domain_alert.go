package httpserver

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"monitor-srv/internal/alert"
	alertHTTP "monitor-srv/internal/alert/delivery/http"
	alertNotifier "monitor-srv/internal/alert/delivery/rabbitmq/notifier"
	alertUsecase "monitor-srv/internal/alert/usecase"
	"monitor-srv/internal/middleware"
)

// setupAlertDomain initializes the alert domain. Without a RabbitMQ
// connection the store still reconciles, crisis alerts just stay local.
func (srv *HTTPServer) setupAlertDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	var notifier alert.Notifier
	if srv.rabbitConn != nil {
		n, err := alertNotifier.New(srv.l, srv.rabbitConn)
		if err != nil {
			return fmt.Errorf("failed to initialize alert notifier: %w", err)
		}
		notifier = n
	}

	cfg := alertUsecase.DefaultConfig()
	if srv.config.Alert.RefreshInterval > 0 {
		cfg.RefreshInterval = time.Duration(srv.config.Alert.RefreshInterval) * time.Second
	}
	if srv.config.Alert.DeleteGrace > 0 {
		cfg.DeleteGrace = time.Duration(srv.config.Alert.DeleteGrace) * time.Second
	}

	srv.alertUC = alertUsecase.New(srv.l, srv.reviewSrv, notifier, cfg)

	handler := alertHTTP.New(srv.l, srv.alertUC, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Alert domain registered")
	return nil
}
