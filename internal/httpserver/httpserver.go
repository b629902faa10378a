package httpserver

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// Run starts the HTTP server plus the background loops (alert refresher,
// collector, live-refresh consumer) and blocks until a shutdown signal is
// received. It performs graceful shutdown and surfaces ListenAndServe
// errors to the caller.
func (srv *HTTPServer) Run() error {
	if err := srv.mapHandlers(); err != nil {
		srv.l.Fatalf(context.Background(), "Failed to map handlers: %v", err)
		return err
	}

	// Background loops stop when bgCtx is cancelled, before the listener
	// drains, so no loop observes a half-shut server.
	bgCtx, bgCancel := context.WithCancel(context.Background())
	defer bgCancel()

	srv.alertUC.StartRefresher(bgCtx)
	srv.collector.Start(bgCtx)
	if err := srv.lrConsumer.ConsumeBatchCompleted(bgCtx); err != nil {
		return fmt.Errorf("failed to start live-refresh consumer: %w", err)
	}

	addr := fmt.Sprintf("%s:%d", srv.host, srv.port)
	server := &http.Server{
		Addr:    addr,
		Handler: srv.gin,
	}

	serveErr := make(chan error, 1)
	go func() {
		srv.l.Infof(context.Background(), "HTTP server listening on %s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serveErr <- err
		}
	}()

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serveErr:
		return err
	case sig := <-ch:
		srv.l.Infof(context.Background(), "Signal %v received, shutting down", sig)
	}

	bgCancel()
	srv.liverefreshUC.Stop()
	if err := srv.lrConsumer.Close(); err != nil {
		srv.l.Errorf(context.Background(), "Failed to close live-refresh consumer: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		srv.l.Errorf(context.Background(), "HTTP server shutdown failed: %v", err)
		return err
	}
	srv.l.Info(context.Background(), "HTTP server stopped")
	return nil
}
