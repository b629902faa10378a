package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"monitor-srv/internal/ingest"
	ingestHTTP "monitor-srv/internal/ingest/delivery/http"
	ingestProducer "monitor-srv/internal/ingest/delivery/kafka/producer"
	ingestPostgre "monitor-srv/internal/ingest/repository/postgre"
	ingestUsecase "monitor-srv/internal/ingest/usecase"
	"monitor-srv/internal/middleware"
)

// setupIngestDomain initializes the ingest domain (DLQ repo -> usecase ->
// delivery). The heavy batch consumption runs in the consumer binary; the
// API binary only exposes the retry endpoint.
func (srv *HTTPServer) setupIngestDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	dlqRepo := ingestPostgre.New(srv.postgresDB, srv.l)

	// Results are published only when a Kafka producer was configured.
	// Without one the retry path still runs, it just keeps results local.
	var resultProducer ingest.Producer
	if srv.kafkaProducer != nil {
		resultProducer = ingestProducer.New(srv.l, srv.kafkaProducer)
	}

	srv.ingestUC = ingestUsecase.New(srv.l, dlqRepo, srv.minioClient, srv.metricsUC, resultProducer)

	handler := ingestHTTP.New(srv.l, srv.ingestUC, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Ingest domain registered")
	return nil
}
