package consumer

import (
	"context"
	"fmt"

	ingestConsumer "monitor-srv/internal/ingest/delivery/kafka/consumer"
	ingestProducer "monitor-srv/internal/ingest/delivery/kafka/producer"
	ingestPostgre "monitor-srv/internal/ingest/repository/postgre"
	ingestUsecase "monitor-srv/internal/ingest/usecase"
	metricsRedis "monitor-srv/internal/metrics/repository/redis"
	metricsUsecase "monitor-srv/internal/metrics/usecase"
)

// domainConsumers holds references to all domain consumers for cleanup
type domainConsumers struct {
	ingestConsumer *ingestConsumer.Consumer
}

// setupDomains initializes all domain layers (repositories, usecases, consumers)
func (srv *ConsumerServer) setupDomains(ctx context.Context) (*domainConsumers, error) {
	// Initialize metrics domain (snapshot cache the ingest pipeline warms)
	cacheRepo := metricsRedis.New(srv.redisClient, srv.l)
	metricsUC := metricsUsecase.New(srv.l, srv.reviewSrv, cacheRepo)

	// Initialize ingest domain
	dlqRepo := ingestPostgre.New(srv.postgresDB, srv.l)
	resultProducer := ingestProducer.New(srv.l, srv.kafkaProducer)
	ingestUC := ingestUsecase.New(
		srv.l,
		dlqRepo,
		srv.minioClient,
		metricsUC,
		resultProducer,
	)
	ingestCons, err := ingestConsumer.New(ingestConsumer.Config{
		Logger:      srv.l,
		KafkaConfig: srv.kafkaConfig,
		UseCase:     ingestUC,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create ingest consumer: %w", err)
	}

	srv.l.Infof(ctx, "Ingest domain initialized")

	return &domainConsumers{
		ingestConsumer: ingestCons,
	}, nil
}

// startConsumers starts all domain consumers in background goroutines
func (srv *ConsumerServer) startConsumers(ctx context.Context, consumers *domainConsumers) error {
	// Start ingest consumer
	if err := consumers.ingestConsumer.ConsumeBatchCompleted(ctx); err != nil {
		return fmt.Errorf("failed to start ingest consumer: %w", err)
	}

	srv.l.Infof(ctx, "All consumers started successfully")
	return nil
}

// stopConsumers gracefully stops all domain consumers
func (srv *ConsumerServer) stopConsumers(ctx context.Context, consumers *domainConsumers) {
	// Close ingest consumer
	if consumers.ingestConsumer != nil {
		if err := consumers.ingestConsumer.Close(); err != nil {
			srv.l.Errorf(ctx, "Error closing ingest consumer: %v", err)
		}
	}

	srv.l.Infof(ctx, "All consumers stopped")
}
