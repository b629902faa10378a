package consumer

import (
	"context"
	"database/sql"

	"monitor-srv/config"
	"monitor-srv/pkg/discord"
	pkgKafka "monitor-srv/pkg/kafka"
	"monitor-srv/pkg/log"
	"monitor-srv/pkg/minio"
	"monitor-srv/pkg/redis"
	"monitor-srv/pkg/reviewsrv"
)

// ConsumerServer owns the Kafka side of the service. It wires the ingest
// domain, runs its consumers and tears them down on shutdown.
type ConsumerServer struct {
	l           log.Logger
	kafkaConfig config.KafkaConfig

	redisClient   redis.IRedis
	postgresDB    *sql.DB
	minioClient   minio.MinIO
	kafkaProducer pkgKafka.IProducer
	reviewSrv     reviewsrv.IReview

	discord discord.IDiscord
}

// Config lists the dependencies cmd/consumer injects. Discord is optional,
// everything else is required.
type Config struct {
	Logger      log.Logger
	KafkaConfig config.KafkaConfig

	RedisClient   redis.IRedis
	PostgresDB    *sql.DB
	MinIOClient   minio.MinIO
	KafkaProducer pkgKafka.IProducer
	ReviewSrv     reviewsrv.IReview

	Discord discord.IDiscord
}

// Run blocks until ctx is cancelled. Consumers are stopped before it
// returns so in-flight batches finish cleanly.
func (srv *ConsumerServer) Run(ctx context.Context) error {
	consumers, err := srv.setupDomains(ctx)
	if err != nil {
		srv.l.Errorf(ctx, "Domain setup failed: %v", err)
		return err
	}
	if err := srv.startConsumers(ctx, consumers); err != nil {
		srv.l.Errorf(ctx, "Starting consumers failed: %v", err)
		return err
	}

	srv.l.Info(ctx, "Consumer server is running")

	<-ctx.Done()
	srv.l.Info(ctx, "Shutdown signal received, draining consumers")
	srv.stopConsumers(ctx, consumers)
	srv.l.Info(ctx, "Consumer server stopped")

	return nil
}
