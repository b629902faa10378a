package consumer

import (
	"fmt"
)

// New builds the consumer server and rejects incomplete dependency sets.
func New(cfg Config) (*ConsumerServer, error) {
	srv := &ConsumerServer{
		l:             cfg.Logger,
		kafkaConfig:   cfg.KafkaConfig,
		redisClient:   cfg.RedisClient,
		postgresDB:    cfg.PostgresDB,
		minioClient:   cfg.MinIOClient,
		kafkaProducer: cfg.KafkaProducer,
		reviewSrv:     cfg.ReviewSrv,
		discord:       cfg.Discord,
	}
	if err := srv.validate(); err != nil {
		return nil, err
	}
	return srv, nil
}

func (srv *ConsumerServer) validate() error {
	required := []struct {
		ok   bool
		name string
	}{
		{srv.l != nil, "logger"},
		{len(srv.kafkaConfig.Brokers) > 0, "kafka brokers"},
		{srv.redisClient != nil, "redis client"},
		{srv.postgresDB != nil, "postgres db"},
		{srv.minioClient != nil, "minio client"},
		{srv.kafkaProducer != nil, "kafka producer"},
		{srv.reviewSrv != nil, "review service client"},
	}
	for _, dep := range required {
		if !dep.ok {
			return fmt.Errorf("%s is required", dep.name)
		}
	}
	return nil
}
