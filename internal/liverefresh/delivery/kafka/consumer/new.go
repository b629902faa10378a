package consumer

import (
	"fmt"

	"monitor-srv/config"
	"monitor-srv/internal/liverefresh"
	pkgKafka "monitor-srv/pkg/kafka"
	"monitor-srv/pkg/log"
)

// Config holds the configuration for the live-refresh consumer
type Config struct {
	Logger      log.Logger
	KafkaConfig config.KafkaConfig
	UseCase     liverefresh.UseCase
}

// Consumer listens for batch completion events and feeds them to the
// live-refresh controller as early-completion signals.
type Consumer struct {
	l           log.Logger
	kafkaConfig config.KafkaConfig
	uc          liverefresh.UseCase

	batchCompletedGroup pkgKafka.IConsumer
}

// New creates a new live-refresh consumer
func New(cfg Config) (*Consumer, error) {
	if cfg.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if cfg.UseCase == nil {
		return nil, fmt.Errorf("usecase is required")
	}
	if len(cfg.KafkaConfig.Brokers) == 0 {
		return nil, fmt.Errorf("kafka brokers are required")
	}

	return &Consumer{
		l:           cfg.Logger,
		kafkaConfig: cfg.KafkaConfig,
		uc:          cfg.UseCase,
	}, nil
}

// Close closes all consumer groups
func (c *Consumer) Close() error {
	if c.batchCompletedGroup != nil {
		if err := c.batchCompletedGroup.Close(); err != nil {
			return fmt.Errorf("failed to close batch completed group: %w", err)
		}
	}
	return nil
}

func (c *Consumer) createConsumerGroup(groupID string) (pkgKafka.IConsumer, error) {
	group, err := pkgKafka.NewConsumer(pkgKafka.ConsumerConfig{
		Brokers: c.kafkaConfig.Brokers,
		GroupID: groupID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer group %s: %w", groupID, err)
	}
	return group, nil
}
