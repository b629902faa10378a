package kafka

import (
	"context"

	"github.com/IBM/sarama"
)

// IProducer publishes key/value pairs to the topic fixed at construction.
// Implementations are safe for concurrent use.
type IProducer interface {
	Publish(key, value []byte) error
	HealthCheck() error
	Close() error
}

// IConsumer is a consumer group membership. Errors delivers consume-side
// failures asynchronously and must be drained by the caller.
type IConsumer interface {
	// ConsumeWithContext blocks until ctx is cancelled or consuming fails.
	ConsumeWithContext(ctx context.Context, topics []string, handler sarama.ConsumerGroupHandler) error
	Errors() <-chan error
	Close() error
}

// NewProducer connects a sync producer to the given brokers.
func NewProducer(cfg Config) (IProducer, error) {
	if len(cfg.Brokers) == 0 {
		return nil, ErrNoBrokers
	}
	if cfg.Topic == "" {
		return nil, ErrNoTopic
	}
	return newProducer(cfg)
}

// NewConsumer joins the consumer group named in cfg.
func NewConsumer(cfg ConsumerConfig) (IConsumer, error) {
	if len(cfg.Brokers) == 0 {
		return nil, ErrNoBrokers
	}
	if cfg.GroupID == "" {
		return nil, ErrNoGroupID
	}
	return newConsumer(cfg)
}
