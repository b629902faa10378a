package kafka

import (
	"context"
	"fmt"

	"github.com/IBM/sarama"
)

func producerConfig() *sarama.Config {
	c := sarama.NewConfig()
	c.Producer.RequiredAcks = sarama.WaitForLocal
	c.Producer.Compression = sarama.CompressionSnappy
	c.Producer.Return.Successes = true
	c.Producer.Retry.Max = producerRetryMax
	c.Producer.Timeout = producerTimeout
	c.Version = protocolVersion
	return c
}

func newProducer(cfg Config) (*implProducer, error) {
	p, err := sarama.NewSyncProducer(cfg.Brokers, producerConfig())
	if err != nil {
		return nil, fmt.Errorf("connect kafka producer: %w", err)
	}
	return &implProducer{sync: p, topic: cfg.Topic}, nil
}

func (p *implProducer) Publish(key, value []byte) error {
	_, _, err := p.sync.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.ByteEncoder(key),
		Value: sarama.ByteEncoder(value),
	})
	if err != nil {
		return fmt.Errorf("publish to %s: %w", p.topic, err)
	}
	return nil
}

func (p *implProducer) HealthCheck() error {
	if p.sync == nil {
		return fmt.Errorf("kafka producer is not connected")
	}
	return nil
}

func (p *implProducer) Close() error {
	if p.sync == nil {
		return nil
	}
	return p.sync.Close()
}

func consumerConfig() *sarama.Config {
	c := sarama.NewConfig()
	c.Consumer.Group.Rebalance.Strategy = sarama.NewBalanceStrategyRoundRobin()
	c.Consumer.Offsets.Initial = sarama.OffsetNewest
	c.Consumer.Return.Errors = true
	c.Version = protocolVersion
	return c
}

func newConsumer(cfg ConsumerConfig) (*implConsumer, error) {
	group, err := sarama.NewConsumerGroup(cfg.Brokers, cfg.GroupID, consumerConfig())
	if err != nil {
		return nil, fmt.Errorf("join consumer group %s: %w", cfg.GroupID, err)
	}
	return &implConsumer{group: group}, nil
}

// ConsumeWithContext consumes until ctx is cancelled. The inner sarama
// session returns on every rebalance, so it is re-entered in a loop.
func (c *implConsumer) ConsumeWithContext(ctx context.Context, topics []string, handler sarama.ConsumerGroupHandler) error {
	for {
		if err := c.group.Consume(ctx, topics, handler); err != nil {
			return fmt.Errorf("consume %v: %w", topics, err)
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}

func (c *implConsumer) Errors() <-chan error {
	return c.group.Errors()
}

func (c *implConsumer) Close() error {
	return c.group.Close()
}
