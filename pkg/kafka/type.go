package kafka

import "github.com/IBM/sarama"

// Config describes a producer bound to a single topic.
type Config struct {
	Brokers []string
	Topic   string
}

// ConsumerConfig describes membership in a named consumer group.
type ConsumerConfig struct {
	Brokers []string
	GroupID string
}

type implProducer struct {
	sync  sarama.SyncProducer
	topic string
}

type implConsumer struct {
	group sarama.ConsumerGroup
}
