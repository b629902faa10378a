package rabbitmq

import (
	amqp "github.com/rabbitmq/amqp091-go"
)

// Publishing aliases amqp.Publishing so callers build messages without
// importing the amqp package themselves.
type Publishing = amqp.Publishing

// ExchangeArgs describes the exchange to declare.
type ExchangeArgs struct {
	Name       string
	Type       string
	Durable    bool
	AutoDelete bool
	Internal   bool
	NoWait     bool
	Args       map[string]interface{}
}

// PublishArgs addresses one outgoing message.
type PublishArgs struct {
	Exchange   string
	RoutingKey string
	Mandatory  bool
	Immediate  bool
	Msg        Publishing
}

type connImpl struct {
	url          string
	retryForever bool
	conn         *amqp.Connection
	watchers     []chan struct{}
}

type chanImpl struct {
	parent *connImpl
	ch     *amqp.Channel
}
