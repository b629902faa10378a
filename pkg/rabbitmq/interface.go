package rabbitmq

import "context"

// IRabbitMQ is a self-healing connection to the broker. Implementations are
// safe for concurrent use.
type IRabbitMQ interface {
	Channel() (IChannel, error)
	IsReady() bool
	Close()
}

// IChannel is a publisher channel. Channels survive broker restarts by
// rebuilding themselves once the parent connection reconnects.
type IChannel interface {
	ExchangeDeclare(exc ExchangeArgs) error
	Publish(ctx context.Context, publish PublishArgs) error
	Close() error
}

// NewRabbitMQ dials the broker. The initial dial is bounded by
// RetryConnectionTimeout; with retryForever set, later reconnects keep
// trying until the broker comes back.
func NewRabbitMQ(url string, retryForever bool) (IRabbitMQ, error) {
	c := &connImpl{url: url, retryForever: retryForever}
	if err := c.connect(true); err != nil {
		return nil, err
	}

	return c, nil
}
