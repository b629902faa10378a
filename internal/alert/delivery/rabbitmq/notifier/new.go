package notifier

import (
	"fmt"

	"monitor-srv/internal/alert"
	rabbitDelivery "monitor-srv/internal/alert/delivery/rabbitmq"
	"monitor-srv/pkg/log"
	pkgRabbitMQ "monitor-srv/pkg/rabbitmq"
)

// Notifier interface for alert domain
type Notifier interface {
	alert.Notifier
}

// implNotifier implements the Notifier interface
type implNotifier struct {
	l       log.Logger
	channel pkgRabbitMQ.IChannel
}

// New opens a channel on the given connection and declares the
// notification exchange.
func New(l log.Logger, conn pkgRabbitMQ.IRabbitMQ) (Notifier, error) {
	channel, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if err := channel.ExchangeDeclare(pkgRabbitMQ.ExchangeArgs{
		Name:    rabbitDelivery.ExchangeNotificationEvents,
		Type:    pkgRabbitMQ.ExchangeTypeTopic,
		Durable: true,
	}); err != nil {
		return nil, fmt.Errorf("failed to declare exchange %s: %w", rabbitDelivery.ExchangeNotificationEvents, err)
	}

	return &implNotifier{
		l:       l,
		channel: channel,
	}, nil
}
