package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	rabbitDelivery "monitor-srv/internal/alert/delivery/rabbitmq"
	"monitor-srv/internal/model"
	pkgRabbitMQ "monitor-srv/pkg/rabbitmq"
)

// PublishCrisis publishes a crisis event for a critical alert.
func (n *implNotifier) PublishCrisis(ctx context.Context, a model.Alert) error {
	// Convert to message DTO
	msg := rabbitDelivery.CrisisMessage{
		AlertID:   a.ID,
		EntityID:  a.EntityID,
		Type:      a.Type,
		Severity:  a.Severity,
		Title:     a.Title,
		Message:   a.Message,
		CreatedAt: a.CreatedAt,
	}

	// Marshal to JSON
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal crisis message: %w", err)
	}

	// Publish to the notification exchange
	if err := n.channel.Publish(ctx, pkgRabbitMQ.PublishArgs{
		Exchange:   rabbitDelivery.ExchangeNotificationEvents,
		RoutingKey: rabbitDelivery.RoutingKeyAlertCrisis,
		Msg: pkgRabbitMQ.Publishing{
			ContentType: pkgRabbitMQ.ContentTypeJSON,
			Timestamp:   time.Now(),
			Body:        body,
		},
	}); err != nil {
		return fmt.Errorf("failed to publish crisis event: %w", err)
	}

	n.l.Infof(ctx, "Published crisis event for alert %d on entity %s", a.ID, a.EntityID)
	return nil
}
