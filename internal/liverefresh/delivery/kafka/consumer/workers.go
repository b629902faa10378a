package consumer

import (
	"context"
	"encoding/json"

	"github.com/IBM/sarama"

	kafkaDelivery "monitor-srv/internal/liverefresh/delivery/kafka"
)

// handleBatchCompletedMessage unwraps a completion event and forwards the
// entity id to the controller. Invalid messages are skipped, not retried.
func (c *Consumer) handleBatchCompletedMessage(msg *sarama.ConsumerMessage) error {
	ctx := context.Background()

	var message kafkaDelivery.BatchCompletedMessage
	if err := json.Unmarshal(msg.Value, &message); err != nil {
		c.l.Warnf(ctx, "liverefresh.delivery.kafka.consumer.handleBatchCompletedMessage: Invalid message format (skipping): %v", err)
		return nil
	}
	if message.EntityID == "" {
		c.l.Warnf(ctx, "liverefresh.delivery.kafka.consumer.handleBatchCompletedMessage: Invalid message: missing entity_id (skipping)")
		return nil
	}

	c.l.Infof(ctx, "liverefresh.delivery.kafka.consumer.handleBatchCompletedMessage: batch %s completed for entity %s", message.BatchID, message.EntityID)
	c.uc.NotifyCompleted(ctx, message.EntityID)
	return nil
}
