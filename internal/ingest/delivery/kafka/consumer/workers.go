package consumer

import (
	"context"
	"encoding/json"

	"github.com/IBM/sarama"

	"monitor-srv/internal/ingest"
	kafkaDelivery "monitor-srv/internal/ingest/delivery/kafka"
)

// handleBatchCompletedMessage unwraps a completion event and runs it through
// the ingest pipeline. Invalid messages are skipped. Pipeline failures are
// acked too: the batch is already parked in the DLQ, redelivering the Kafka
// message would only book it twice.
func (c *Consumer) handleBatchCompletedMessage(msg *sarama.ConsumerMessage) error {
	ctx := context.Background()

	var message kafkaDelivery.BatchCompletedMessage
	if err := json.Unmarshal(msg.Value, &message); err != nil {
		c.l.Warnf(ctx, "ingest.delivery.kafka.consumer.handleBatchCompletedMessage: Invalid message format (skipping): %v", err)
		return nil
	}
	if message.BatchID == "" || message.EntityID == "" || message.FileURL == "" {
		c.l.Warnf(ctx, "ingest.delivery.kafka.consumer.handleBatchCompletedMessage: Invalid message: missing batch_id, entity_id or file_url (skipping)")
		return nil
	}

	if _, err := c.uc.ProcessBatch(ctx, ingest.ProcessBatchInput{
		BatchID:     message.BatchID,
		EntityID:    message.EntityID,
		FileURL:     message.FileURL,
		RecordCount: message.RecordCount,
	}); err != nil {
		c.l.Errorf(ctx, "ingest.delivery.kafka.consumer.handleBatchCompletedMessage: batch %s failed and was parked for retry: %v", message.BatchID, err)
	}

	return nil
}
