package producer

import (
	"context"
	"encoding/json"
	"fmt"

	"monitor-srv/internal/ingest"
	kafkaDelivery "monitor-srv/internal/ingest/delivery/kafka"
)

// PublishIngestResult publishes the outcome of one batch run. Keyed by
// entity id so results for the same entity stay ordered.
func (p *implProducer) PublishIngestResult(ctx context.Context, result ingest.IngestResult) error {
	// Convert to message DTO
	msg := kafkaDelivery.IngestResultMessage{
		TaskID:       result.TaskID,
		BatchID:      result.BatchID,
		EntityID:     result.EntityID,
		Status:       result.Status,
		Accepted:     result.Accepted,
		Skipped:      result.Skipped,
		ErrorMessage: result.ErrorMessage,
		CompletedAt:  result.CompletedAt,
	}

	// Marshal to JSON
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal ingest result: %w", err)
	}

	// Publish to Kafka
	key := []byte(result.EntityID)
	if err := p.producer.Publish(key, body); err != nil {
		return fmt.Errorf("failed to publish ingest result: %w", err)
	}

	p.l.Infof(ctx, "Published ingest result for batch %s: %s", result.BatchID, result.Status)
	return nil
}
