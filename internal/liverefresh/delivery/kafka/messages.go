package kafka

import "time"

// BatchCompletedMessage - Kafka message on analytics.batch.completed
type BatchCompletedMessage struct {
	BatchID     string    `json:"batch_id"`
	EntityID    string    `json:"entity_id"`
	FileURL     string    `json:"file_url"`
	RecordCount int       `json:"record_count"`
	CompletedAt time.Time `json:"completed_at"`
}
