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

// IngestResultMessage - Kafka message on monitor.ingest.results
type IngestResultMessage struct {
	TaskID       string    `json:"task_id"`
	BatchID      string    `json:"batch_id"`
	EntityID     string    `json:"entity_id"`
	Status       string    `json:"status"`
	Accepted     int       `json:"accepted"`
	Skipped      int       `json:"skipped"`
	ErrorMessage string    `json:"error_message,omitempty"`
	CompletedAt  time.Time `json:"completed_at"`
}
