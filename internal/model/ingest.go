package model

import "time"

// IngestDLQ represents a dead letter queue record for a batch that failed
// to ingest.
type IngestDLQ struct {
	ID      string  `json:"id"`
	BatchID string  `json:"batch_id"`
	FileURL *string `json:"file_url,omitempty"`

	// Error Details
	RawPayload   []byte `json:"raw_payload"`
	ErrorMessage string `json:"error_message"`
	ErrorType    string `json:"error_type"`

	// Retry Management
	RetryCount int `json:"retry_count"`
	MaxRetries int `json:"max_retries"`

	// Resolution Status
	Resolved bool `json:"resolved"`

	// Timestamps
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Retryable reports whether the record still has retry budget left.
func (d IngestDLQ) Retryable() bool {
	return !d.Resolved && d.RetryCount < d.MaxRetries
}
