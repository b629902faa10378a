package ingest

import "time"

const (
	STATUS_COMPLETED = "completed"
	STATUS_FAILED    = "failed"

	INVALID_URL    = "INVALID_URL"
	DOWNLOAD_ERROR = "DOWNLOAD_ERROR"
	PARSE_ERROR    = "PARSE_ERROR"
	REBUILD_ERROR  = "REBUILD_ERROR"
	PROCESS_ERROR  = "PROCESS_ERROR"

	DefaultMaxRetries = 3
	DefaultRetryLimit = 50
)

// ProcessBatchInput carries json tags because it is also the DLQ payload:
// a failed batch is stored as-is and unmarshaled back on retry.
type ProcessBatchInput struct {
	BatchID     string `json:"batch_id"`
	EntityID    string `json:"entity_id"`
	FileURL     string `json:"file_url"`
	RecordCount int    `json:"record_count"`
}

type ProcessBatchOutput struct {
	TaskID   string
	EntityID string
	Accepted int
	Skipped  int
	Duration time.Duration
}

type IngestResult struct {
	TaskID       string    `json:"task_id"`
	BatchID      string    `json:"batch_id"`
	EntityID     string    `json:"entity_id"`
	Status       string    `json:"status"`
	Accepted     int       `json:"accepted"`
	Skipped      int       `json:"skipped"`
	ErrorMessage string    `json:"error_message,omitempty"`
	CompletedAt  time.Time `json:"completed_at"`
}

type RetryFailedInput struct {
	Limit int
}

type RetryFailedOutput struct {
	TotalRetried int
	Succeeded    int
	Failed       int
	Duration     time.Duration
}
