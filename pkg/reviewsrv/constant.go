package reviewsrv

import "time"

const (
	// DefaultTimeout is the default HTTP client timeout for Review Service.
	DefaultTimeout = 10 * time.Second
	// DefaultRetries is the default number of retries.
	DefaultRetries = 3
	// DefaultRetryWait is the default wait between retries.
	DefaultRetryWait = 1 * time.Second
)

// API path segments (for reference; full URLs built in reviewsrv.go).
const (
	PathEntities = "/api/v1/entities"
	PathAnalysis = "/api/v1/analysis"
	PathAlerts   = "/api/v1/alerts"
)
