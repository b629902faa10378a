package minio

import "time"

// Transport tuning for the MinIO HTTP client.
const (
	maxIdleConns        = 100
	maxIdleConnsPerHost = 100
	idleConnTimeout     = 90 * time.Second
	disableCompression  = true
	disableKeepAlives   = false
)

// DefaultEndpointPort is assumed when the configured endpoint has no port.
const DefaultEndpointPort = ":9000"
