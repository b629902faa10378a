package http

import (
	"net/http"
	"time"
)

// ClientConfig tunes the client: one overall timeout per attempt plus a
// retry budget spent on transport errors and 5xx responses.
type ClientConfig struct {
	Timeout   time.Duration
	Retries   int
	RetryWait time.Duration
}

type clientImpl struct {
	client *http.Client
	config ClientConfig
}
