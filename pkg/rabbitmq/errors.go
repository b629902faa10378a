package rabbitmq

import "errors"

var (
	// ErrConnectionTimeout is returned when the broker cannot be reached
	// within RetryConnectionTimeout.
	ErrConnectionTimeout = errors.New("rabbitmq: connection timeout")
)
