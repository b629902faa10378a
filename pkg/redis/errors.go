package redis

import "errors"

var (
	// ErrHostRequired is returned when no Redis host is configured.
	ErrHostRequired = errors.New("redis: host is required")
	// ErrInvalidPort is returned when the port is out of range.
	ErrInvalidPort = errors.New("redis: invalid port")
)
