package kafka

import "errors"

var (
	// ErrNoBrokers is returned when a config lists no broker addresses.
	ErrNoBrokers = errors.New("kafka: at least one broker is required")
	// ErrNoTopic is returned when a producer config has an empty topic.
	ErrNoTopic = errors.New("kafka: topic is required")
	// ErrNoGroupID is returned when a consumer config has an empty group ID.
	ErrNoGroupID = errors.New("kafka: group ID is required")
)
