package rabbitmq

import "time"

// Redial cadence for lost broker connections.
const (
	RetryConnectionDelay   = 2 * time.Second
	RetryConnectionTimeout = 20 * time.Second
)

const (
	ContentTypeJSON      = "application/json"
	ContentTypePlainText = "text/plain"
)

// AMQP built-in exchange kinds.
const (
	ExchangeTypeDirect = "direct"
	ExchangeTypeFanout = "fanout"
	ExchangeTypeTopic  = "topic"
)
