package kafka

import (
	"time"

	"github.com/IBM/sarama"
)

// protocolVersion is the broker protocol version sarama negotiates.
// Every cluster the service talks to runs at least 2.6.
var protocolVersion = sarama.V2_6_0_0

// Producer tuning applied by NewProducer.
const (
	producerTimeout  = 10 * time.Second
	producerRetryMax = 3
)
