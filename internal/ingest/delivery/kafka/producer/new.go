package producer

import (
	"monitor-srv/internal/ingest"
	pkgKafka "monitor-srv/pkg/kafka"
	"monitor-srv/pkg/log"
)

// Producer interface for ingest domain
type Producer interface {
	ingest.Producer
}

// implProducer implements the Producer interface
type implProducer struct {
	l        log.Logger
	producer pkgKafka.IProducer
}

// New creates a new ingest producer
func New(l log.Logger, producer pkgKafka.IProducer) Producer {
	return &implProducer{
		l:        l,
		producer: producer,
	}
}
