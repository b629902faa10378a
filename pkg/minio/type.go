package minio

import (
	"sync"
	"time"

	"monitor-srv/config"

	"github.com/minio/minio-go/v7"
)

type implMinIO struct {
	client    *minio.Client
	config    *config.MinIOConfig
	mu        sync.RWMutex
	connected bool
}

// ObjectMeta carries the stat fields returned alongside a download stream.
type ObjectMeta struct {
	ContentType  string
	Size         int64
	ETag         string
	LastModified time.Time
}
