package minio

import (
	"context"
	"fmt"
	"sync"

	"monitor-srv/config"
	"monitor-srv/pkg/minio"
)

var (
	instance minio.MinIO
	once     sync.Once
	mu       sync.RWMutex
	initErr  error
)

// dial builds the client and verifies the endpoint is reachable.
func dial(ctx context.Context, cfg *config.MinIOConfig) (minio.MinIO, error) {
	client, err := minio.NewMinIO(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}
	if err := client.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to MinIO: %w", err)
	}
	return client, nil
}

// Connect opens the shared MinIO client. Repeat calls return the same
// client; a failed attempt resets the singleton so the next call can retry.
func Connect(ctx context.Context, cfg *config.MinIOConfig) (minio.MinIO, error) {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		return instance, nil
	}
	if initErr != nil {
		once = sync.Once{}
		initErr = nil
	}

	var err error
	once.Do(func() {
		client, e := dial(ctx, cfg)
		if e != nil {
			err = e
			initErr = e
			return
		}
		instance = client
	})

	return instance, err
}

// GetClient returns the shared client. Panics when Connect has not run yet.
func GetClient() minio.MinIO {
	mu.RLock()
	defer mu.RUnlock()

	if instance == nil {
		panic("MinIO client not initialized. Call Connect() first")
	}
	return instance
}

// HealthCheck probes MinIO through the shared client.
func HealthCheck(ctx context.Context) error {
	mu.RLock()
	defer mu.RUnlock()

	if instance == nil {
		return fmt.Errorf("MinIO client not initialized")
	}
	return instance.HealthCheck(ctx)
}

// Disconnect closes the client and resets the singleton so Connect can run
// again.
func Disconnect() error {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		if err := instance.Close(); err != nil {
			return err
		}
		instance = nil
		once = sync.Once{}
		initErr = nil
	}
	return nil
}
