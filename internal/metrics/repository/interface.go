package repository

import (
	"context"

	"monitor-srv/internal/model"
)

//go:generate mockery --name CacheRepository
type CacheRepository interface {
	GetSnapshot(ctx context.Context, entityID string) (model.EntityMetrics, error)
	SaveSnapshot(ctx context.Context, m model.EntityMetrics) error
	DeleteSnapshot(ctx context.Context, entityID string) error
}
