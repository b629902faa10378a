package repository

import (
	"context"

	"monitor-srv/internal/model"
	"monitor-srv/pkg/paginator"
)

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	Create(ctx context.Context, opt CreateOptions) (model.WatchedEntity, error)
	GetByID(ctx context.Context, id string) (model.WatchedEntity, error)
	GetByEntityID(ctx context.Context, entityID string) (model.WatchedEntity, error)
	List(ctx context.Context, opt ListOptions) ([]model.WatchedEntity, paginator.Paginator, error)
	ListAll(ctx context.Context) ([]model.WatchedEntity, error)
	UpdatePinnedPair(ctx context.Context, opt UpdatePinnedPairOptions) (model.WatchedEntity, error)
	Delete(ctx context.Context, id string) error
}
