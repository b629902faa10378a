package repository

import (
	"context"

	"monitor-srv/internal/model"
)

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	CreateDLQ(ctx context.Context, opt CreateDLQOptions) (model.IngestDLQ, error)
	ListRetryable(ctx context.Context, limit int) ([]model.IngestDLQ, error)
	IncrementRetry(ctx context.Context, opt IncrementRetryOptions) error
	MarkResolved(ctx context.Context, id string) error
}
