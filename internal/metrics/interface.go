package metrics

import (
	"context"

	"monitor-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// EntityMetrics returns the normalized sentiment snapshot for an entity,
	// serving from the Redis snapshot cache when possible.
	EntityMetrics(ctx context.Context, sc model.Scope, input EntityMetricsInput) (EntityMetricsOutput, error)

	// Rebuild normalizes an already-fetched review set and replaces the
	// cached snapshot. Used by the ingest consumer and the collector.
	Rebuild(ctx context.Context, sc model.Scope, input RebuildInput) (EntityMetricsOutput, error)

	// Invalidate drops the cached snapshot for an entity.
	Invalidate(ctx context.Context, sc model.Scope, entityID string) error
}
