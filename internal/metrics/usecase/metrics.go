package usecase

import (
	"context"
	"errors"

	"monitor-srv/internal/metrics"
	"monitor-srv/internal/model"
	"monitor-srv/pkg/reviewsrv"
)

func (uc *implUseCase) EntityMetrics(ctx context.Context, sc model.Scope, input metrics.EntityMetricsInput) (metrics.EntityMetricsOutput, error) {
	if input.EntityID == "" {
		return metrics.EntityMetricsOutput{}, metrics.ErrEntityIDRequired
	}

	// 1. Try the snapshot cache unless the caller wants fresh data
	if !input.ForceRefresh {
		cached, err := uc.cacheRepo.GetSnapshot(ctx, input.EntityID)
		if err == nil {
			uc.l.Debugf(ctx, "metrics.usecase.EntityMetrics: cache hit for entity %s", input.EntityID)
			return metrics.EntityMetricsOutput{Metrics: cached, CacheHit: true}, nil
		}
	}

	// 2. Fetch raw reviews from the review service
	reviews, err := uc.reviewSrv.FetchReviews(ctx, input.EntityID)
	if err != nil {
		if errors.Is(err, reviewsrv.ErrEntityNotFound) {
			return metrics.EntityMetricsOutput{}, metrics.ErrEntityNotFound
		}
		uc.l.Errorf(ctx, "metrics.usecase.EntityMetrics: FetchReviews failed for entity %s: %v", input.EntityID, err)

		// Upstream unreachable: fall back to the last snapshot so the
		// dashboard keeps showing stale data instead of an error.
		if input.ForceRefresh {
			if cached, cacheErr := uc.cacheRepo.GetSnapshot(ctx, input.EntityID); cacheErr == nil {
				return metrics.EntityMetricsOutput{Metrics: cached, CacheHit: true, Stale: true}, nil
			}
		}
		return metrics.EntityMetricsOutput{}, metrics.ErrFetchFailed
	}

	// 3. Normalize and cache the fresh snapshot
	m := metrics.Normalize(input.EntityID, reviews)
	if err := uc.cacheRepo.SaveSnapshot(ctx, m); err != nil {
		uc.l.Warnf(ctx, "metrics.usecase.EntityMetrics: SaveSnapshot failed for entity %s: %v", input.EntityID, err)
	}

	return metrics.EntityMetricsOutput{Metrics: m}, nil
}

func (uc *implUseCase) Rebuild(ctx context.Context, sc model.Scope, input metrics.RebuildInput) (metrics.EntityMetricsOutput, error) {
	if input.EntityID == "" {
		return metrics.EntityMetricsOutput{}, metrics.ErrEntityIDRequired
	}

	m := metrics.Normalize(input.EntityID, input.Reviews)
	if err := uc.cacheRepo.SaveSnapshot(ctx, m); err != nil {
		uc.l.Errorf(ctx, "metrics.usecase.Rebuild: SaveSnapshot failed for entity %s: %v", input.EntityID, err)
		return metrics.EntityMetricsOutput{}, err
	}

	uc.l.Infof(ctx, "metrics.usecase.Rebuild: rebuilt snapshot for entity %s from %d reviews", input.EntityID, len(input.Reviews))
	return metrics.EntityMetricsOutput{Metrics: m}, nil
}

func (uc *implUseCase) Invalidate(ctx context.Context, sc model.Scope, entityID string) error {
	if entityID == "" {
		return metrics.ErrEntityIDRequired
	}

	if err := uc.cacheRepo.DeleteSnapshot(ctx, entityID); err != nil {
		uc.l.Errorf(ctx, "metrics.usecase.Invalidate: DeleteSnapshot failed for entity %s: %v", entityID, err)
		return err
	}
	return nil
}
