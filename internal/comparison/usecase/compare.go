package usecase

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"monitor-srv/internal/comparison"
	"monitor-srv/internal/metrics"
	"monitor-srv/internal/model"
)

func (uc *implUseCase) Compare(ctx context.Context, sc model.Scope, input comparison.CompareInput) (comparison.CompareOutput, error) {
	if input.EntityIDA == "" || input.EntityIDB == "" {
		return comparison.CompareOutput{}, comparison.ErrEntityIDRequired
	}

	// 1. Fetch both sides concurrently. The group context cancels the
	// other fetch as soon as one side fails, so a half-built pair is
	// never returned out of order.
	var outA, outB metrics.EntityMetricsOutput

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		outA, err = uc.metricsUC.EntityMetrics(gctx, sc, metrics.EntityMetricsInput{
			EntityID:     input.EntityIDA,
			ForceRefresh: input.ForceRefresh,
		})
		return err
	})
	g.Go(func() error {
		var err error
		outB, err = uc.metricsUC.EntityMetrics(gctx, sc, metrics.EntityMetricsInput{
			EntityID:     input.EntityIDB,
			ForceRefresh: input.ForceRefresh,
		})
		return err
	})
	if err := g.Wait(); err != nil {
		if errors.Is(err, metrics.ErrEntityNotFound) {
			return comparison.CompareOutput{}, comparison.ErrEntityNotFound
		}
		uc.l.Errorf(ctx, "comparison.usecase.Compare: fetch failed for pair (%s, %s): %v", input.EntityIDA, input.EntityIDB, err)
		return comparison.CompareOutput{}, comparison.ErrFetchFailed
	}

	// 2. Build the comparison view
	result := comparison.Compare(&outA.Metrics, &outB.Metrics)

	return comparison.CompareOutput{
		Result: result,
		StaleA: outA.Stale,
		StaleB: outB.Stale,
	}, nil
}
