package usecase

import (
	"context"
	"encoding/json"
	"time"

	"monitor-srv/internal/ingest"
	"monitor-srv/internal/ingest/repository"
	"monitor-srv/internal/model"
)

// RetryFailed re-drives unresolved DLQ rows through the batch pipeline.
// Rows that succeed are resolved, rows that fail again have their retry
// counter bumped and drop out once the budget is spent.
func (uc *implUseCase) RetryFailed(ctx context.Context, sc model.Scope, input ingest.RetryFailedInput) (ingest.RetryFailedOutput, error) {
	startTime := time.Now()

	limit := input.Limit
	if limit <= 0 {
		limit = ingest.DefaultRetryLimit
	}

	rows, err := uc.repo.ListRetryable(ctx, limit)
	if err != nil {
		uc.l.Errorf(ctx, "ingest.usecase.RetryFailed: Failed to list retryable DLQ rows: %v", err)
		return ingest.RetryFailedOutput{}, ingest.ErrStoreFailed
	}

	var succeeded, failed int
	for _, row := range rows {
		var batchInput ingest.ProcessBatchInput
		if err := json.Unmarshal(row.RawPayload, &batchInput); err != nil {
			// A payload that never unmarshals will never succeed. Resolve it
			// so it stops clogging the queue.
			uc.l.Warnf(ctx, "ingest.usecase.RetryFailed: undecodable payload for DLQ %s, resolving: %v", row.ID, err)
			if rerr := uc.repo.MarkResolved(ctx, row.ID); rerr != nil {
				uc.l.Warnf(ctx, "ingest.usecase.RetryFailed: Failed to resolve DLQ %s: %v", row.ID, rerr)
			}
			failed++
			continue
		}

		if _, err := uc.runBatch(ctx, batchInput); err != nil {
			failed++
			if rerr := uc.repo.IncrementRetry(ctx, repository.IncrementRetryOptions{
				ID:           row.ID,
				ErrorMessage: err.Error(),
			}); rerr != nil {
				uc.l.Warnf(ctx, "ingest.usecase.RetryFailed: Failed to bump retry count for DLQ %s: %v", row.ID, rerr)
			}
			continue
		}

		succeeded++
		if err := uc.repo.MarkResolved(ctx, row.ID); err != nil {
			uc.l.Warnf(ctx, "ingest.usecase.RetryFailed: Failed to resolve DLQ %s: %v", row.ID, err)
		}
	}

	output := ingest.RetryFailedOutput{
		TotalRetried: len(rows),
		Succeeded:    succeeded,
		Failed:       failed,
		Duration:     time.Since(startTime),
	}

	uc.l.Infof(ctx, "ingest.usecase.RetryFailed: retried %d DLQ rows, %d succeeded, %d failed in %v",
		output.TotalRetried, output.Succeeded, output.Failed, output.Duration)

	return output, nil
}
