package ingest

import (
	"context"

	"monitor-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// ProcessBatch downloads a completed review batch, rebuilds the
	// entity's metrics snapshot from it, and publishes an ingest result.
	// Failures are parked in the DLQ so RetryFailed can re-drive them.
	ProcessBatch(ctx context.Context, input ProcessBatchInput) (ProcessBatchOutput, error)
	// RetryFailed re-drives unresolved DLQ rows that still have retry
	// budget left.
	RetryFailed(ctx context.Context, sc model.Scope, input RetryFailedInput) (RetryFailedOutput, error)
}

//go:generate mockery --name Producer
type Producer interface {
	PublishIngestResult(ctx context.Context, result IngestResult) error
}
