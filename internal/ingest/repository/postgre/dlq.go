package postgre

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"monitor-srv/internal/ingest/repository"
	"monitor-srv/internal/model"
)

// CreateDLQ inserts a dead letter record for a batch that failed to ingest.
func (r *implRepository) CreateDLQ(ctx context.Context, opt repository.CreateDLQOptions) (model.IngestDLQ, error) {
	now := time.Now()

	dlq := model.IngestDLQ{
		ID:           uuid.New().String(),
		BatchID:      opt.BatchID,
		FileURL:      opt.FileURL,
		RawPayload:   opt.RawPayload,
		ErrorMessage: opt.ErrorMessage,
		ErrorType:    opt.ErrorType,
		RetryCount:   0,
		MaxRetries:   opt.MaxRetries,
		Resolved:     false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	var fileURL sql.NullString
	if dlq.FileURL != nil {
		fileURL = sql.NullString{String: *dlq.FileURL, Valid: true}
	}

	query := `
		INSERT INTO monitor.ingest_dlq (id, batch_id, file_url, raw_payload, error_message, error_type, retry_count, max_retries, resolved, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.db.ExecContext(ctx, query,
		dlq.ID, dlq.BatchID, fileURL, dlq.RawPayload, dlq.ErrorMessage, dlq.ErrorType,
		dlq.RetryCount, dlq.MaxRetries, dlq.Resolved, dlq.CreatedAt, dlq.UpdatedAt)
	if err != nil {
		r.l.Errorf(ctx, "ingest.repository.postgre.CreateDLQ: Failed to insert DLQ: %v", err)
		return model.IngestDLQ{}, repository.ErrFailedToInsert
	}

	return dlq, nil
}

// ListRetryable returns unresolved records that still have retry budget,
// oldest first.
func (r *implRepository) ListRetryable(ctx context.Context, limit int) ([]model.IngestDLQ, error) {
	query := `
		SELECT id, batch_id, file_url, raw_payload, error_message, error_type, retry_count, max_retries, resolved, created_at, updated_at
		FROM monitor.ingest_dlq
		WHERE resolved = false AND retry_count < max_retries
		ORDER BY created_at ASC
		LIMIT $1`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		r.l.Errorf(ctx, "ingest.repository.postgre.ListRetryable: Failed to list DLQ: %v", err)
		return nil, repository.ErrFailedToList
	}
	defer rows.Close()

	var dlqs []model.IngestDLQ
	for rows.Next() {
		var dlq model.IngestDLQ
		var fileURL sql.NullString

		if err := rows.Scan(&dlq.ID, &dlq.BatchID, &fileURL, &dlq.RawPayload, &dlq.ErrorMessage, &dlq.ErrorType,
			&dlq.RetryCount, &dlq.MaxRetries, &dlq.Resolved, &dlq.CreatedAt, &dlq.UpdatedAt); err != nil {
			r.l.Errorf(ctx, "ingest.repository.postgre.ListRetryable: Failed to scan DLQ: %v", err)
			return nil, repository.ErrFailedToList
		}

		if fileURL.Valid {
			dlq.FileURL = &fileURL.String
		}

		dlqs = append(dlqs, dlq)
	}

	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "ingest.repository.postgre.ListRetryable: Failed to iterate DLQ rows: %v", err)
		return nil, repository.ErrFailedToList
	}

	return dlqs, nil
}

// IncrementRetry bumps the retry counter and records the latest error.
func (r *implRepository) IncrementRetry(ctx context.Context, opt repository.IncrementRetryOptions) error {
	query := `
		UPDATE monitor.ingest_dlq
		SET retry_count = retry_count + 1, error_message = $1, updated_at = $2
		WHERE id = $3`

	if _, err := r.db.ExecContext(ctx, query, opt.ErrorMessage, time.Now(), opt.ID); err != nil {
		r.l.Errorf(ctx, "ingest.repository.postgre.IncrementRetry: Failed to update DLQ %s: %v", opt.ID, err)
		return repository.ErrFailedToUpdate
	}

	return nil
}

// MarkResolved retires a record so it is never retried again.
func (r *implRepository) MarkResolved(ctx context.Context, id string) error {
	query := `
		UPDATE monitor.ingest_dlq
		SET resolved = true, updated_at = $1
		WHERE id = $2`

	if _, err := r.db.ExecContext(ctx, query, time.Now(), id); err != nil {
		r.l.Errorf(ctx, "ingest.repository.postgre.MarkResolved: Failed to update DLQ %s: %v", id, err)
		return repository.ErrFailedToMarkResolved
	}

	return nil
}
