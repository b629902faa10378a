package usecase

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"monitor-srv/internal/ingest"
	"monitor-srv/internal/ingest/repository"
	"monitor-srv/internal/metrics"
	"monitor-srv/internal/model"
)

// ProcessBatch runs a completed batch end to end and parks it in the DLQ
// when any step fails.
func (uc *implUseCase) ProcessBatch(ctx context.Context, input ingest.ProcessBatchInput) (ingest.ProcessBatchOutput, error) {
	output, err := uc.runBatch(ctx, input)
	if err != nil {
		uc.writeToDLQ(ctx, input, errorTypeFor(err), err.Error())
	}

	return output, err
}

// runBatch is the retry-safe core. It never touches the DLQ, so RetryFailed
// can re-drive an existing row without booking a second one.
func (uc *implUseCase) runBatch(ctx context.Context, input ingest.ProcessBatchInput) (ingest.ProcessBatchOutput, error) {
	startTime := time.Now()
	taskID := uuid.New().String()

	// Step 1: Validate input
	if input.EntityID == "" {
		return ingest.ProcessBatchOutput{}, ingest.ErrEntityIDRequired
	}

	// Step 2: Parse file URL
	bucket, objectName, err := uc.parseMinIOURL(input.FileURL)
	if err != nil {
		uc.l.Errorf(ctx, "ingest.usecase.ProcessBatch: Failed to parse MinIO URL: %v", err)
		uc.publishResult(ctx, uc.failureResult(taskID, input, err.Error()))
		return ingest.ProcessBatchOutput{}, ingest.ErrFileNotFound
	}

	// Step 3: Download file from MinIO
	reader, _, err := uc.minio.DownloadFile(ctx, bucket, objectName)
	if err != nil {
		uc.l.Errorf(ctx, "ingest.usecase.ProcessBatch: Failed to download file: %v", err)
		uc.publishResult(ctx, uc.failureResult(taskID, input, err.Error()))
		return ingest.ProcessBatchOutput{}, ingest.ErrFileDownloadFailed
	}
	defer reader.Close()

	// Step 4: Parse JSONL into raw reviews
	reviews, skipped, err := uc.parseJSONL(ctx, reader)
	if err != nil {
		uc.l.Errorf(ctx, "ingest.usecase.ProcessBatch: Failed to parse file: %v", err)
		uc.publishResult(ctx, uc.failureResult(taskID, input, err.Error()))
		return ingest.ProcessBatchOutput{}, ingest.ErrFileParseFailed
	}

	// The announced record count is advisory. A mismatch is worth a log
	// line but never fails the batch.
	if input.RecordCount > 0 && len(reviews)+skipped != input.RecordCount {
		uc.l.Warnf(ctx, "ingest.usecase.ProcessBatch: batch %s announced %d records, file has %d", input.BatchID, input.RecordCount, len(reviews)+skipped)
	}

	// Step 5: Rebuild the metrics snapshot from the batch
	if _, err := uc.metricsUC.Rebuild(ctx, model.Scope{}, metrics.RebuildInput{
		EntityID: input.EntityID,
		Reviews:  reviews,
	}); err != nil {
		uc.l.Errorf(ctx, "ingest.usecase.ProcessBatch: Failed to rebuild metrics for entity %s: %v", input.EntityID, err)
		uc.publishResult(ctx, uc.failureResult(taskID, input, err.Error()))
		return ingest.ProcessBatchOutput{}, ingest.ErrRebuildFailed
	}

	// Step 6: Publish result
	output := ingest.ProcessBatchOutput{
		TaskID:   taskID,
		EntityID: input.EntityID,
		Accepted: len(reviews),
		Skipped:  skipped,
		Duration: time.Since(startTime),
	}

	uc.publishResult(ctx, ingest.IngestResult{
		TaskID:      taskID,
		BatchID:     input.BatchID,
		EntityID:    input.EntityID,
		Status:      ingest.STATUS_COMPLETED,
		Accepted:    output.Accepted,
		Skipped:     output.Skipped,
		CompletedAt: time.Now(),
	})

	uc.l.Infof(ctx, "ingest.usecase.ProcessBatch: batch %s rebuilt entity %s from %d reviews (%d skipped) in %v",
		input.BatchID, input.EntityID, output.Accepted, output.Skipped, output.Duration)

	return output, nil
}

// parseJSONL parses a JSONL file. Malformed lines are skipped and counted,
// they never fail the whole batch.
func (uc *implUseCase) parseJSONL(ctx context.Context, reader io.Reader) ([]model.RawReview, int, error) {
	var reviews []model.RawReview
	scanner := bufio.NewScanner(reader)

	buf := make([]byte, 0, 1024*1024)
	scanner.Buffer(buf, 1024*1024)

	skipped := 0
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var review model.RawReview
		if err := json.Unmarshal(line, &review); err != nil {
			uc.l.Warnf(ctx, "ingest.usecase.ProcessBatch: Failed to parse line %d: %v", lineNum, err)
			skipped++
			continue
		}

		reviews = append(reviews, review)
	}

	if err := scanner.Err(); err != nil {
		return nil, 0, fmt.Errorf("scanner error: %w", err)
	}

	return reviews, skipped, nil
}

// parseMinIOURL parses the s3://bucket/path format batch locations use.
func (uc *implUseCase) parseMinIOURL(fileURL string) (bucket, objectName string, err error) {
	if len(fileURL) < 6 || fileURL[:5] != "s3://" {
		return "", "", fmt.Errorf("invalid MinIO URL format: %s", fileURL)
	}

	path := fileURL[5:]
	parts := strings.SplitN(path, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid MinIO URL format: %s", fileURL)
	}

	return parts[0], parts[1], nil
}

// writeToDLQ parks a failed batch for later retry. DLQ write failures are
// logged and swallowed so they never mask the original error.
func (uc *implUseCase) writeToDLQ(ctx context.Context, input ingest.ProcessBatchInput, errorType, errorMessage string) {
	payload, err := json.Marshal(input)
	if err != nil {
		uc.l.Warnf(ctx, "ingest.usecase.writeToDLQ: Failed to marshal payload for batch %s: %v", input.BatchID, err)
		payload = nil
	}

	var fileURL *string
	if input.FileURL != "" {
		fileURL = &input.FileURL
	}

	if _, err := uc.repo.CreateDLQ(ctx, repository.CreateDLQOptions{
		BatchID:      input.BatchID,
		FileURL:      fileURL,
		RawPayload:   payload,
		ErrorMessage: errorMessage,
		ErrorType:    errorType,
		MaxRetries:   ingest.DefaultMaxRetries,
	}); err != nil {
		uc.l.Warnf(ctx, "ingest.usecase.writeToDLQ: Failed to write DLQ for batch %s: %v", input.BatchID, err)
	}
}

func (uc *implUseCase) publishResult(ctx context.Context, result ingest.IngestResult) {
	if uc.producer == nil {
		return
	}

	if err := uc.producer.PublishIngestResult(ctx, result); err != nil {
		uc.l.Errorf(ctx, "ingest.usecase.publishResult: Failed to publish result for batch %s: %v", result.BatchID, err)
	}
}

func (uc *implUseCase) failureResult(taskID string, input ingest.ProcessBatchInput, msg string) ingest.IngestResult {
	return ingest.IngestResult{
		TaskID:       taskID,
		BatchID:      input.BatchID,
		EntityID:     input.EntityID,
		Status:       ingest.STATUS_FAILED,
		ErrorMessage: msg,
		CompletedAt:  time.Now(),
	}
}

func errorTypeFor(err error) string {
	switch {
	case errors.Is(err, ingest.ErrFileNotFound):
		return ingest.INVALID_URL
	case errors.Is(err, ingest.ErrFileDownloadFailed):
		return ingest.DOWNLOAD_ERROR
	case errors.Is(err, ingest.ErrFileParseFailed):
		return ingest.PARSE_ERROR
	case errors.Is(err, ingest.ErrRebuildFailed):
		return ingest.REBUILD_ERROR
	default:
		return ingest.PROCESS_ERROR
	}
}
