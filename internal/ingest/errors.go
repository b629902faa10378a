package ingest

import "errors"

var (
	ErrEntityIDRequired   = errors.New("ingest: entity id is required")
	ErrFileNotFound       = errors.New("ingest: file not found")
	ErrFileDownloadFailed = errors.New("ingest: file download failed")
	ErrFileParseFailed    = errors.New("ingest: file parse failed")
	ErrRebuildFailed      = errors.New("ingest: metrics rebuild failed")
	ErrStoreFailed        = errors.New("ingest: dlq store operation failed")
)
