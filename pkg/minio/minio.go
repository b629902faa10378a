package minio

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
)

// Connect verifies the endpoint is reachable with the configured
// credentials. S3 has no dial step, so a bucket listing stands in.
func (m *implMinIO) Connect(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, err := m.client.ListBuckets(ctx); err != nil {
		m.connected = false
		return wrapErr(err, "connect")
	}
	m.connected = true
	return nil
}

// DownloadFile stats the object first, so a missing file fails before any
// bytes stream. The returned reader must be closed by the caller.
func (m *implMinIO) DownloadFile(ctx context.Context, bucket, object string) (io.ReadCloser, *ObjectMeta, error) {
	if bucket == "" {
		return nil, nil, NewInvalidInputError("bucket name is required")
	}
	if object == "" {
		return nil, nil, NewInvalidInputError("object name is required")
	}

	info, err := m.client.StatObject(ctx, bucket, object, minio.StatObjectOptions{})
	if err != nil {
		return nil, nil, wrapErr(err, "stat_object")
	}
	obj, err := m.client.GetObject(ctx, bucket, object, minio.GetObjectOptions{})
	if err != nil {
		return nil, nil, wrapErr(err, "get_object")
	}

	return obj, &ObjectMeta{
		ContentType:  info.ContentType,
		Size:         info.Size,
		ETag:         info.ETag,
		LastModified: info.LastModified,
	}, nil
}

func (m *implMinIO) HealthCheck(ctx context.Context) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.connected {
		return NewConnectionError(fmt.Errorf("not connected"))
	}
	if _, err := m.client.ListBuckets(ctx); err != nil {
		return wrapErr(err, "health_check")
	}
	return nil
}

// Close drops the connected flag. The underlying client holds no
// long-lived resources of its own.
func (m *implMinIO) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.connected = false
	return nil
}

// wrapErr maps minio-go error responses onto stable storage codes.
func wrapErr(err error, operation string) *StorageError {
	if err == nil {
		return nil
	}
	resp := minio.ToErrorResponse(err)
	switch resp.Code {
	case "NoSuchBucket":
		return &StorageError{Code: ErrCodeBucketNotFound, Message: "bucket not found", Operation: operation, Cause: err}
	case "NoSuchKey":
		return &StorageError{Code: ErrCodeObjectNotFound, Message: "object not found", Operation: operation, Cause: err}
	case "AccessDenied":
		return &StorageError{Code: ErrCodePermission, Message: "access denied", Operation: operation, Cause: err}
	case "":
		return NewConnectionError(err)
	default:
		return &StorageError{Code: ErrCodeConnection, Message: fmt.Sprintf("minio request failed: %s", resp.Code), Operation: operation, Cause: err}
	}
}
