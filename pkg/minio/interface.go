package minio

import (
	"context"
	"io"
	"net/http"
	"strings"

	"monitor-srv/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinIO reads batch files out of object storage. The review gateway owns
// the write side; this service only ever downloads.
type MinIO interface {
	Connect(ctx context.Context) error
	DownloadFile(ctx context.Context, bucket, object string) (io.ReadCloser, *ObjectMeta, error)
	HealthCheck(ctx context.Context) error
	Close() error
}

// NewMinIO builds a client for the configured endpoint. Connect must run
// before the first download.
func NewMinIO(cfg *config.MinIOConfig) (MinIO, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:     credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure:    cfg.UseSSL,
		Region:    cfg.Region,
		Transport: transport(),
	})
	if err != nil {
		return nil, err
	}

	return &implMinIO{client: client, config: cfg}, nil
}

func transport() *http.Transport {
	return &http.Transport{
		MaxIdleConns:        maxIdleConns,
		MaxIdleConnsPerHost: maxIdleConnsPerHost,
		IdleConnTimeout:     idleConnTimeout,
		DisableCompression:  disableCompression,
		DisableKeepAlives:   disableKeepAlives,
	}
}

func validateConfig(cfg *config.MinIOConfig) error {
	switch {
	case cfg.Endpoint == "":
		return NewInvalidInputError("endpoint is required")
	case cfg.AccessKey == "":
		return NewInvalidInputError("access key is required")
	case cfg.SecretKey == "":
		return NewInvalidInputError("secret key is required")
	case cfg.Region == "":
		return NewInvalidInputError("region is required")
	case cfg.Bucket == "":
		return NewInvalidInputError("bucket is required")
	}
	if !strings.Contains(cfg.Endpoint, ":") {
		cfg.Endpoint += DefaultEndpointPort
	}
	return nil
}
