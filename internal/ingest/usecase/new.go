package usecase

import (
	"monitor-srv/internal/ingest"
	"monitor-srv/internal/ingest/repository"
	"monitor-srv/internal/metrics"
	"monitor-srv/pkg/log"
	"monitor-srv/pkg/minio"
)

type implUseCase struct {
	l         log.Logger
	repo      repository.PostgresRepository
	minio     minio.MinIO
	metricsUC metrics.UseCase
	producer  ingest.Producer
}

// New creates the ingest usecase. producer may be nil, in which case
// results are processed but not published.
func New(l log.Logger, repo repository.PostgresRepository, minio minio.MinIO, metricsUC metrics.UseCase, producer ingest.Producer) ingest.UseCase {
	return &implUseCase{
		l:         l,
		repo:      repo,
		minio:     minio,
		metricsUC: metricsUC,
		producer:  producer,
	}
}
