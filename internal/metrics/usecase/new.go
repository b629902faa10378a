package usecase

import (
	"monitor-srv/internal/metrics"
	"monitor-srv/internal/metrics/repository"
	"monitor-srv/pkg/log"
	"monitor-srv/pkg/reviewsrv"
)

type implUseCase struct {
	l         log.Logger
	reviewSrv reviewsrv.IReview
	cacheRepo repository.CacheRepository
}

// New - Factory function
func New(l log.Logger, reviewSrv reviewsrv.IReview, cacheRepo repository.CacheRepository) metrics.UseCase {
	return &implUseCase{
		l:         l,
		reviewSrv: reviewSrv,
		cacheRepo: cacheRepo,
	}
}
