package usecase

import (
	"monitor-srv/internal/metrics"
	"monitor-srv/internal/watchlist"
	"monitor-srv/internal/watchlist/repository"
	"monitor-srv/pkg/log"
)

type implUseCase struct {
	l         log.Logger
	repo      repository.PostgresRepository
	metricsUC metrics.UseCase
}

// New - Factory
func New(l log.Logger, repo repository.PostgresRepository, metricsUC metrics.UseCase) watchlist.UseCase {
	return &implUseCase{
		l:         l,
		repo:      repo,
		metricsUC: metricsUC,
	}
}
