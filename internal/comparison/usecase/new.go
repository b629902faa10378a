package usecase

import (
	"monitor-srv/internal/comparison"
	"monitor-srv/internal/metrics"
	"monitor-srv/pkg/log"
)

type implUseCase struct {
	l         log.Logger
	metricsUC metrics.UseCase
}

// New - Factory function
func New(l log.Logger, metricsUC metrics.UseCase) comparison.UseCase {
	return &implUseCase{
		l:         l,
		metricsUC: metricsUC,
	}
}
