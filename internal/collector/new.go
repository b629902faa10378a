package collector

import (
	"monitor-srv/internal/comparison"
	"monitor-srv/internal/liverefresh"
	"monitor-srv/internal/metrics"
	"monitor-srv/internal/watchlist"
	"monitor-srv/pkg/log"
)

// Config tunes the collector.
type Config struct {
	// Concurrency caps the entity fan-out per round.
	Concurrency int
}

func DefaultConfig() Config {
	return Config{Concurrency: 4}
}

// Collector is the background loop that keeps every watched entity's
// metrics snapshot warm. It polls on the interval the live-refresh
// controller currently dictates, so an active refresh window tightens the
// cadence for the whole watchlist at once.
type Collector struct {
	l            log.Logger
	watchlistUC  watchlist.UseCase
	metricsUC    metrics.UseCase
	comparisonUC comparison.UseCase
	refreshUC    liverefresh.UseCase
	cfg          Config

	// lastWinner remembers the previous verdict per pinned pair so a lead
	// change is logged exactly once. Only the loop goroutine touches it.
	lastWinner map[string]*string
}

func New(l log.Logger, watchlistUC watchlist.UseCase, metricsUC metrics.UseCase, comparisonUC comparison.UseCase, refreshUC liverefresh.UseCase, cfg Config) *Collector {
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = DefaultConfig().Concurrency
	}

	return &Collector{
		l:            l,
		watchlistUC:  watchlistUC,
		metricsUC:    metricsUC,
		comparisonUC: comparisonUC,
		refreshUC:    refreshUC,
		cfg:          cfg,
		lastWinner:   make(map[string]*string),
	}
}
