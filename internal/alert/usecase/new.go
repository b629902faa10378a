package usecase

import (
	"sync"
	"time"

	"monitor-srv/internal/alert"
	"monitor-srv/internal/model"
	"monitor-srv/pkg/log"
	"monitor-srv/pkg/reviewsrv"
)

// Config - Store tuning
type Config struct {
	// RefreshInterval is the cadence of the authoritative refresh loop.
	RefreshInterval time.Duration
	// DeleteGrace bounds how long a pending marker may outlive its remote
	// call. A confirmed delete keeps hiding its id from stale refreshes
	// for at most this long.
	DeleteGrace time.Duration
}

// DefaultConfig - Default tuning
func DefaultConfig() Config {
	return Config{
		RefreshInterval: 5 * time.Second,
		DeleteGrace:     30 * time.Second,
	}
}

type pendingKey struct {
	alertID int64
	kind    model.AlertMutation
}

type pendingMarker struct {
	createdAt time.Time
	// provisional holds the locally spliced record for create markers so a
	// refresh arriving before the remote create finishes keeps it visible.
	provisional *model.Alert
}

type implUseCase struct {
	l         log.Logger
	reviewSrv reviewsrv.IReview
	notifier  alert.Notifier
	cfg       Config

	mu      sync.Mutex
	alerts  []model.Alert
	pending map[pendingKey]pendingMarker
	// nextProvID walks downward so provisional records never collide with
	// server-assigned ids.
	nextProvID int64
	// knownCritical tracks critical alerts already fanned out to the
	// notification exchange.
	knownCritical map[int64]struct{}
	refreshedAt   time.Time
}

// New - Factory function. The notifier may be nil when crisis fan-out is
// not wired (tests, local runs without RabbitMQ).
func New(l log.Logger, reviewSrv reviewsrv.IReview, notifier alert.Notifier, cfg Config) alert.UseCase {
	def := DefaultConfig()
	if cfg.RefreshInterval <= 0 {
		cfg.RefreshInterval = def.RefreshInterval
	}
	if cfg.DeleteGrace <= 0 {
		cfg.DeleteGrace = def.DeleteGrace
	}

	return &implUseCase{
		l:             l,
		reviewSrv:     reviewSrv,
		notifier:      notifier,
		cfg:           cfg,
		pending:       make(map[pendingKey]pendingMarker),
		knownCritical: make(map[int64]struct{}),
	}
}
