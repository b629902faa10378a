package usecase

import (
	"sync"
	"time"

	"monitor-srv/internal/liverefresh"
	"monitor-srv/internal/model"
	"monitor-srv/pkg/log"
	"monitor-srv/pkg/reviewsrv"
)

// Config - Controller tuning
type Config struct {
	// Window is the shared auto-revert window armed on activation. The
	// backing analysis job is fire-and-forget, so this is the safety net
	// that guarantees aggressive polling always ends.
	Window time.Duration
	// TriggerStagger is the fixed delay between trigger dispatches inside
	// one activation batch.
	TriggerStagger time.Duration
	IdleInterval   time.Duration
	ActiveInterval time.Duration
}

// DefaultConfig - Default tuning
func DefaultConfig() Config {
	return Config{
		Window:         30 * time.Second,
		TriggerStagger: 100 * time.Millisecond,
		IdleInterval:   60 * time.Second,
		ActiveInterval: 5 * time.Second,
	}
}

type implUseCase struct {
	l         log.Logger
	reviewSrv reviewsrv.IReview
	cfg       Config

	mu          sync.Mutex
	mode        model.RefreshMode
	subjects    []string
	awaiting    map[string]struct{}
	activatedAt time.Time
	revertAt    time.Time
	revertTimer *time.Timer
	// generation guards against a stale timer or dispatch goroutine from a
	// previous activation touching a newer one.
	generation uint64
}

// New - Factory function
func New(l log.Logger, reviewSrv reviewsrv.IReview, cfg Config) liverefresh.UseCase {
	def := DefaultConfig()
	if cfg.Window <= 0 {
		cfg.Window = def.Window
	}
	if cfg.TriggerStagger <= 0 {
		cfg.TriggerStagger = def.TriggerStagger
	}
	if cfg.IdleInterval <= 0 {
		cfg.IdleInterval = def.IdleInterval
	}
	if cfg.ActiveInterval <= 0 {
		cfg.ActiveInterval = def.ActiveInterval
	}

	return &implUseCase{
		l:         l,
		reviewSrv: reviewSrv,
		cfg:       cfg,
		mode:      model.RefreshModeIdle,
	}
}
