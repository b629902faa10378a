package redis

import (
	"monitor-srv/internal/metrics/repository"
	"monitor-srv/pkg/log"
	pkgRedis "monitor-srv/pkg/redis"
)

type implCacheRepository struct {
	redis pkgRedis.IRedis
	l     log.Logger
}

// New - Factory
func New(redis pkgRedis.IRedis, l log.Logger) repository.CacheRepository {
	return &implCacheRepository{
		redis: redis,
		l:     l,
	}
}
