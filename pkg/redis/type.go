package redis

import (
	"net"
	"strconv"

	goredis "github.com/redis/go-redis/v9"
)

// RedisConfig carries the connection settings for one Redis instance.
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// Addr renders host:port for the go-redis options.
func (c RedisConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

type redisImpl struct {
	client *goredis.Client
}
