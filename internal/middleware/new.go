package middleware

import (
	"monitor-srv/config"
	"monitor-srv/pkg/encrypter"
	"monitor-srv/pkg/log"
	"monitor-srv/pkg/scope"
)

// Middleware bundles the request guards for the monitor API: Auth for the
// dashboard routes, InternalAuth for the ingest retry endpoint, ServiceAuth
// for keyed service-to-service calls, and Locale.
type Middleware struct {
	l           log.Logger
	jwtManager  scope.Manager
	internalKey string
	encrypter   encrypter.Encrypter

	cookieConfig config.CookieConfig
	config       *config.Config
}

func New(l log.Logger, jwtManager scope.Manager, cookieConfig config.CookieConfig, internalKey string, cfg *config.Config, enc encrypter.Encrypter) Middleware {
	return Middleware{
		l:            l,
		jwtManager:   jwtManager,
		internalKey:  internalKey,
		encrypter:    enc,
		cookieConfig: cookieConfig,
		config:       cfg,
	}
}
