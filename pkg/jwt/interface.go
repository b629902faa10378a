package jwt

import (
	"fmt"

	"monitor-srv/pkg/scope"
)

// IManager verifies bearer tokens issued by the auth service. This service
// never mints tokens itself. Implementations are safe for concurrent use.
type IManager interface {
	Verify(token string) (scope.Payload, error)
}

// New builds a verifying manager. The secret must be long enough for HS256.
func New(cfg Config) (IManager, error) {
	if len(cfg.SecretKey) < MinSecretKeyLen {
		return nil, fmt.Errorf("secret key must be at least %d characters, got %d", MinSecretKeyLen, len(cfg.SecretKey))
	}

	return &managerImpl{
		secretKey: []byte(cfg.SecretKey),
		issuer:    cfg.Issuer,
		audience:  cfg.Audience,
	}, nil
}
