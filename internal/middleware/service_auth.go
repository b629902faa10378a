package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
)

// ServiceAuth authenticates sibling services by the X-Service-Key header. The
// header carries an encrypted "serviceName:key" pair, where the name selects
// the expected key from config so each caller can be rotated on its own.
func (m Middleware) ServiceAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		encryptedKey := c.GetHeader("X-Service-Key")
		if encryptedKey == "" {
			abortUnauthorized(c)
			return
		}

		serviceName, ok := m.verifyServiceKey(c.Request.Context(), encryptedKey)
		if !ok {
			abortUnauthorized(c)
			return
		}

		// Keep the caller's name around for audit logging downstream.
		c.Set("service_name", serviceName)
		c.Next()
	}
}

// verifyServiceKey decrypts the presented key and checks it against the
// configured key for the named service. Key material never reaches the logs.
func (m Middleware) verifyServiceKey(ctx context.Context, encryptedKey string) (string, bool) {
	decrypted, err := m.encrypter.Decrypt(encryptedKey)
	if err != nil {
		m.l.Errorf(ctx, "middleware.ServiceAuth: decrypt failed: %v", err)
		return "", false
	}

	serviceName, key, found := strings.Cut(decrypted, ":")
	if !found {
		m.l.Errorf(ctx, "middleware.ServiceAuth: malformed key, want serviceName:key")
		return "", false
	}

	expected, ok := m.config.InternalConfig.ServiceKeys[serviceName]
	if !ok {
		m.l.Errorf(ctx, "middleware.ServiceAuth: unknown service %s", serviceName)
		return "", false
	}

	if key != expected {
		m.l.Errorf(ctx, "middleware.ServiceAuth: key mismatch for service %s", serviceName)
		return "", false
	}

	return serviceName, true
}
