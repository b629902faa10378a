package middleware

import (
	"github.com/gin-gonic/gin"

	"monitor-srv/pkg/response"
	"monitor-srv/pkg/scope"
)

const bearerPrefix = "Bearer "

// tokenFromHeader returns the Authorization header value with any Bearer
// prefix stripped. Callers that send the raw token are accepted as well.
func tokenFromHeader(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if len(header) > len(bearerPrefix) && header[:len(bearerPrefix)] == bearerPrefix {
		return header[len(bearerPrefix):]
	}

	return header
}

func abortUnauthorized(c *gin.Context) {
	response.Unauthorized(c)
	c.Abort()
}

// Auth verifies the caller's JWT and loads the resulting scope into the
// request context for the handlers downstream. The token comes from the
// Authorization header, with the session cookie as a fallback for browser
// clients.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := tokenFromHeader(c)
		if token == "" {
			if cookie, err := c.Cookie(m.cookieConfig.Name); err == nil {
				token = cookie
			}
		}

		if token == "" {
			abortUnauthorized(c)
			return
		}

		payload, err := m.jwtManager.Verify(token)
		if err != nil {
			abortUnauthorized(c)
			return
		}

		ctx := scope.SetPayloadToContext(c.Request.Context(), payload)
		ctx = scope.SetScopeToContext(ctx, scope.NewScope(payload))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// InternalAuth gates service-to-service endpoints behind the shared internal
// key, read from the Authorization header as either "Bearer <key>" or the raw
// key. An unset key rejects every call.
func (m Middleware) InternalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := tokenFromHeader(c)
		if m.internalKey == "" || token != m.internalKey {
			abortUnauthorized(c)
			return
		}

		c.Next()
	}
}
