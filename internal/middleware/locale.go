package middleware

import (
	"github.com/gin-gonic/gin"

	"monitor-srv/pkg/locale"
)

// Locale stores the request language in the context so localized messages can
// pick it up. Unknown or missing lang headers fall back to the default
// language inside ParseLang, so every request carries a usable locale.
func (m Middleware) Locale() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := locale.ParseLang(c.GetHeader("lang"))

		ctx := locale.SetLocaleToContext(c.Request.Context(), lang)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
