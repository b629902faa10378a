package middleware

import (
	"github.com/gin-gonic/gin"

	"monitor-srv/pkg/discord"
	"monitor-srv/pkg/log"
	"monitor-srv/pkg/response"
)

// Recovery converts handler panics into 500 responses, logging each one and
// raising a Discord notification. The delivery error mappers panic on errors
// they cannot classify, and those land here.
func Recovery(logger log.Logger, discordClient discord.IDiscord) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}

			logger.Errorf(c.Request.Context(), "middleware.Recovery: panic %v on %s %s",
				r, c.Request.Method, c.Request.URL.Path)

			response.PanicError(c, r, discordClient)
			c.Abort()
		}()

		c.Next()
	}
}
