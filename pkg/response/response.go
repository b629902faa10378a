package response

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"monitor-srv/pkg/discord"
	pkgErrors "monitor-srv/pkg/errors"
	"monitor-srv/pkg/locale"
)

// cannedMsg resolves a canned envelope message in the request language.
func cannedMsg(ctx context.Context, key string) string {
	if m, ok := canned[locale.GetLang(ctx)]; ok {
		if s, ok := m[key]; ok {
			return s
		}
	}
	return canned[locale.EN][key]
}

// OK writes a 200 response with the standard envelope.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Resp{
		ErrorCode: CodeOK,
		Message:   cannedMsg(c.Request.Context(), msgOK),
		Data:      data,
	})
}

// Error writes an error response. HTTPError values keep their status code
// and message; anything else becomes a 500 and is reported to Discord when
// a notifier is provided.
func Error(c *gin.Context, err error, notifiers ...discord.IDiscord) {
	if httpErr, ok := err.(*pkgErrors.HTTPError); ok {
		c.JSON(httpErr.StatusCode, Resp{
			ErrorCode: httpErr.StatusCode,
			Message:   httpErr.Message,
		})
		return
	}

	notify(c, fmt.Sprintf("Unhandled error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err), notifiers...)
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   cannedMsg(c.Request.Context(), msgInternal),
	})
}

// ErrorWithMap resolves err through the mapping before writing the response.
func ErrorWithMap(c *gin.Context, err error, mapping ErrorMapping, notifiers ...discord.IDiscord) {
	if httpErr, ok := mapping[err]; ok {
		Error(c, httpErr, notifiers...)
		return
	}
	Error(c, err, notifiers...)
}

// Unauthorized writes a 401 response.
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Resp{
		ErrorCode: http.StatusUnauthorized,
		Message:   cannedMsg(c.Request.Context(), msgUnauthorized),
	})
}

// PanicError writes a 500 response for a recovered panic and reports it to
// Discord when a notifier is provided.
func PanicError(c *gin.Context, recovered any, notifiers ...discord.IDiscord) {
	notify(c, fmt.Sprintf("Panic on %s %s: %v", c.Request.Method, c.Request.URL.Path, recovered), notifiers...)
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   cannedMsg(c.Request.Context(), msgInternal),
	})
}

func notify(c *gin.Context, message string, notifiers ...discord.IDiscord) {
	for _, n := range notifiers {
		if n == nil {
			continue
		}
		// Fire and forget; notification failures must not affect the response.
		// Background context: the request context is gone once the handler returns.
		go func(n discord.IDiscord) {
			_ = n.ReportBug(context.Background(), message)
		}(n)
	}
}
