package discord

import (
	"net/http"
	"time"
)

const (
	// webhookBaseURL is the Discord webhook API endpoint.
	webhookBaseURL = "https://discord.com/api/webhooks"

	// DefaultTimeout is the default HTTP timeout for webhook calls.
	DefaultTimeout = 10 * time.Second
	// DefaultRetryCount is the default number of retries.
	DefaultRetryCount = 3
	// DefaultRetryDelay is the default wait between retries.
	DefaultRetryDelay = 1 * time.Second
	// DefaultUsername is the bot name shown on messages.
	DefaultUsername = "SMAP Bot"
)

// Embed colors per message type.
const (
	colorInfo    = 0x3498DB
	colorSuccess = 0x2ECC71
	colorWarning = 0xE67E22
	colorError   = 0xE74C3C
)

// DefaultConfig returns the default Discord service configuration.
func DefaultConfig() Config {
	return Config{
		Timeout:         DefaultTimeout,
		RetryCount:      DefaultRetryCount,
		RetryDelay:      DefaultRetryDelay,
		DefaultUsername: DefaultUsername,
	}
}

func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

func embedColor(t MessageType) int {
	switch t {
	case MessageTypeSuccess:
		return colorSuccess
	case MessageTypeWarning:
		return colorWarning
	case MessageTypeError:
		return colorError
	default:
		return colorInfo
	}
}
