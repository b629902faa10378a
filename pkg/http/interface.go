package http

import "context"

// IClient is a JSON-speaking HTTP client with retry. Bodies are marshaled
// for the caller and responses come back raw with the status code.
// Implementations are safe for concurrent use.
type IClient interface {
	Get(ctx context.Context, url string, headers map[string]string) ([]byte, int, error)
	Post(ctx context.Context, url string, body interface{}, headers map[string]string) ([]byte, int, error)
	Patch(ctx context.Context, url string, body interface{}, headers map[string]string) ([]byte, int, error)
	Delete(ctx context.Context, url string, headers map[string]string) ([]byte, int, error)
}

// NewClient builds a client from cfg. A zero Timeout means no timeout.
func NewClient(cfg ClientConfig) IClient {
	return &clientImpl{
		client: defaultHTTPClient(cfg.Timeout),
		config: cfg,
	}
}
