package reviewsrv

import (
	"fmt"
	"sync"
	"time"

	"monitor-srv/config"
	pkghttp "monitor-srv/pkg/http"
	"monitor-srv/pkg/reviewsrv"
)

var (
	instance reviewsrv.IReview
	once     sync.Once
	mu       sync.RWMutex
)

// Connect initializes the Review Service client using singleton pattern.
func Connect(cfg config.ReviewConfig) reviewsrv.IReview {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		return instance
	}

	once.Do(func() {
		clientCfg := reviewsrv.ReviewConfig{BaseURL: cfg.URL}
		if cfg.Timeout > 0 {
			clientCfg.HTTPClient = pkghttp.NewClient(pkghttp.ClientConfig{
				Timeout:   time.Duration(cfg.Timeout) * time.Second,
				Retries:   reviewsrv.DefaultRetries,
				RetryWait: reviewsrv.DefaultRetryWait,
			})
		}
		instance = reviewsrv.New(clientCfg)
	})

	return instance
}

// GetClient returns the singleton Review Service client instance.
func GetClient() reviewsrv.IReview {
	mu.RLock()
	defer mu.RUnlock()

	if instance == nil {
		panic("Review client not initialized. Call Connect() first")
	}
	return instance
}

// HealthCheck checks if Review Service client is initialized
func HealthCheck() error {
	mu.RLock()
	defer mu.RUnlock()

	if instance == nil {
		return fmt.Errorf("Review client not initialized")
	}
	return nil
}
