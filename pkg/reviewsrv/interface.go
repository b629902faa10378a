package reviewsrv

import (
	"context"

	"monitor-srv/internal/model"
)

// IReview defines the interface for Review Service API client.
// Implementations are safe for concurrent use.
type IReview interface {
	// FetchReviews returns the analyzed reviews currently stored for an entity.
	FetchReviews(ctx context.Context, entityID string) ([]model.RawReview, error)
	// TriggerAnalysis starts an asynchronous analysis job for an entity.
	// The job is fire-and-forget; no handle or completion callback exists.
	TriggerAnalysis(ctx context.Context, entityID string) error

	ListAlerts(ctx context.Context) ([]model.Alert, error)
	CreateAlert(ctx context.Context, input CreateAlertInput) (*model.Alert, error)
	MarkAlertRead(ctx context.Context, alertID int64) error
	ResolveAlert(ctx context.Context, alertID int64) error
	DeleteAlert(ctx context.Context, alertID int64) error
}

// New creates a new Review Service client. Returns the interface.
func New(cfg ReviewConfig) IReview {
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = defaultHTTPClient()
	}
	return &reviewImpl{
		baseURL:    cfg.BaseURL,
		httpClient: cfg.HTTPClient,
	}
}
