package reviewsrv

import pkghttp "monitor-srv/pkg/http"

// ReviewConfig holds configuration for the Review Service client.
type ReviewConfig struct {
	BaseURL    string
	HTTPClient pkghttp.IClient
}

// CreateAlertInput is the payload for creating an alert upstream.
type CreateAlertInput struct {
	EntityID string `json:"entity_id"`
	Type     string `json:"type"`
	Severity string `json:"severity"`
	Title    string `json:"title"`
	Message  string `json:"message"`
}

// reviewImpl implements IReview.
type reviewImpl struct {
	baseURL    string
	httpClient pkghttp.IClient
}
