package reviewsrv

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"monitor-srv/internal/model"
	pkghttp "monitor-srv/pkg/http"
)

func defaultHTTPClient() pkghttp.IClient {
	return pkghttp.NewClient(pkghttp.ClientConfig{
		Timeout:   DefaultTimeout,
		Retries:   DefaultRetries,
		RetryWait: DefaultRetryWait,
	})
}

// FetchReviews retrieves the analyzed reviews for an entity.
func (c *reviewImpl) FetchReviews(ctx context.Context, entityID string) ([]model.RawReview, error) {
	url := fmt.Sprintf("%s%s/%s/reviews", c.baseURL, PathEntities, entityID)

	body, statusCode, err := c.httpClient.Get(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reviews: %w", err)
	}

	if statusCode == http.StatusNotFound {
		return nil, ErrEntityNotFound
	}
	if statusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", statusCode)
	}

	var reviews []model.RawReview
	if err := json.Unmarshal(body, &reviews); err != nil {
		return nil, fmt.Errorf("failed to unmarshal reviews: %w", err)
	}

	return reviews, nil
}

// TriggerAnalysis starts a backend analysis job for an entity. The service
// acknowledges with 202 before the job runs; there is nothing to wait on.
func (c *reviewImpl) TriggerAnalysis(ctx context.Context, entityID string) error {
	url := fmt.Sprintf("%s%s/trigger", c.baseURL, PathAnalysis)

	payload := map[string]string{"entity_id": entityID}
	_, statusCode, err := c.httpClient.Post(ctx, url, payload, nil)
	if err != nil {
		return fmt.Errorf("failed to trigger analysis: %w", err)
	}

	if statusCode != http.StatusOK && statusCode != http.StatusAccepted {
		return fmt.Errorf("unexpected status code: %d", statusCode)
	}

	return nil
}

// ListAlerts retrieves the authoritative alert list.
func (c *reviewImpl) ListAlerts(ctx context.Context) ([]model.Alert, error) {
	url := fmt.Sprintf("%s%s", c.baseURL, PathAlerts)

	body, statusCode, err := c.httpClient.Get(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list alerts: %w", err)
	}

	if statusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", statusCode)
	}

	var alerts []model.Alert
	if err := json.Unmarshal(body, &alerts); err != nil {
		return nil, fmt.Errorf("failed to unmarshal alerts: %w", err)
	}

	return alerts, nil
}

// CreateAlert creates an alert upstream and returns the stored record.
func (c *reviewImpl) CreateAlert(ctx context.Context, input CreateAlertInput) (*model.Alert, error) {
	url := fmt.Sprintf("%s%s", c.baseURL, PathAlerts)

	body, statusCode, err := c.httpClient.Post(ctx, url, input, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create alert: %w", err)
	}

	if statusCode != http.StatusOK && statusCode != http.StatusCreated {
		return nil, fmt.Errorf("unexpected status code: %d", statusCode)
	}

	var alert model.Alert
	if err := json.Unmarshal(body, &alert); err != nil {
		return nil, fmt.Errorf("failed to unmarshal alert: %w", err)
	}

	return &alert, nil
}

// MarkAlertRead marks an alert as read.
func (c *reviewImpl) MarkAlertRead(ctx context.Context, alertID int64) error {
	url := fmt.Sprintf("%s%s/%d/read", c.baseURL, PathAlerts, alertID)
	return c.patchAlert(ctx, url, "failed to mark alert read")
}

// ResolveAlert resolves an alert. Resolution is terminal upstream.
func (c *reviewImpl) ResolveAlert(ctx context.Context, alertID int64) error {
	url := fmt.Sprintf("%s%s/%d/resolve", c.baseURL, PathAlerts, alertID)
	return c.patchAlert(ctx, url, "failed to resolve alert")
}

// DeleteAlert deletes an alert. A 404 counts as success so retried deletes
// stay idempotent.
func (c *reviewImpl) DeleteAlert(ctx context.Context, alertID int64) error {
	url := fmt.Sprintf("%s%s/%d", c.baseURL, PathAlerts, alertID)

	_, statusCode, err := c.httpClient.Delete(ctx, url, nil)
	if err != nil {
		return fmt.Errorf("failed to delete alert: %w", err)
	}

	if statusCode != http.StatusOK && statusCode != http.StatusNoContent && statusCode != http.StatusNotFound {
		return fmt.Errorf("unexpected status code: %d", statusCode)
	}

	return nil
}

func (c *reviewImpl) patchAlert(ctx context.Context, url, failMsg string) error {
	_, statusCode, err := c.httpClient.Patch(ctx, url, nil, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", failMsg, err)
	}

	if statusCode == http.StatusNotFound {
		return ErrAlertNotFound
	}
	if statusCode != http.StatusOK && statusCode != http.StatusNoContent {
		return fmt.Errorf("unexpected status code: %d", statusCode)
	}

	return nil
}
