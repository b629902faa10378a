package usecase

import (
	"context"
	"errors"
	"time"

	"monitor-srv/internal/alert"
	"monitor-srv/internal/model"
	"monitor-srv/pkg/paginator"
	"monitor-srv/pkg/reviewsrv"
)

func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input alert.ListInput) (alert.ListOutput, error) {
	status := input.Status
	if status == "" {
		status = alert.StatusAll
	}
	if status != alert.StatusActive && status != alert.StatusResolved && status != alert.StatusAll {
		return alert.ListOutput{}, alert.ErrInvalidStatus
	}

	uc.mu.Lock()
	visible := append([]model.Alert(nil), uc.alerts...)
	refreshedAt := uc.refreshedAt
	uc.mu.Unlock()

	// Projections are recomputed from the merged view on every call,
	// never separately mutated.
	var unread int
	for _, a := range visible {
		if !a.IsRead && !a.IsResolved {
			unread++
		}
	}

	filtered := visible[:0:0]
	for _, a := range visible {
		switch status {
		case alert.StatusActive:
			if a.IsResolved {
				continue
			}
		case alert.StatusResolved:
			if !a.IsResolved {
				continue
			}
		}
		filtered = append(filtered, a)
	}

	pq := input.Paginate
	pq.Adjust()
	total := int64(len(filtered))
	start := pq.Offset()
	if start > total {
		start = total
	}
	end := start + pq.Limit
	if end > total {
		end = total
	}
	page := filtered[start:end]

	return alert.ListOutput{
		Alerts:      page,
		UnreadCount: unread,
		RefreshedAt: refreshedAt,
		Paginator: paginator.Paginator{
			Total:       total,
			Count:       int64(len(page)),
			PerPage:     pq.Limit,
			CurrentPage: pq.Page,
		},
	}, nil
}

func (uc *implUseCase) MarkRead(ctx context.Context, sc model.Scope, alertID int64) (model.Alert, error) {
	// 1. Optimistic local flip + pending marker
	uc.mu.Lock()
	idx := uc.indexOfLocked(alertID)
	if idx < 0 {
		uc.mu.Unlock()
		return model.Alert{}, alert.ErrAlertNotFound
	}
	uc.alerts[idx].IsRead = true
	updated := uc.alerts[idx]
	uc.setPendingLocked(alertID, model.AlertMutationRead, nil)
	uc.mu.Unlock()

	// 2. Remote mutation. The optimistic state stays in place either way;
	// a failure is surfaced and the next refresh settles the truth.
	if err := uc.reviewSrv.MarkAlertRead(ctx, alertID); err != nil {
		uc.clearPending(alertID, model.AlertMutationRead)
		if errors.Is(err, reviewsrv.ErrAlertNotFound) {
			return model.Alert{}, alert.ErrAlertNotFound
		}
		uc.l.Errorf(ctx, "alert.usecase.MarkRead: remote mark-read failed for alert %d: %v", alertID, err)
		return model.Alert{}, alert.ErrMutationFailed
	}

	// 3. Confirmed
	uc.clearPending(alertID, model.AlertMutationRead)
	return updated, nil
}

func (uc *implUseCase) Resolve(ctx context.Context, sc model.Scope, alertID int64) (model.Alert, error) {
	// 1. Optimistic local flip + pending marker
	uc.mu.Lock()
	idx := uc.indexOfLocked(alertID)
	if idx < 0 {
		uc.mu.Unlock()
		return model.Alert{}, alert.ErrAlertNotFound
	}
	uc.alerts[idx].IsResolved = true
	updated := uc.alerts[idx]
	uc.setPendingLocked(alertID, model.AlertMutationResolve, nil)
	uc.mu.Unlock()

	// 2. Remote mutation
	if err := uc.reviewSrv.ResolveAlert(ctx, alertID); err != nil {
		uc.clearPending(alertID, model.AlertMutationResolve)
		if errors.Is(err, reviewsrv.ErrAlertNotFound) {
			return model.Alert{}, alert.ErrAlertNotFound
		}
		uc.l.Errorf(ctx, "alert.usecase.Resolve: remote resolve failed for alert %d: %v", alertID, err)
		return model.Alert{}, alert.ErrMutationFailed
	}

	// 3. Confirmed
	uc.clearPending(alertID, model.AlertMutationResolve)
	return updated, nil
}

func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input alert.CreateInput) (model.Alert, error) {
	if err := validateCreate(&input); err != nil {
		return model.Alert{}, err
	}

	// 1. Splice in a provisional record with a negative id
	uc.mu.Lock()
	uc.nextProvID--
	provisional := model.Alert{
		ID:        uc.nextProvID,
		EntityID:  input.EntityID,
		Type:      input.Type,
		Severity:  input.Severity,
		Title:     input.Title,
		Message:   input.Message,
		CreatedAt: time.Now(),
	}
	uc.alerts = append([]model.Alert{provisional}, uc.alerts...)
	uc.setPendingLocked(provisional.ID, model.AlertMutationCreate, &provisional)
	uc.mu.Unlock()

	// 2. Remote create
	created, err := uc.reviewSrv.CreateAlert(ctx, reviewsrv.CreateAlertInput{
		EntityID: input.EntityID,
		Type:     input.Type,
		Severity: input.Severity,
		Title:    input.Title,
		Message:  input.Message,
	})
	if err != nil {
		// The provisional stays visible until the next refresh drops it.
		uc.clearPending(provisional.ID, model.AlertMutationCreate)
		uc.l.Errorf(ctx, "alert.usecase.Create: remote create failed for entity %s: %v", input.EntityID, err)
		return model.Alert{}, alert.ErrMutationFailed
	}

	// 3. Swap the provisional for the server record
	uc.mu.Lock()
	if idx := uc.indexOfLocked(provisional.ID); idx >= 0 {
		uc.alerts[idx] = *created
	}
	delete(uc.pending, pendingKey{alertID: provisional.ID, kind: model.AlertMutationCreate})
	uc.mu.Unlock()

	return *created, nil
}

func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, alertID int64) error {
	// 1. Optimistic removal + pending marker
	uc.mu.Lock()
	idx := uc.indexOfLocked(alertID)
	if idx < 0 {
		uc.mu.Unlock()
		return alert.ErrAlertNotFound
	}
	uc.alerts = append(uc.alerts[:idx], uc.alerts[idx+1:]...)
	uc.setPendingLocked(alertID, model.AlertMutationDelete, nil)
	uc.mu.Unlock()

	// A provisional record that never reached the server has nothing to
	// delete remotely.
	if alertID < 0 {
		uc.clearPending(alertID, model.AlertMutationDelete)
		return nil
	}

	// 2. Remote delete
	if err := uc.reviewSrv.DeleteAlert(ctx, alertID); err != nil {
		uc.clearPending(alertID, model.AlertMutationDelete)
		uc.l.Errorf(ctx, "alert.usecase.Delete: remote delete failed for alert %d: %v", alertID, err)
		return alert.ErrMutationFailed
	}

	// 3. The delete marker is NOT cleared on success: it keeps the id
	// hidden through stale refreshes until the server list stops
	// including it or the grace period expires.
	return nil
}

func (uc *implUseCase) UnreadCount(ctx context.Context, sc model.Scope) int {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	var unread int
	for _, a := range uc.alerts {
		if !a.IsRead && !a.IsResolved {
			unread++
		}
	}
	return unread
}

func (uc *implUseCase) indexOfLocked(alertID int64) int {
	for i := range uc.alerts {
		if uc.alerts[i].ID == alertID {
			return i
		}
	}
	return -1
}

func (uc *implUseCase) setPendingLocked(alertID int64, kind model.AlertMutation, provisional *model.Alert) {
	uc.pending[pendingKey{alertID: alertID, kind: kind}] = pendingMarker{
		createdAt:   time.Now(),
		provisional: provisional,
	}
}

func (uc *implUseCase) clearPending(alertID int64, kind model.AlertMutation) {
	uc.mu.Lock()
	delete(uc.pending, pendingKey{alertID: alertID, kind: kind})
	uc.mu.Unlock()
}

func validateCreate(input *alert.CreateInput) error {
	if input.EntityID == "" {
		return alert.ErrEntityIDRequired
	}
	if input.Title == "" {
		return alert.ErrTitleRequired
	}
	switch input.Severity {
	case "":
		input.Severity = model.AlertSeverityInfo
	case model.AlertSeverityInfo, model.AlertSeverityWarning, model.AlertSeverityCritical:
	default:
		return alert.ErrInvalidSeverity
	}
	return nil
}
