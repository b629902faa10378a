package usecase

import (
	"context"
	"time"

	"monitor-srv/internal/alert"
	"monitor-srv/internal/model"
)

func (uc *implUseCase) Refresh(ctx context.Context) error {
	serverList, err := uc.reviewSrv.ListAlerts(ctx)
	if err != nil {
		// The local view stays as-is and the loop keeps its cadence.
		uc.l.Warnf(ctx, "alert.usecase.Refresh: ListAlerts failed, keeping local view: %v", err)
		return alert.ErrRefreshFailed
	}

	var crisis []model.Alert

	uc.mu.Lock()
	now := time.Now()

	// Markers past the grace window are dropped regardless of kind.
	for key, marker := range uc.pending {
		if now.Sub(marker.createdAt) > uc.cfg.DeleteGrace {
			delete(uc.pending, key)
		}
	}

	serverIDs := make(map[int64]struct{}, len(serverList))
	for _, a := range serverList {
		serverIDs[a.ID] = struct{}{}
	}

	// Wholesale replacement with pending local intent applied on top.
	merged := make([]model.Alert, 0, len(serverList))
	for _, a := range serverList {
		if _, hidden := uc.pending[pendingKey{alertID: a.ID, kind: model.AlertMutationDelete}]; hidden {
			continue
		}
		if _, ok := uc.pending[pendingKey{alertID: a.ID, kind: model.AlertMutationRead}]; ok {
			if a.IsRead {
				delete(uc.pending, pendingKey{alertID: a.ID, kind: model.AlertMutationRead})
			} else {
				a.IsRead = true
			}
		}
		if _, ok := uc.pending[pendingKey{alertID: a.ID, kind: model.AlertMutationResolve}]; ok {
			if a.IsResolved {
				delete(uc.pending, pendingKey{alertID: a.ID, kind: model.AlertMutationResolve})
			} else {
				a.IsResolved = true
			}
		}
		merged = append(merged, a)
	}

	// A delete is confirmed once the server stops listing the id.
	for key := range uc.pending {
		if key.kind != model.AlertMutationDelete {
			continue
		}
		if _, ok := serverIDs[key.alertID]; !ok {
			delete(uc.pending, key)
		}
	}

	// Provisional creates still in flight stay visible at the top.
	for key, marker := range uc.pending {
		if key.kind == model.AlertMutationCreate && marker.provisional != nil {
			merged = append([]model.Alert{*marker.provisional}, merged...)
		}
	}

	// Newly seen unresolved critical alerts fan out to notifications.
	for id := range uc.knownCritical {
		if _, ok := serverIDs[id]; !ok {
			delete(uc.knownCritical, id)
		}
	}
	for _, a := range merged {
		if a.Severity != model.AlertSeverityCritical || a.IsResolved || a.Provisional() {
			continue
		}
		if _, seen := uc.knownCritical[a.ID]; seen {
			continue
		}
		uc.knownCritical[a.ID] = struct{}{}
		crisis = append(crisis, a)
	}

	uc.alerts = merged
	uc.refreshedAt = now
	uc.mu.Unlock()

	if uc.notifier != nil {
		for _, a := range crisis {
			if err := uc.notifier.PublishCrisis(ctx, a); err != nil {
				uc.l.Errorf(ctx, "alert.usecase.Refresh: crisis publish failed for alert %d: %v", a.ID, err)
			}
		}
	}

	return nil
}

func (uc *implUseCase) StartRefresher(ctx context.Context) {
	go func() {
		// Warm the store before the first tick.
		if err := uc.Refresh(ctx); err != nil {
			uc.l.Warnf(ctx, "alert.usecase.StartRefresher: initial refresh failed: %v", err)
		}

		ticker := time.NewTicker(uc.cfg.RefreshInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				uc.l.Infof(ctx, "alert.usecase.StartRefresher: refresher stopped")
				return
			case <-ticker.C:
				// Failures keep the existing cadence, no backoff.
				_ = uc.Refresh(ctx)
			}
		}
	}()
}
