package usecase

import (
	"context"
	"time"

	"monitor-srv/internal/liverefresh"
	"monitor-srv/internal/model"
)

func (uc *implUseCase) Activate(ctx context.Context, sc model.Scope, input liverefresh.ActivateInput) (liverefresh.ActivateOutput, error) {
	if len(input.EntityIDs) == 0 {
		return liverefresh.ActivateOutput{}, liverefresh.ErrNoSubjects
	}

	// 1. Flip the state under the lock, dispatch triggers outside it
	uc.mu.Lock()
	if uc.mode == model.RefreshModeActive {
		// Repeated clicks must not postpone the running window.
		out := liverefresh.ActivateOutput{State: uc.stateLocked(), Activated: false}
		uc.mu.Unlock()
		uc.l.Debugf(ctx, "liverefresh.usecase.Activate: already active, ignoring re-activation")
		return out, nil
	}

	subjects := dedupe(input.EntityIDs)
	if len(subjects) == 0 {
		uc.mu.Unlock()
		return liverefresh.ActivateOutput{}, liverefresh.ErrNoSubjects
	}
	now := time.Now()

	uc.mode = model.RefreshModeActive
	uc.subjects = subjects
	uc.awaiting = make(map[string]struct{}, len(subjects))
	for _, id := range subjects {
		uc.awaiting[id] = struct{}{}
	}
	uc.activatedAt = now
	uc.revertAt = now.Add(uc.cfg.Window)
	uc.generation++
	gen := uc.generation
	uc.revertTimer = time.AfterFunc(uc.cfg.Window, func() {
		uc.revert(gen, "window elapsed")
	})
	revertAt := uc.revertAt
	out := liverefresh.ActivateOutput{State: uc.stateLocked(), Activated: true}
	uc.mu.Unlock()

	uc.l.Infof(ctx, "liverefresh.usecase.Activate: activated %d subjects, revert at %s", len(subjects), revertAt.Format(time.RFC3339))

	// 2. First trigger fires immediately. A failed trigger has no job to
	// wait for, so revert right away instead of sitting out the window.
	if err := uc.reviewSrv.TriggerAnalysis(ctx, subjects[0]); err != nil {
		uc.l.Errorf(ctx, "liverefresh.usecase.Activate: trigger failed for entity %s: %v", subjects[0], err)
		uc.revert(gen, "trigger failure")
		return liverefresh.ActivateOutput{}, liverefresh.ErrTriggerFailed
	}

	// 3. Remaining triggers are staggered in the background
	if len(subjects) > 1 {
		go uc.dispatchStaggered(gen, subjects[1:])
	}

	return out, nil
}

func (uc *implUseCase) Deactivate(ctx context.Context, sc model.Scope) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.mode != model.RefreshModeActive {
		return nil
	}
	uc.revertLocked("deactivated")
	return nil
}

func (uc *implUseCase) NotifyCompleted(ctx context.Context, entityID string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.mode != model.RefreshModeActive {
		return
	}
	if _, ok := uc.awaiting[entityID]; !ok {
		return
	}
	delete(uc.awaiting, entityID)
	uc.l.Infof(ctx, "liverefresh.usecase.NotifyCompleted: analysis finished for entity %s, %d subjects remaining", entityID, len(uc.awaiting))

	if len(uc.awaiting) == 0 {
		uc.revertLocked("all subjects completed")
	}
}

func (uc *implUseCase) State(ctx context.Context, sc model.Scope) model.RefreshState {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.stateLocked()
}

func (uc *implUseCase) Interval() time.Duration {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.mode == model.RefreshModeActive {
		return uc.cfg.ActiveInterval
	}
	return uc.cfg.IdleInterval
}

func (uc *implUseCase) Stop() {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.revertTimer != nil {
		uc.revertTimer.Stop()
		uc.revertTimer = nil
	}
}

// dispatchStaggered fires the remaining triggers of a batch, one per
// stagger tick, aborting as soon as the activation it belongs to is gone.
func (uc *implUseCase) dispatchStaggered(gen uint64, entityIDs []string) {
	ctx := context.Background()

	for _, id := range entityIDs {
		time.Sleep(uc.cfg.TriggerStagger)
		if !uc.isCurrent(gen) {
			return
		}
		if err := uc.reviewSrv.TriggerAnalysis(ctx, id); err != nil {
			uc.l.Errorf(ctx, "liverefresh.usecase.dispatchStaggered: trigger failed for entity %s: %v", id, err)
			uc.revert(gen, "trigger failure")
			return
		}
	}
}

func (uc *implUseCase) isCurrent(gen uint64) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.generation == gen && uc.mode == model.RefreshModeActive
}

// revert transitions back to idle if the given activation is still the
// live one. Stale timers from an older activation fall through here.
func (uc *implUseCase) revert(gen uint64, reason string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.generation != gen || uc.mode != model.RefreshModeActive {
		return
	}
	uc.revertLocked(reason)
}

func (uc *implUseCase) revertLocked(reason string) {
	if uc.revertTimer != nil {
		uc.revertTimer.Stop()
		uc.revertTimer = nil
	}
	uc.mode = model.RefreshModeIdle
	uc.subjects = nil
	uc.awaiting = nil
	uc.activatedAt = time.Time{}
	uc.revertAt = time.Time{}

	uc.l.Infof(context.Background(), "liverefresh.usecase: reverted to idle (%s)", reason)
}

// stateLocked snapshots the current state. Caller holds the lock.
func (uc *implUseCase) stateLocked() model.RefreshState {
	st := model.RefreshState{
		Mode:     uc.mode,
		Interval: uc.cfg.IdleInterval,
		Subjects: append([]string(nil), uc.subjects...),
	}
	if uc.mode == model.RefreshModeActive {
		st.Interval = uc.cfg.ActiveInterval
		activatedAt := uc.activatedAt
		revertAt := uc.revertAt
		st.ActivatedAt = &activatedAt
		st.AutoRevertAt = &revertAt
	}
	return st
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
