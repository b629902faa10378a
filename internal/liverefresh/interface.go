package liverefresh

import (
	"context"
	"time"

	"monitor-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Activate switches the controller from idle to active for a batch of
	// subjects, dispatches one analysis trigger per subject with a fixed
	// stagger and arms a single shared auto-revert window. Activating while
	// already active is a no-op that does not extend the running window.
	Activate(ctx context.Context, sc model.Scope, input ActivateInput) (ActivateOutput, error)

	// Deactivate reverts to idle early and cancels the pending auto-revert.
	// A no-op when already idle.
	Deactivate(ctx context.Context, sc model.Scope) error

	// NotifyCompleted records that the backend finished analyzing one
	// subject. When every subject of the running batch has completed the
	// controller reverts to idle without waiting for the window to elapse.
	NotifyCompleted(ctx context.Context, entityID string)

	// State returns a copy of the current refresh state.
	State(ctx context.Context, sc model.Scope) model.RefreshState

	// Interval is the polling interval derived from the current mode. The
	// collector reads it on every tick.
	Interval() time.Duration

	// Stop cancels the pending auto-revert timer on shutdown.
	Stop()
}
