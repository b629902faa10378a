package alert

import (
	"context"

	"monitor-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// List returns the merged alert view: the last authoritative list with
	// in-flight local intent applied on top.
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)

	// MarkRead flips isRead optimistically, then confirms the mutation
	// against the review service.
	MarkRead(ctx context.Context, sc model.Scope, alertID int64) (model.Alert, error)

	// Resolve marks an alert resolved. Resolved is terminal.
	Resolve(ctx context.Context, sc model.Scope, alertID int64) (model.Alert, error)

	// Create splices a provisional record in immediately and swaps it for
	// the server record once the remote create succeeds.
	Create(ctx context.Context, sc model.Scope, input CreateInput) (model.Alert, error)

	// Delete removes an alert from the visible list immediately. The id
	// stays hidden through stale refreshes until the server list stops
	// including it or a grace period expires.
	Delete(ctx context.Context, sc model.Scope, alertID int64) error

	// UnreadCount is a projection over the merged view, recomputed per
	// call.
	UnreadCount(ctx context.Context, sc model.Scope) int

	// Refresh replaces the authoritative list wholesale with the review
	// service's and reconciles pending markers against it.
	Refresh(ctx context.Context) error

	// StartRefresher runs Refresh on a fixed cadence until ctx is done.
	StartRefresher(ctx context.Context)
}

//go:generate mockery --name Notifier
type Notifier interface {
	// PublishCrisis fans a newly seen critical alert out to the
	// notification exchange.
	PublishCrisis(ctx context.Context, alert model.Alert) error
}
