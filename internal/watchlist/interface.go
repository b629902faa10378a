package watchlist

import (
	"context"

	"monitor-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Add registers an entity on the watchlist. Each entity can be
	// watched once.
	Add(ctx context.Context, sc model.Scope, input AddInput) (model.WatchedEntity, error)

	// Detail returns one watchlist row by its id.
	Detail(ctx context.Context, sc model.Scope, id string) (model.WatchedEntity, error)

	// List returns the watchlist page by page.
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)

	// ListAll returns every watched entity. The collector iterates this
	// each tick.
	ListAll(ctx context.Context) ([]model.WatchedEntity, error)

	// PinPair pins a standing comparison partner to a watchlist row.
	PinPair(ctx context.Context, sc model.Scope, input PinPairInput) (model.WatchedEntity, error)

	// UnpinPair clears the pinned comparison partner.
	UnpinPair(ctx context.Context, sc model.Scope, id string) (model.WatchedEntity, error)

	// Remove takes an entity off the watchlist and drops its cached
	// snapshot.
	Remove(ctx context.Context, sc model.Scope, id string) error
}
