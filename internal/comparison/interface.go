package comparison

import (
	"context"

	"monitor-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Compare fetches both entities' snapshots and builds the side-by-side
	// comparison view.
	Compare(ctx context.Context, sc model.Scope, input CompareInput) (CompareOutput, error)
}
