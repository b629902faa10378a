package watchlist

import (
	"monitor-srv/internal/model"
	"monitor-srv/pkg/paginator"
)

type AddInput struct {
	EntityID       string
	Name           string
	Platform       string
	PinnedPairWith *string
}

type ListInput struct {
	Paginate paginator.PaginateQuery
}

type ListOutput struct {
	Entities  []model.WatchedEntity
	Paginator paginator.Paginator
}

type PinPairInput struct {
	ID       string
	PairWith string
}
