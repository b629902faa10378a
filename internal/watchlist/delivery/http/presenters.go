package http

import (
	"time"

	"monitor-srv/internal/model"
	"monitor-srv/internal/watchlist"
	"monitor-srv/pkg/paginator"
)

// =====================================================
// Request DTOs
// =====================================================

type addWatchReq struct {
	EntityID       string  `json:"entity_id" binding:"required"`
	Name           string  `json:"name" binding:"required"`
	Platform       string  `json:"platform"`
	PinnedPairWith *string `json:"pinned_pair_with"`
}

func (r addWatchReq) toInput() watchlist.AddInput {
	return watchlist.AddInput{
		EntityID:       r.EntityID,
		Name:           r.Name,
		Platform:       r.Platform,
		PinnedPairWith: r.PinnedPairWith,
	}
}

type listWatchReq struct {
	paginator.PaginateQuery
}

func (r listWatchReq) toInput() watchlist.ListInput {
	return watchlist.ListInput{Paginate: r.PaginateQuery}
}

type pinPairReq struct {
	PairWith *string `json:"pair_with"`
}

// =====================================================
// Response DTOs
// =====================================================

type watchResp struct {
	ID             string     `json:"id"`
	EntityID       string     `json:"entity_id"`
	Name           string     `json:"name"`
	Platform       string     `json:"platform,omitempty"`
	PinnedPairWith *string    `json:"pinned_pair_with,omitempty"`
	CreatedBy      string     `json:"created_by"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      *time.Time `json:"updated_at,omitempty"`
}

func newWatchResp(w model.WatchedEntity) watchResp {
	return watchResp{
		ID:             w.ID,
		EntityID:       w.EntityID,
		Name:           w.Name,
		Platform:       w.Platform,
		PinnedPairWith: w.PinnedPairWith,
		CreatedBy:      w.CreatedBy,
		CreatedAt:      w.CreatedAt,
		UpdatedAt:      w.UpdatedAt,
	}
}

type listWatchResp struct {
	Entities  []watchResp                 `json:"entities"`
	Paginator paginator.PaginatorResponse `json:"paginator"`
}

func newListWatchResp(output watchlist.ListOutput) listWatchResp {
	entities := make([]watchResp, 0, len(output.Entities))
	for _, w := range output.Entities {
		entities = append(entities, newWatchResp(w))
	}
	return listWatchResp{
		Entities:  entities,
		Paginator: output.Paginator.ToResponse(),
	}
}

type removeWatchResp struct {
	ID      string `json:"id"`
	Removed bool   `json:"removed"`
}
