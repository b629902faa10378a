package alert

import (
	"time"

	"monitor-srv/internal/model"
	"monitor-srv/pkg/paginator"
)

// Status filters for List.
const (
	StatusActive   = "active"
	StatusResolved = "resolved"
	StatusAll      = "all"
)

type ListInput struct {
	Status   string
	Paginate paginator.PaginateQuery
}

type ListOutput struct {
	Alerts      []model.Alert
	Paginator   paginator.Paginator
	UnreadCount int
	// RefreshedAt is the time of the last successful authoritative
	// refresh; zero when the store has never been refreshed.
	RefreshedAt time.Time
}

type CreateInput struct {
	EntityID string
	Type     string
	Severity string
	Title    string
	Message  string
}
