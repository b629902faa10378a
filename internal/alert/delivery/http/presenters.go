package http

import (
	"time"

	"monitor-srv/internal/alert"
	"monitor-srv/internal/model"
	"monitor-srv/pkg/paginator"
)

// =====================================================
// Request DTOs
// =====================================================

type listAlertsReq struct {
	Status string `form:"status"`
	paginator.PaginateQuery
}

func (r listAlertsReq) toInput() alert.ListInput {
	return alert.ListInput{
		Status:   r.Status,
		Paginate: r.PaginateQuery,
	}
}

type createAlertReq struct {
	EntityID string `json:"entity_id" binding:"required"`
	Type     string `json:"type"`
	Severity string `json:"severity"`
	Title    string `json:"title" binding:"required"`
	Message  string `json:"message"`
}

func (r createAlertReq) toInput() alert.CreateInput {
	return alert.CreateInput{
		EntityID: r.EntityID,
		Type:     r.Type,
		Severity: r.Severity,
		Title:    r.Title,
		Message:  r.Message,
	}
}

// =====================================================
// Response DTOs
// =====================================================

type alertResp struct {
	ID          int64     `json:"id"`
	EntityID    string    `json:"entity_id"`
	Type        string    `json:"type"`
	Severity    string    `json:"severity"`
	Title       string    `json:"title"`
	Message     string    `json:"message"`
	IsRead      bool      `json:"is_read"`
	IsResolved  bool      `json:"is_resolved"`
	Provisional bool      `json:"provisional"`
	CreatedAt   time.Time `json:"created_at"`
}

func newAlertResp(a model.Alert) alertResp {
	return alertResp{
		ID:          a.ID,
		EntityID:    a.EntityID,
		Type:        a.Type,
		Severity:    a.Severity,
		Title:       a.Title,
		Message:     a.Message,
		IsRead:      a.IsRead,
		IsResolved:  a.IsResolved,
		Provisional: a.Provisional(),
		CreatedAt:   a.CreatedAt,
	}
}

type listAlertsResp struct {
	Alerts      []alertResp                 `json:"alerts"`
	UnreadCount int                         `json:"unread_count"`
	RefreshedAt *time.Time                  `json:"refreshed_at,omitempty"`
	Paginator   paginator.PaginatorResponse `json:"paginator"`
}

func (h *handler) newListAlertsResp(output alert.ListOutput) listAlertsResp {
	alerts := make([]alertResp, 0, len(output.Alerts))
	for _, a := range output.Alerts {
		alerts = append(alerts, newAlertResp(a))
	}

	resp := listAlertsResp{
		Alerts:      alerts,
		UnreadCount: output.UnreadCount,
		Paginator:   output.Paginator.ToResponse(),
	}
	if !output.RefreshedAt.IsZero() {
		refreshedAt := output.RefreshedAt
		resp.RefreshedAt = &refreshedAt
	}
	return resp
}

type unreadCountResp struct {
	UnreadCount int `json:"unread_count"`
}

type deleteAlertResp struct {
	AlertID int64 `json:"alert_id"`
	Deleted bool  `json:"deleted"`
}
