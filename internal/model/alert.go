package model

import "time"

// Alert severity levels, mirroring review-srv.
const (
	AlertSeverityInfo     = "info"
	AlertSeverityWarning  = "warning"
	AlertSeverityCritical = "critical"
)

// AlertMutation names one optimistic mutation kind. Pending markers are
// keyed by (alert id, mutation kind).
type AlertMutation string

const (
	AlertMutationRead    AlertMutation = "read"
	AlertMutationResolve AlertMutation = "resolve"
	AlertMutationCreate  AlertMutation = "create"
	AlertMutationDelete  AlertMutation = "delete"
)

// Alert is one alert record mirrored from review-srv. Lifecycle:
// unread -> read, {unread,read} -> resolved; resolved is terminal.
// Provisional records created locally carry a negative ID until the next
// authoritative refresh swaps in the server-assigned one.
type Alert struct {
	ID         int64     `json:"id"`
	EntityID   string    `json:"entity_id"`
	Type       string    `json:"type"`
	Severity   string    `json:"severity"`
	Title      string    `json:"title"`
	Message    string    `json:"message"`
	IsRead     bool      `json:"is_read"`
	IsResolved bool      `json:"is_resolved"`
	CreatedAt  time.Time `json:"created_at"`
}

// Provisional reports whether the alert only exists locally.
func (a Alert) Provisional() bool {
	return a.ID < 0
}
