package rabbitmq

import "time"

// CrisisMessage is the payload published for a newly detected critical
// alert.
type CrisisMessage struct {
	AlertID   int64     `json:"alert_id"`
	EntityID  string    `json:"entity_id"`
	Type      string    `json:"type"`
	Severity  string    `json:"severity"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
