package model

import "time"

// WatchedEntity is one registry row: an entity the dashboard tracks.
// PinnedPairWith optionally names the entity it is compared against on the
// comparison view.
type WatchedEntity struct {
	ID             string     `json:"id"`
	EntityID       string     `json:"entity_id"`
	Name           string     `json:"name"`
	Platform       string     `json:"platform,omitempty"`
	PinnedPairWith *string    `json:"pinned_pair_with,omitempty"`
	CreatedBy      string     `json:"created_by"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      *time.Time `json:"updated_at,omitempty"`
}
