package model

import "time"

// RefreshMode is the polling posture of the live-refresh controller.
type RefreshMode string

const (
	RefreshModeIdle   RefreshMode = "idle"
	RefreshModeActive RefreshMode = "active"
)

// RefreshState is the controller-owned polling state. ActivatedAt and
// AutoRevertAt are nil while idle. Interval is derived from Mode alone.
type RefreshState struct {
	Mode         RefreshMode
	Interval     time.Duration
	ActivatedAt  *time.Time
	AutoRevertAt *time.Time
	Subjects     []string
}
