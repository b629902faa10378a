package alert

import "errors"

var (
	ErrAlertNotFound    = errors.New("alert: alert not found")
	ErrMutationFailed   = errors.New("alert: mutation failed")
	ErrRefreshFailed    = errors.New("alert: refresh failed")
	ErrInvalidStatus    = errors.New("alert: invalid status filter")
	ErrEntityIDRequired = errors.New("alert: entity id is required")
	ErrTitleRequired    = errors.New("alert: title is required")
	ErrInvalidSeverity  = errors.New("alert: invalid severity")
)
