package reviewsrv

import "errors"

var (
	// ErrAlertNotFound is returned when the service does not know the alert ID.
	ErrAlertNotFound = errors.New("reviewsrv: alert not found")
	// ErrEntityNotFound is returned when the service does not know the entity ID.
	ErrEntityNotFound = errors.New("reviewsrv: entity not found")
)
