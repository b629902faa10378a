package metrics

import "errors"

var (
	ErrEntityIDRequired = errors.New("metrics: entity id is required")
	ErrEntityNotFound   = errors.New("metrics: entity not found")
	ErrFetchFailed      = errors.New("metrics: failed to fetch reviews")
)
