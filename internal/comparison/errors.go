package comparison

import "errors"

var (
	ErrEntityIDRequired = errors.New("comparison: both entity ids are required")
	ErrEntityNotFound   = errors.New("comparison: entity not found")
	ErrFetchFailed      = errors.New("comparison: failed to fetch entity metrics")
)
