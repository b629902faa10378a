package repository

import "errors"

var (
	ErrNotFound = errors.New("watched entity not found")
)
