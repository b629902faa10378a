package repository

import "errors"

var (
	ErrFailedToInsert       = errors.New("failed to insert")
	ErrFailedToList         = errors.New("failed to list")
	ErrFailedToMarkResolved = errors.New("failed to mark resolved")
	ErrFailedToUpdate       = errors.New("failed to update")
)
