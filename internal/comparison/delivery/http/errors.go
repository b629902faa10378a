package http

import (
	"errors"

	"monitor-srv/internal/comparison"
	pkgErrors "monitor-srv/pkg/errors"
)

var (
	errEntityIDRequired = pkgErrors.NewHTTPError(
		400, "Both entity IDs are required",
	)
	errEntityNotFound = pkgErrors.NewHTTPError(
		404, "Entity not found",
	)
	errFetchFailed = pkgErrors.NewHTTPError(
		500, "Failed to fetch entity metrics",
	)
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, comparison.ErrEntityIDRequired):
		return errEntityIDRequired
	case errors.Is(err, comparison.ErrEntityNotFound):
		return errEntityNotFound
	case errors.Is(err, comparison.ErrFetchFailed):
		return errFetchFailed
	default:
		panic(err)
	}
}
