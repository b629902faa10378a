package http

import (
	"errors"

	"monitor-srv/internal/metrics"
	pkgErrors "monitor-srv/pkg/errors"
)

var (
	errEntityIDRequired = pkgErrors.NewHTTPError(
		400, "Entity ID is required",
	)
	errEntityNotFound = pkgErrors.NewHTTPError(
		404, "Entity not found",
	)
	errFetchFailed = pkgErrors.NewHTTPError(
		500, "Failed to fetch reviews from review service",
	)
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, metrics.ErrEntityIDRequired):
		return errEntityIDRequired
	case errors.Is(err, metrics.ErrEntityNotFound):
		return errEntityNotFound
	case errors.Is(err, metrics.ErrFetchFailed):
		return errFetchFailed
	default:
		panic(err)
	}
}
