package http

import (
	"errors"

	"monitor-srv/internal/watchlist"
	pkgErrors "monitor-srv/pkg/errors"
)

var (
	errEntityIDRequired = pkgErrors.NewHTTPError(
		400, "Entity ID is required",
	)
	errNameRequired = pkgErrors.NewHTTPError(
		400, "Display name is required",
	)
	errPairTargetRequired = pkgErrors.NewHTTPError(
		400, "Pair target is required",
	)
	errSelfPair = pkgErrors.NewHTTPError(
		400, "An entity cannot be paired with itself",
	)
	errAlreadyWatched = pkgErrors.NewHTTPError(
		409, "Entity is already watched",
	)
	errNotFound = pkgErrors.NewHTTPError(
		404, "Watched entity not found",
	)
	errStoreFailed = pkgErrors.NewHTTPError(
		500, "Watchlist store operation failed",
	)
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, watchlist.ErrEntityIDRequired):
		return errEntityIDRequired
	case errors.Is(err, watchlist.ErrNameRequired):
		return errNameRequired
	case errors.Is(err, watchlist.ErrPairTargetRequired):
		return errPairTargetRequired
	case errors.Is(err, watchlist.ErrSelfPair):
		return errSelfPair
	case errors.Is(err, watchlist.ErrAlreadyWatched):
		return errAlreadyWatched
	case errors.Is(err, watchlist.ErrNotFound):
		return errNotFound
	case errors.Is(err, watchlist.ErrStoreFailed):
		return errStoreFailed
	default:
		panic(err)
	}
}
