package http

import (
	"errors"

	"monitor-srv/internal/liverefresh"
	pkgErrors "monitor-srv/pkg/errors"
)

var (
	errNoSubjects = pkgErrors.NewHTTPError(
		400, "At least one entity ID is required",
	)
	errTriggerFailed = pkgErrors.NewHTTPError(
		500, "Analysis trigger failed",
	)
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, liverefresh.ErrNoSubjects):
		return errNoSubjects
	case errors.Is(err, liverefresh.ErrTriggerFailed):
		return errTriggerFailed
	default:
		panic(err)
	}
}
