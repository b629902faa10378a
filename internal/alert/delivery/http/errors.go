package http

import (
	"errors"

	"monitor-srv/internal/alert"
	pkgErrors "monitor-srv/pkg/errors"
)

var (
	errInvalidAlertID = pkgErrors.NewHTTPError(
		400, "Alert ID must be an integer",
	)
	errInvalidStatus = pkgErrors.NewHTTPError(
		400, "Status must be one of: active, resolved, all",
	)
	errEntityIDRequired = pkgErrors.NewHTTPError(
		400, "Entity ID is required",
	)
	errTitleRequired = pkgErrors.NewHTTPError(
		400, "Title is required",
	)
	errInvalidSeverity = pkgErrors.NewHTTPError(
		400, "Severity must be one of: info, warning, critical",
	)
	errAlertNotFound = pkgErrors.NewHTTPError(
		404, "Alert not found",
	)
	errMutationFailed = pkgErrors.NewHTTPError(
		500, "Alert update could not be confirmed",
	)
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, alert.ErrInvalidStatus):
		return errInvalidStatus
	case errors.Is(err, alert.ErrEntityIDRequired):
		return errEntityIDRequired
	case errors.Is(err, alert.ErrTitleRequired):
		return errTitleRequired
	case errors.Is(err, alert.ErrInvalidSeverity):
		return errInvalidSeverity
	case errors.Is(err, alert.ErrAlertNotFound):
		return errAlertNotFound
	case errors.Is(err, alert.ErrMutationFailed):
		return errMutationFailed
	default:
		panic(err)
	}
}
