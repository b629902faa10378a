package http

import (
	"errors"

	"monitor-srv/internal/ingest"
	pkgErrors "monitor-srv/pkg/errors"
)

var (
	errInvalidLimit = pkgErrors.NewHTTPError(400, "Invalid limit")
	errStoreFailed  = pkgErrors.NewHTTPError(500, "DLQ store unavailable")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, ingest.ErrStoreFailed):
		return errStoreFailed
	default:
		panic(err)
	}
}
