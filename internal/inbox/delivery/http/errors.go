package http

import (
	"errors"
	"net/http"

	"timeblock/internal/inbox"
	"timeblock/internal/schedule"
	pkgErrors "timeblock/pkg/errors"
)

var (
	errWrongQuery = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	errWrongBody  = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid request body")
)

// mapError translates inbox and schedule errors into HTTP errors.
// Unknown errors become 500.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, inbox.ErrItemNotFound),
		errors.Is(err, schedule.ErrScheduleNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, inbox.ErrTitleRequired),
		errors.Is(err, inbox.ErrInvalidDuration),
		errors.Is(err, schedule.ErrStartRequired),
		errors.Is(err, schedule.ErrInvalidTimezone),
		errors.Is(err, schedule.ErrInvalidDate),
		errors.Is(err, schedule.ErrInvalidMove):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
