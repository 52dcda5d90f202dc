package http

import (
	"errors"
	"net/http"

	"timeblock/internal/auth"
	pkgErrors "timeblock/pkg/errors"
)

// mapError translates auth errors into HTTP errors from pkg/errors.
// Unknown errors become 500.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, auth.ErrInvalidState),
		errors.Is(err, auth.ErrMissingCode):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, auth.ErrAccessDenied):
		return pkgErrors.NewHTTPError(http.StatusUnauthorized, err.Error())
	case errors.Is(err, auth.ErrUnverifiedUser):
		return pkgErrors.NewHTTPError(http.StatusForbidden, err.Error())
	case errors.Is(err, auth.ErrUserNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
