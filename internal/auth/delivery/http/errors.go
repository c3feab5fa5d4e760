package http

import (
	"errors"
	"net/http"

	"checklist-ledger/internal/auth"
	pkgErrors "checklist-ledger/pkg/errors"
)

var (
	errNotConfigured = pkgErrors.NewHTTPError(http.StatusServiceUnavailable, auth.ErrNotConfigured.Error())
	errInvalidState  = pkgErrors.NewHTTPError(http.StatusBadRequest, "sign-in expired, please try again")
	errMissingCode   = pkgErrors.NewHTTPError(http.StatusBadRequest, "sign-in was cancelled")
	errExchange      = pkgErrors.NewHTTPError(http.StatusBadGateway, "could not complete sign-in")
)

// mapError translates auth errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, auth.ErrNotConfigured):
		return errNotConfigured
	case errors.Is(err, auth.ErrInvalidState):
		return errInvalidState
	case errors.Is(err, auth.ErrMissingCode):
		return errMissingCode
	case errors.Is(err, auth.ErrExchangeFailed):
		return errExchange
	case errors.Is(err, auth.ErrUnauthorized):
		return pkgErrors.ErrUnauthorized
	default:
		return pkgErrors.ErrInternalServerError
	}
}
