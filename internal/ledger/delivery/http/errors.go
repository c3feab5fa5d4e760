package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"checklist-ledger/internal/ledger"
	pkgErrors "checklist-ledger/pkg/errors"
	"checklist-ledger/pkg/response"
)

var (
	errInvalidPosition = pkgErrors.NewHTTPError(http.StatusBadRequest, "item position out of range")
	errUnknownKind     = pkgErrors.NewHTTPError(http.StatusBadRequest, "unknown kind, expected games or series")
	errNotFound        = pkgErrors.NewHTTPError(http.StatusNotFound, "outline not found")
	errStore           = pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "progress store is unavailable")
)

// mapError translates ledger errors into HTTP errors from pkg/errors.
// Errors that are already HTTP errors pass through.
func (h *handler) mapError(err error) error {
	if _, ok := pkgErrors.AsHTTPError(err); ok {
		return err
	}
	switch {
	case errors.Is(err, ledger.ErrInvalidPosition):
		return errInvalidPosition
	case errors.Is(err, ledger.ErrUnknownKind):
		return errUnknownKind
	case errors.Is(err, ledger.ErrOutlineNotFound):
		return errNotFound
	case errors.Is(err, ledger.ErrStoreFailure):
		return errStore
	default:
		return pkgErrors.ErrInternalServerError
	}
}

// requestError renders a failed bind: an unknown kind maps like a domain
// error, anything else is a validation error.
func (h *handler) requestError(c *gin.Context, err error) {
	if errors.Is(err, ledger.ErrUnknownKind) {
		response.Error(c, h.mapError(err))
		return
	}
	response.ValidationError(c, err)
}
