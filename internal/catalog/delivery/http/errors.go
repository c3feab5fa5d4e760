package http

import (
	"errors"
	"net/http"

	"checklist-ledger/internal/catalog"
	pkgErrors "checklist-ledger/pkg/errors"
)

var (
	errUnknownKind = pkgErrors.NewHTTPError(http.StatusBadRequest, "unknown kind, expected games or series")
	errNotFound    = pkgErrors.NewHTTPError(http.StatusNotFound, "outline not found")
)

// mapError translates catalog errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, catalog.ErrUnknownKind):
		return errUnknownKind
	case errors.Is(err, catalog.ErrNotFound), errors.Is(err, catalog.ErrInvalidID):
		return errNotFound
	default:
		return pkgErrors.ErrInternalServerError
	}
}
