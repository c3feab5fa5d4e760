package http

import (
	"github.com/gin-gonic/gin"

	"checklist-ledger/internal/catalog"
	"checklist-ledger/internal/ledger"
	"checklist-ledger/internal/middleware"
	"checklist-ledger/internal/model"
	pkgErrors "checklist-ledger/pkg/errors"
)

func (h *handler) scope(c *gin.Context) (model.Scope, error) {
	sc, ok := middleware.GetScope(c)
	if !ok {
		return model.Scope{}, pkgErrors.ErrUnauthorized
	}
	return sc, nil
}

// processOutlineURI binds the kind and id path params.
func (h *handler) processOutlineURI(c *gin.Context) (catalog.Kind, string, error) {
	var uri outlineURI
	if err := c.ShouldBindUri(&uri); err != nil {
		return "", "", err
	}
	kind, err := catalog.ParseKind(uri.Kind)
	if err != nil {
		return "", "", ledger.ErrUnknownKind
	}
	return kind, uri.ID, nil
}

// processToggleReq binds the outline path and the item coordinates.
func (h *handler) processToggleReq(c *gin.Context) (ledger.ToggleInput, error) {
	kind, id, err := h.processOutlineURI(c)
	if err != nil {
		return ledger.ToggleInput{}, err
	}
	var req toggleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return ledger.ToggleInput{}, err
	}
	return req.toInput(kind, id), nil
}

// processSetCurrentReq binds the pointer update body.
func (h *handler) processSetCurrentReq(c *gin.Context) (ledger.SetCurrentInput, error) {
	var req setCurrentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return ledger.SetCurrentInput{}, err
	}
	kind, err := catalog.ParseKind(req.Kind)
	if err != nil {
		return ledger.SetCurrentInput{}, ledger.ErrUnknownKind
	}
	return ledger.SetCurrentInput{Kind: kind, ID: req.ID}, nil
}
