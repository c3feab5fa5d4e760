package http

import (
	"github.com/gin-gonic/gin"

	"checklist-ledger/internal/catalog"
)

// processListReq binds the kind path param and the search query.
func (h *handler) processListReq(c *gin.Context) (listReq, catalog.Kind, error) {
	var req listReq
	if err := c.ShouldBindUri(&req); err != nil {
		return req, "", err
	}
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, "", err
	}
	kind, err := catalog.ParseKind(req.Kind)
	return req, kind, err
}

// processGetReq binds the kind and id path params.
func (h *handler) processGetReq(c *gin.Context) (catalog.GetInput, error) {
	var req getReq
	if err := c.ShouldBindUri(&req); err != nil {
		return catalog.GetInput{}, err
	}
	kind, err := catalog.ParseKind(req.Kind)
	if err != nil {
		return catalog.GetInput{}, err
	}
	return catalog.GetInput{Kind: kind, ID: req.ID}, nil
}
