package http

import (
	"github.com/gin-gonic/gin"

	"checklist-ledger/pkg/response"
)

// List godoc
// @Summary     List outlines
// @Description Lists every outline of a kind, optionally fuzzy-filtered by title.
// @Tags        Catalog
// @Produce     json
// @Param       kind path  string true  "games or series"
// @Param       q    query string false "Title search"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/catalog/{kind} [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, kind, err := h.processListReq(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	output, err := h.svc.List(ctx, req.toInput(kind))
	if err != nil {
		h.l.Errorf(ctx, "svc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(kind, output))
}

// Get godoc
// @Summary     Get outline
// @Description Returns one parsed outline.
// @Tags        Catalog
// @Produce     json
// @Param       kind path string true "games or series"
// @Param       id   path string true "Outline ID"
// @Success     200 {object} outlineResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/catalog/{kind}/{id} [GET]
func (h *handler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processGetReq(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	output, err := h.svc.Get(ctx, input)
	if err != nil {
		h.l.Warnf(ctx, "svc.Get: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newOutlineResp(output.Outline))
}

// Count godoc
// @Summary     Count resources
// @Description Number of outline resources per kind.
// @Tags        Catalog
// @Produce     json
// @Success     200 {object} countResp
// @Router      /api/v1/resources/count [GET]
func (h *handler) Count(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.svc.Count(ctx)
	if err != nil {
		h.l.Errorf(ctx, "svc.Count: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newCountResp(output))
}
