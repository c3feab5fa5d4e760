package http

import (
	"github.com/gin-gonic/gin"

	"checklist-ledger/internal/ledger"
	"checklist-ledger/pkg/response"
)

// Detail godoc
// @Summary     Outline progress
// @Description Returns an outline with the caller's checked items.
// @Tags        Progress
// @Produce     json
// @Param       kind path string true "games or series"
// @Param       id   path string true "Outline ID"
// @Success     200 {object} detailResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/progress/{kind}/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.scope(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	kind, id, err := h.processOutlineURI(c)
	if err != nil {
		h.requestError(c, err)
		return
	}

	output, err := h.uc.Detail(ctx, sc, ledger.DetailInput{Kind: kind, ID: id})
	if err != nil {
		h.l.Warnf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// Toggle godoc
// @Summary     Toggle an item
// @Description Checks an item and everything before it, or unchecks it and everything after it.
// @Tags        Progress
// @Accept      json
// @Produce     json
// @Param       kind path string    true "games or series"
// @Param       id   path string    true "Outline ID"
// @Param       body body toggleReq true "Item coordinates"
// @Success     200 {object} toggleResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Router      /api/v1/progress/{kind}/{id}/toggle [POST]
func (h *handler) Toggle(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.scope(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	input, err := h.processToggleReq(c)
	if err != nil {
		h.requestError(c, err)
		return
	}

	output, err := h.uc.Toggle(ctx, sc, input)
	if err != nil {
		h.l.Warnf(ctx, "uc.Toggle: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newToggleResp(output))
}

// Reset godoc
// @Summary     Reset outline progress
// @Description Removes the caller's progress on one outline.
// @Tags        Progress
// @Produce     json
// @Param       kind path string true "games or series"
// @Param       id   path string true "Outline ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     503 {object} response.Resp "Store unavailable"
// @Router      /api/v1/progress/{kind}/{id} [DELETE]
func (h *handler) Reset(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.scope(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	kind, id, err := h.processOutlineURI(c)
	if err != nil {
		h.requestError(c, err)
		return
	}

	if err := h.uc.Reset(ctx, sc, ledger.ResetInput{Kind: kind, ID: id}); err != nil {
		h.l.Errorf(ctx, "uc.Reset: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// Summary godoc
// @Summary     Progress summary
// @Description Ongoing and completed outlines of the caller, per kind.
// @Tags        Progress
// @Produce     json
// @Success     200 {object} summaryResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/progress/summary [GET]
func (h *handler) Summary(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.scope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Summary(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.Summary: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSummaryResp(output))
}

// GetCurrent godoc
// @Summary     Current game and series
// @Tags        Me
// @Produce     json
// @Success     200 {object} currentResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/me/current [GET]
func (h *handler) GetCurrent(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.scope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.GetCurrent(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.GetCurrent: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newCurrentResp(output))
}

// SetCurrent godoc
// @Summary     Set current game or series
// @Description Points the current game or series at an outline. An empty id clears it.
// @Tags        Me
// @Accept      json
// @Produce     json
// @Param       body body setCurrentReq true "Pointer"
// @Success     200 {object} currentResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/me/current [PUT]
func (h *handler) SetCurrent(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.scope(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	input, err := h.processSetCurrentReq(c)
	if err != nil {
		h.requestError(c, err)
		return
	}

	output, err := h.uc.SetCurrent(ctx, sc, input)
	if err != nil {
		h.l.Warnf(ctx, "uc.SetCurrent: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newCurrentResp(output))
}

// DeleteAll godoc
// @Summary     Delete my data
// @Description Removes every progress record and the current pointers of the caller.
// @Tags        Me
// @Produce     json
// @Success     200 {object} response.Resp "OK"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     503 {object} response.Resp "Store unavailable"
// @Router      /api/v1/me [DELETE]
func (h *handler) DeleteAll(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.scope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.DeleteAll(ctx, sc); err != nil {
		h.l.Errorf(ctx, "uc.DeleteAll: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}
