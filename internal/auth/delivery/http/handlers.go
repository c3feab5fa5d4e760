package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"checklist-ledger/internal/middleware"
	pkgErrors "checklist-ledger/pkg/errors"
	"checklist-ledger/pkg/response"
)

// Status godoc
// @Summary     Sign-in status
// @Description Reports whether sign-in is configured on this server.
// @Tags        Auth
// @Produce     json
// @Success     200 {object} statusResp
// @Router      /auth/status [GET]
func (h *handler) Status(c *gin.Context) {
	response.OK(c, h.newStatusResp(h.uc.Status(c.Request.Context())))
}

// Login godoc
// @Summary     Start sign-in
// @Description Redirects the browser to the Google consent page and sets a short-lived state cookie.
// @Tags        Auth
// @Success     302
// @Failure     503 {object} response.Resp "Sign-in is not configured"
// @Router      /auth/login [GET]
func (h *handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Login(ctx)
	if err != nil {
		h.l.Warnf(ctx, "uc.Login: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	h.setStateCookie(c, output.State)
	c.Redirect(http.StatusFound, output.URL)
}

// Callback godoc
// @Summary     Finish sign-in
// @Description Provider redirect target. The state must match the cookie set at login. Opens a session, sets the session cookie and redirects home.
// @Tags        Auth
// @Param       state query string true  "Sign-in state"
// @Param       code  query string false "Authorization code"
// @Success     302
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "Provider failure"
// @Failure     503 {object} response.Resp "Sign-in is not configured"
// @Router      /auth/callback [GET]
func (h *handler) Callback(c *gin.Context) {
	ctx := c.Request.Context()

	if !h.uc.Status(ctx).Configured {
		response.Error(c, errNotConfigured)
		return
	}

	req, err := h.processCallbackReq(c)
	if err != nil {
		response.ValidationError(c, err)
		return
	}

	matched := h.matchStateCookie(c, req.State)
	h.clearStateCookie(c)
	if !matched {
		h.l.Warnf(ctx, "auth.delivery.http.Callback: state does not match the sign-in cookie")
		response.Error(c, errInvalidState)
		return
	}

	output, err := h.uc.Callback(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Callback: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	h.setSessionCookie(c, output.Session)
	c.Redirect(http.StatusFound, h.cookie.Redirect)
}

// Logout godoc
// @Summary     Sign out
// @Description Ends the current session and clears the session cookie.
// @Tags        Auth
// @Produce     json
// @Success     200 {object} response.Resp "OK"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /auth/logout [POST]
func (h *handler) Logout(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Error(c, pkgErrors.ErrUnauthorized)
		return
	}

	if err := h.uc.Logout(ctx, sc.SessionID); err != nil {
		h.l.Errorf(ctx, "uc.Logout: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	h.clearSessionCookie(c)
	response.OK(c, nil)
}

// Me godoc
// @Summary     Current user
// @Description Returns the signed-in user.
// @Tags        Auth
// @Produce     json
// @Success     200 {object} meResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /auth/me [GET]
func (h *handler) Me(c *gin.Context) {
	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Error(c, pkgErrors.ErrUnauthorized)
		return
	}
	response.OK(c, h.newMeResp(sc))
}
