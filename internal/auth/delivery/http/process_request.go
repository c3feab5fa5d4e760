package http

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"checklist-ledger/internal/auth"
)

const stateCookieSuffix = "_state"

// processCallbackReq binds the provider redirect query. A declined consent
// arrives with an error and no code and is reported as ErrMissingCode.
func (h *handler) processCallbackReq(c *gin.Context) (callbackReq, error) {
	var req callbackReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) setSessionCookie(c *gin.Context, sess auth.Session) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, sess.ID, int(h.cookie.MaxAge.Seconds()), "/", h.cookie.Domain, h.cookie.Secure, true)
}

func (h *handler) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, "", -1, "/", h.cookie.Domain, h.cookie.Secure, true)
}

func (h *handler) stateCookieName() string {
	return h.cookie.Name + stateCookieSuffix
}

// setStateCookie ties a sign-in state to the browser that started it.
func (h *handler) setStateCookie(c *gin.Context, state string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.stateCookieName(), state, int(auth.StateTTL.Seconds()), "/", h.cookie.Domain, h.cookie.Secure, true)
}

func (h *handler) clearStateCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.stateCookieName(), "", -1, "/", h.cookie.Domain, h.cookie.Secure, true)
}

// matchStateCookie reports whether the callback state is the one issued to
// this browser at login.
func (h *handler) matchStateCookie(c *gin.Context, state string) bool {
	stored, err := c.Cookie(h.stateCookieName())
	if err != nil || stored == "" || state == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(state)) == 1
}
