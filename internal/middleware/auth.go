package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"checklist-ledger/internal/model"
	"checklist-ledger/pkg/log"
	"checklist-ledger/pkg/response"
)

const (
	DefaultCookieName = "ledger_session"

	scopeKey = "scope"
)

// Auth requires a valid session from the session cookie or a Bearer token.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		sessionID := m.sessionID(c)
		if sessionID == "" {
			response.Unauthorized(c)
			return
		}

		sc, err := m.auth.Authenticate(ctx, sessionID)
		if err != nil {
			m.l.Debugf(ctx, "middleware.Auth: %v", err)
			response.Unauthorized(c)
			return
		}

		ctx = model.SetScopeToContext(ctx, sc)
		ctx = log.WithFields(ctx, "user_id", sc.UserID)
		c.Request = c.Request.WithContext(ctx)
		c.Set(scopeKey, sc)
		c.Next()
	}
}

func (m Middleware) sessionID(c *gin.Context) string {
	if h := c.GetHeader("Authorization"); h != "" {
		if token, ok := strings.CutPrefix(h, "Bearer "); ok {
			return strings.TrimSpace(token)
		}
	}
	if v, err := c.Cookie(m.cookieName); err == nil {
		return v
	}
	return ""
}

// GetScope returns the scope set by Auth.
func GetScope(c *gin.Context) (model.Scope, bool) {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.GetScopeFromContext(c.Request.Context())
	}
	sc, ok := v.(model.Scope)
	return sc, ok && !sc.IsZero()
}
