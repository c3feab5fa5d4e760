package middleware

import (
	"checklist-ledger/internal/auth"
	"checklist-ledger/pkg/log"
)

// Config holds middleware settings.
type Config struct {
	CookieName       string
	TogglesPerMinute int
}

type Middleware struct {
	l          log.Logger
	auth       auth.UseCase
	cookieName string
	toggles    *rateLimiter
}

func New(l log.Logger, authUC auth.UseCase, cfg Config) Middleware {
	if cfg.CookieName == "" {
		cfg.CookieName = DefaultCookieName
	}
	return Middleware{
		l:          l,
		auth:       authUC,
		cookieName: cfg.CookieName,
		toggles:    newRateLimiter(cfg.TogglesPerMinute),
	}
}

// CookieName is the name of the session cookie read by Auth.
func (m Middleware) CookieName() string {
	return m.cookieName
}
