package http

import (
	"time"

	"checklist-ledger/internal/auth"
	"checklist-ledger/pkg/log"
)

// CookieConfig controls the session cookie written after sign-in.
type CookieConfig struct {
	Name     string
	Domain   string
	Secure   bool
	MaxAge   time.Duration
	Redirect string // Where the browser lands after sign-in or sign-out
}

type handler struct {
	l      log.Logger
	uc     auth.UseCase
	cookie CookieConfig
}

// New creates a new HTTP handler for the auth domain.
func New(l log.Logger, uc auth.UseCase, cookie CookieConfig) *handler {
	if cookie.Redirect == "" {
		cookie.Redirect = "/"
	}
	return &handler{
		l:      l,
		uc:     uc,
		cookie: cookie,
	}
}
