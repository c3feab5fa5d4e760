package auth

import "errors"

var (
	ErrNotConfigured  = errors.New("sign-in is not configured")
	ErrInvalidState   = errors.New("invalid or expired sign-in state")
	ErrMissingCode    = errors.New("authorization code is missing")
	ErrExchangeFailed = errors.New("sign-in provider exchange failed")
	ErrUnauthorized   = errors.New("session is missing or expired")
)
