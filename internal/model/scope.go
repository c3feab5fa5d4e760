package model

import "context"

// Scope identifies the signed-in caller of a request.
type Scope struct {
	UserID    string
	Email     string
	Name      string
	SessionID string
}

// IsZero reports whether no user is attached.
func (s Scope) IsZero() bool {
	return s.UserID == ""
}

type scopeCtxKey struct{}

// SetScopeToContext returns a copy of ctx carrying sc.
func SetScopeToContext(ctx context.Context, sc Scope) context.Context {
	return context.WithValue(ctx, scopeCtxKey{}, sc)
}

// GetScopeFromContext returns the scope stored by SetScopeToContext.
func GetScopeFromContext(ctx context.Context) (Scope, bool) {
	sc, ok := ctx.Value(scopeCtxKey{}).(Scope)
	return sc, ok && !sc.IsZero()
}
