package usecase

import (
	"context"

	"checklist-ledger/internal/auth"
	"checklist-ledger/internal/model"
)

// Authenticate resolves a session id into the caller's scope.
func (uc *implUseCase) Authenticate(ctx context.Context, sessionID string) (model.Scope, error) {
	if sessionID == "" {
		return model.Scope{}, auth.ErrUnauthorized
	}

	sess, ok := uc.sessions.Get(sessionID)
	if !ok {
		return model.Scope{}, auth.ErrUnauthorized
	}
	if !uc.now().Before(sess.ExpiresAt) {
		uc.sessions.Remove(sessionID)
		return model.Scope{}, auth.ErrUnauthorized
	}
	return sess.Scope(), nil
}

// Logout ends a session. Unknown ids are ignored.
func (uc *implUseCase) Logout(ctx context.Context, sessionID string) error {
	uc.sessions.Remove(sessionID)
	return nil
}
