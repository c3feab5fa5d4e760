package usecase

import (
	"context"

	"github.com/google/uuid"

	"checklist-ledger/internal/auth"
)

// Status reports whether a sign-in provider is configured.
func (uc *implUseCase) Status(ctx context.Context) auth.StatusOutput {
	return auth.StatusOutput{Configured: uc.provider != nil}
}

// Login starts a sign-in by issuing a single-use state.
func (uc *implUseCase) Login(ctx context.Context) (auth.LoginOutput, error) {
	if uc.provider == nil {
		return auth.LoginOutput{}, auth.ErrNotConfigured
	}

	state := uuid.NewString()
	uc.states.Add(state, struct{}{})

	return auth.LoginOutput{
		URL:   uc.provider.AuthCodeURL(state),
		State: state,
	}, nil
}

// Callback finishes a sign-in and opens a session.
func (uc *implUseCase) Callback(ctx context.Context, input auth.CallbackInput) (auth.CallbackOutput, error) {
	if uc.provider == nil {
		return auth.CallbackOutput{}, auth.ErrNotConfigured
	}

	if input.State == "" {
		return auth.CallbackOutput{}, auth.ErrInvalidState
	}
	// Remove reports whether the key was present, which makes the state single use.
	if !uc.states.Remove(input.State) {
		return auth.CallbackOutput{}, auth.ErrInvalidState
	}
	if input.Code == "" {
		return auth.CallbackOutput{}, auth.ErrMissingCode
	}

	id, err := uc.provider.Exchange(ctx, input.Code)
	if err != nil {
		uc.l.Errorf(ctx, "auth.usecase.Callback: provider.Exchange: %v", err)
		return auth.CallbackOutput{}, auth.ErrExchangeFailed
	}

	now := uc.now()
	sess := auth.Session{
		ID:        uuid.NewString(),
		UserID:    id.ID,
		Email:     id.Email,
		Name:      id.Name,
		CreatedAt: now,
		ExpiresAt: now.Add(uc.ttl),
	}
	uc.sessions.Add(sess.ID, sess)
	uc.l.Infof(ctx, "auth.usecase.Callback: signed in user %s", sess.UserID)

	return auth.CallbackOutput{Session: sess}, nil
}
