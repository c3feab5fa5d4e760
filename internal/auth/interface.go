package auth

import (
	"context"

	"checklist-ledger/internal/model"
)

// Provider is an OAuth2 identity provider.
type Provider interface {
	// AuthCodeURL returns the consent page URL for state.
	AuthCodeURL(state string) string
	// Exchange trades an authorization code for the signed-in identity.
	Exchange(ctx context.Context, code string) (Identity, error)
}

//go:generate mockery --name UseCase
type UseCase interface {
	Status(ctx context.Context) StatusOutput
	Login(ctx context.Context) (LoginOutput, error)
	Callback(ctx context.Context, input CallbackInput) (CallbackOutput, error)
	Authenticate(ctx context.Context, sessionID string) (model.Scope, error)
	Logout(ctx context.Context, sessionID string) error
}
