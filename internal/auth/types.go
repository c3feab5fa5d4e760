package auth

import (
	"time"

	"checklist-ledger/internal/model"
)

// StateTTL is how long a sign-in may take between Login and Callback.
const StateTTL = 10 * time.Minute

// Identity is what the sign-in provider tells us about a user.
type Identity struct {
	ID    string
	Email string
	Name  string
}

// Session is one signed-in browser or client.
type Session struct {
	ID        string
	UserID    string
	Email     string
	Name      string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Scope returns the request scope carried by a session.
func (s Session) Scope() model.Scope {
	return model.Scope{
		UserID:    s.UserID,
		Email:     s.Email,
		Name:      s.Name,
		SessionID: s.ID,
	}
}

// --- UseCase Inputs / Outputs ---

type StatusOutput struct {
	Configured bool
}

type LoginOutput struct {
	URL   string
	State string
}

type CallbackInput struct {
	State string
	Code  string
}

type CallbackOutput struct {
	Session Session
}
