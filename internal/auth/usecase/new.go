package usecase

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"checklist-ledger/internal/auth"
	"checklist-ledger/pkg/log"
)

const (
	maxStates     = 1024
	defaultTTL    = 30 * 24 * time.Hour
	defaultMaxSes = 10000
)

// Config controls session lifetime and capacity.
type Config struct {
	SessionTTL  time.Duration
	MaxSessions int
}

// implUseCase is the private implementation of auth.UseCase.
type implUseCase struct {
	l        log.Logger
	provider auth.Provider
	sessions *expirable.LRU[string, auth.Session]
	states   *expirable.LRU[string, struct{}]
	ttl      time.Duration
	now      func() time.Time
}

var _ auth.UseCase = (*implUseCase)(nil)

// New creates an auth UseCase. A nil provider means sign-in is not
// configured: login and callback fail with auth.ErrNotConfigured.
func New(l log.Logger, provider auth.Provider, cfg Config) *implUseCase {
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = defaultTTL
	}
	if cfg.MaxSessions <= 0 {
		cfg.MaxSessions = defaultMaxSes
	}

	return &implUseCase{
		l:        l,
		provider: provider,
		sessions: expirable.NewLRU[string, auth.Session](cfg.MaxSessions, nil, cfg.SessionTTL),
		states:   expirable.NewLRU[string, struct{}](maxStates, nil, auth.StateTTL),
		ttl:      cfg.SessionTTL,
		now:      time.Now,
	}
}
