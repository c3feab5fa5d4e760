package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"checklist-ledger/internal/auth"
	"checklist-ledger/internal/catalog"
	"checklist-ledger/internal/ledger/repository"
	"checklist-ledger/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Catalog domain
	catalog catalog.Service

	// Ledger domain
	ledgerRepo   repository.Repository
	togglePerMin int

	// Auth domain
	authProvider auth.Provider
	session      SessionConfig
}

// SessionConfig controls sessions and the session cookie.
type SessionConfig struct {
	TTL           time.Duration
	MaxSessions   int
	CookieName    string
	CookieDomain  string
	CookieSecure  bool
	LoginRedirect string
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// Catalog domain
	Catalog catalog.Service

	// Ledger domain
	LedgerRepo   repository.Repository
	TogglePerMin int

	// Auth domain. A nil provider leaves sign-in unconfigured.
	AuthProvider auth.Provider
	Session      SessionConfig
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:            logger,
		gin:          gin.New(),
		port:         cfg.Port,
		mode:         cfg.Mode,
		environment:  cfg.Environment,
		catalog:      cfg.Catalog,
		ledgerRepo:   cfg.LedgerRepo,
		togglePerMin: cfg.TogglePerMin,
		authProvider: cfg.AuthProvider,
		session:      cfg.Session,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.catalog == nil {
		return errors.New("catalog is required")
	}
	if srv.ledgerRepo == nil {
		return errors.New("ledger repository is required")
	}
	return nil
}
