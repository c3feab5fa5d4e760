package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"checklist-ledger/config"
	_ "checklist-ledger/docs" // Swagger docs
	"checklist-ledger/internal/httpserver"
	"checklist-ledger/pkg/log"
)

// @title       Checklist Ledger API
// @description Per-user progress over game and series checklists.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 0. Local .env (optional)
	_ = godotenv.Load()

	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Checklist Ledger...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Catalog
	catalogSvc, err := newCatalog(ctx, cfg, logger)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize catalog: %v", err)
		os.Exit(1)
	}

	// 4. Progress store
	repo, closeRepo, err := newLedgerRepository(ctx, cfg, logger)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize progress store: %v", err)
		os.Exit(1)
	}
	defer closeRepo()

	// 5. Sign-in provider (optional)
	provider := newAuthProvider(ctx, cfg, logger)

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:       logger,
		Port:         cfg.HTTPServer.Port,
		Mode:         cfg.HTTPServer.Mode,
		Environment:  cfg.Environment.Name,
		Catalog:      catalogSvc,
		LedgerRepo:   repo,
		TogglePerMin: cfg.RateLimit.TogglePerMin,
		AuthProvider: provider,
		Session: httpserver.SessionConfig{
			TTL:           cfg.Auth.SessionTTL,
			MaxSessions:   cfg.Auth.MaxSessions,
			CookieName:    cfg.Auth.CookieName,
			CookieDomain:  cfg.Auth.CookieDomain,
			CookieSecure:  cfg.Auth.CookieSecure,
			LoginRedirect: cfg.Auth.LoginRedirect,
		},
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		os.Exit(1)
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}
