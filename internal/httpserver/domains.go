package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	authHTTP "checklist-ledger/internal/auth/delivery/http"
	authUC "checklist-ledger/internal/auth/usecase"
	catalogHTTP "checklist-ledger/internal/catalog/delivery/http"
	"checklist-ledger/internal/checklist"
	ledgerHTTP "checklist-ledger/internal/ledger/delivery/http"
	ledgerUC "checklist-ledger/internal/ledger/usecase"
	"checklist-ledger/internal/middleware"
)

// setupAuthDomain initializes sign-in and returns the middleware every
// protected domain shares.
func (srv HTTPServer) setupAuthDomain(ctx context.Context, rg *gin.RouterGroup) (middleware.Middleware, error) {
	uc := authUC.New(srv.l, srv.authProvider, authUC.Config{
		SessionTTL:  srv.session.TTL,
		MaxSessions: srv.session.MaxSessions,
	})

	mw := middleware.New(srv.l, uc, middleware.Config{
		CookieName:       srv.session.CookieName,
		TogglesPerMinute: srv.togglePerMin,
	})

	h := authHTTP.New(srv.l, uc, authHTTP.CookieConfig{
		Name:     mw.CookieName(),
		Domain:   srv.session.CookieDomain,
		Secure:   srv.session.CookieSecure,
		MaxAge:   srv.session.TTL,
		Redirect: srv.session.LoginRedirect,
	})
	authHTTP.RegisterRoutes(rg, h, mw)

	if srv.authProvider == nil {
		srv.l.Warnf(ctx, "Sign-in is not configured, /auth/login will answer 503")
	} else {
		srv.l.Infof(ctx, "Auth domain registered")
	}
	return mw, nil
}

// setupCatalogDomain registers the public catalog routes.
func (srv HTTPServer) setupCatalogDomain(ctx context.Context, api *gin.RouterGroup) {
	h := catalogHTTP.New(srv.l, srv.catalog)
	catalogHTTP.RegisterRoutes(api, h)
	srv.l.Infof(ctx, "Catalog domain registered")
}

// setupLedgerDomain initializes the ledger and registers its routes.
func (srv HTTPServer) setupLedgerDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	uc := ledgerUC.New(srv.ledgerRepo, srv.catalog, checklist.New(), srv.l)
	h := ledgerHTTP.New(srv.l, uc)
	ledgerHTTP.RegisterRoutes(api, h, mw)
	srv.l.Infof(ctx, "Ledger domain registered")
}
