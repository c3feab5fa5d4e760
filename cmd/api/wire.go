package main

import (
	"context"
	"errors"
	"fmt"

	"checklist-ledger/config"
	"checklist-ledger/internal/auth"
	"checklist-ledger/internal/auth/provider/google"
	"checklist-ledger/internal/catalog"
	"checklist-ledger/internal/ledger/repository"
	"checklist-ledger/internal/ledger/repository/firestore"
	"checklist-ledger/internal/ledger/repository/sqlite"
	"checklist-ledger/pkg/log"
)

func newCatalog(ctx context.Context, cfg *config.Config, l log.Logger) (catalog.Service, error) {
	var src catalog.Source
	switch cfg.Catalog.Source {
	case config.CatalogSourceMinio:
		ms, err := catalog.NewMinioSource(catalog.MinioConfig{
			Endpoint:  cfg.Minio.Endpoint,
			AccessKey: cfg.Minio.AccessKey,
			SecretKey: cfg.Minio.SecretKey,
			Bucket:    cfg.Minio.Bucket,
			Prefix:    cfg.Minio.Prefix,
			UseSSL:    cfg.Minio.UseSSL,
		})
		if err != nil {
			return nil, err
		}
		src = ms
		l.Infof(ctx, "Catalog source: minio bucket %s", cfg.Minio.Bucket)
	default:
		src = catalog.NewDirSource(cfg.Catalog.Dir)
		l.Infof(ctx, "Catalog source: %s", cfg.Catalog.Dir)
	}
	return catalog.New(src, cfg.Catalog.CacheSize, l)
}

func newLedgerRepository(ctx context.Context, cfg *config.Config, l log.Logger) (repository.Repository, func(), error) {
	switch cfg.Store.Driver {
	case config.StoreDriverFirestore:
		fsCfg := firestore.Config{
			ProjectID:       cfg.Firestore.ProjectID,
			DatabaseID:      cfg.Firestore.DatabaseID,
			CredentialsPath: cfg.Firestore.CredentialsPath,
			Endpoint:        cfg.Firestore.Endpoint,
		}
		svc, err := firestore.NewService(ctx, fsCfg)
		if err != nil {
			return nil, nil, err
		}
		repo, err := firestore.New(svc, fsCfg, l)
		if err != nil {
			return nil, nil, err
		}
		l.Infof(ctx, "Progress store: firestore project %s", cfg.Firestore.ProjectID)
		return repo, func() {}, nil

	case config.StoreDriverSQLite:
		db, err := sqlite.Open(cfg.SQLite.Path)
		if err != nil {
			return nil, nil, err
		}
		l.Infof(ctx, "Progress store: sqlite %s", cfg.SQLite.Path)
		return sqlite.New(db, l), func() { db.Close() }, nil
	}
	return nil, nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
}

// newAuthProvider returns nil when sign-in is not configured. The server
// still starts; sign-in endpoints then answer 503.
func newAuthProvider(ctx context.Context, cfg *config.Config, l log.Logger) auth.Provider {
	p, err := google.New(google.Config{
		ClientID:     cfg.Auth.Google.ClientID,
		ClientSecret: cfg.Auth.Google.ClientSecret,
		RedirectURL:  cfg.Auth.Google.RedirectURL,
	})
	if err != nil {
		if errors.Is(err, auth.ErrNotConfigured) {
			l.Warn(ctx, "GOOGLE_CLIENT_ID or GOOGLE_CLIENT_SECRET is missing, sign-in disabled")
		} else {
			l.Errorf(ctx, "Google sign-in disabled: %v", err)
		}
		return nil
	}
	return p
}
