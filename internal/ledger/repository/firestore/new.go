package firestore

import (
	"context"
	"errors"
	"fmt"

	fs "google.golang.org/api/firestore/v1"
	"google.golang.org/api/option"

	"checklist-ledger/internal/ledger/repository"
	"checklist-ledger/pkg/log"
)

const defaultDatabaseID = "(default)"

// Config locates the Firestore database.
type Config struct {
	ProjectID       string
	DatabaseID      string
	CredentialsPath string // Service account JSON; empty uses application default credentials
	Endpoint        string // Emulator or test endpoint; disables authentication
}

type implRepository struct {
	svc      *fs.Service
	database string // projects/{project}/databases/{database}
	l        log.Logger
}

// NewService builds the Firestore REST client described by cfg.
func NewService(ctx context.Context, cfg Config, opts ...option.ClientOption) (*fs.Service, error) {
	switch {
	case cfg.Endpoint != "":
		opts = append(opts, option.WithEndpoint(cfg.Endpoint), option.WithoutAuthentication())
	case cfg.CredentialsPath != "":
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}
	svc, err := fs.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create firestore service: %w", err)
	}
	return svc, nil
}

// New creates a Firestore-backed Repository.
//
// Layout: users/{uid} holds the pointer, users/{uid}/{kind}/{id} holds
// one progress record.
func New(svc *fs.Service, cfg Config, l log.Logger) (repository.Repository, error) {
	if svc == nil {
		return nil, errors.New("ledger/repository/firestore: service is required")
	}
	if cfg.ProjectID == "" {
		return nil, errors.New("ledger/repository/firestore: project id is required")
	}
	dbID := cfg.DatabaseID
	if dbID == "" {
		dbID = defaultDatabaseID
	}
	return &implRepository{
		svc:      svc,
		database: fmt.Sprintf("projects/%s/databases/%s", cfg.ProjectID, dbID),
		l:        l,
	}, nil
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("ledger/repository/firestore.%s", method)
}
