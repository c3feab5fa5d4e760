package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"checklist-ledger/internal/ledger/repository"
	"checklist-ledger/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// Open opens or creates the SQLite database at path and applies the schema.
func Open(path string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	// One writer keeps "database is locked" out of concurrent toggles.
	db.SetMaxOpenConns(1)

	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

func migrate(db *sql.DB) error {
	const schema = `
	CREATE TABLE IF NOT EXISTS progress (
		user_id    TEXT NOT NULL,
		kind       TEXT NOT NULL,
		entry_id   TEXT NOT NULL,
		idx        INTEGER NOT NULL,
		updated_at TEXT NOT NULL,
		PRIMARY KEY (user_id, kind, entry_id)
	);

	CREATE TABLE IF NOT EXISTS pointers (
		user_id        TEXT PRIMARY KEY,
		current_game   TEXT,
		current_series TEXT
	);
	`
	_, err := db.Exec(schema)
	return err
}

// New creates a SQLite-backed Repository.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("ledger/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("ledger/repository/sqlite.%s", method)
}
