package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"checklist-ledger/internal/ledger"
	repo "checklist-ledger/internal/ledger/repository"
)

// GetProgress reads one record. Returns a zero Record when none exists.
func (r *implRepository) GetProgress(ctx context.Context, opt repo.GetProgressOptions) (ledger.Record, error) {
	const query = `SELECT idx, updated_at FROM progress WHERE user_id = ? AND kind = ? AND entry_id = ?`

	var (
		idx       int
		updatedAt string
	)
	err := r.db.QueryRowContext(ctx, query, opt.UserID, string(opt.Kind), opt.ID).Scan(&idx, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return ledger.Record{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetProgress"), err)
		return ledger.Record{}, repo.ErrFailedToGet
	}

	ts, _ := time.Parse(time.RFC3339Nano, updatedAt)
	return ledger.Record{Index: idx, UpdatedAt: ts, Found: true}, nil
}

// SetProgress upserts one record.
func (r *implRepository) SetProgress(ctx context.Context, opt repo.SetProgressOptions) (ledger.Record, error) {
	const query = `
		INSERT INTO progress (user_id, kind, entry_id, idx, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (user_id, kind, entry_id) DO UPDATE SET
			idx = excluded.idx,
			updated_at = excluded.updated_at`

	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, query, opt.UserID, string(opt.Kind), opt.ID, opt.Index, now.Format(time.RFC3339Nano))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SetProgress"), err)
		return ledger.Record{}, repo.ErrFailedToSet
	}
	return ledger.Record{Index: opt.Index, UpdatedAt: now, Found: true}, nil
}

// DeleteProgress removes one record.
func (r *implRepository) DeleteProgress(ctx context.Context, opt repo.DeleteProgressOptions) error {
	const query = `DELETE FROM progress WHERE user_id = ? AND kind = ? AND entry_id = ?`

	if _, err := r.db.ExecContext(ctx, query, opt.UserID, string(opt.Kind), opt.ID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteProgress"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
