package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"checklist-ledger/internal/catalog"
	"checklist-ledger/internal/ledger"
	repo "checklist-ledger/internal/ledger/repository"
)

// GetPointer reads the current game / series of a user.
func (r *implRepository) GetPointer(ctx context.Context, userID string) (ledger.Pointer, error) {
	const query = `SELECT current_game, current_series FROM pointers WHERE user_id = ?`

	var game, series sql.NullString
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&game, &series)
	if errors.Is(err, sql.ErrNoRows) {
		return ledger.Pointer{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetPointer"), err)
		return ledger.Pointer{}, repo.ErrFailedToGet
	}
	return ledger.Pointer{CurrentGame: game.String, CurrentSeries: series.String}, nil
}

// SetPointer updates one pointer column, leaving the other untouched.
func (r *implRepository) SetPointer(ctx context.Context, opt repo.SetPointerOptions) error {
	query := `
		INSERT INTO pointers (user_id, current_game) VALUES (?, ?)
		ON CONFLICT (user_id) DO UPDATE SET current_game = excluded.current_game`
	if opt.Kind == catalog.KindSeries {
		query = `
		INSERT INTO pointers (user_id, current_series) VALUES (?, ?)
		ON CONFLICT (user_id) DO UPDATE SET current_series = excluded.current_series`
	}

	value := sql.NullString{String: opt.ID, Valid: opt.ID != ""}
	if _, err := r.db.ExecContext(ctx, query, opt.UserID, value); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SetPointer"), err)
		return repo.ErrFailedToSet
	}
	return nil
}

// DeleteUser removes all rows of a user in one transaction.
func (r *implRepository) DeleteUser(ctx context.Context, userID string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("DeleteUser"), err)
		return repo.ErrFailedToDelete
	}
	defer tx.Rollback()

	for _, q := range []string{
		`DELETE FROM progress WHERE user_id = ?`,
		`DELETE FROM pointers WHERE user_id = ?`,
	} {
		if _, err := tx.ExecContext(ctx, q, userID); err != nil {
			r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteUser"), err)
			return repo.ErrFailedToDelete
		}
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("DeleteUser"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
