package repository

import (
	"context"

	"checklist-ledger/internal/ledger"
)

// Repository is the composed interface for the per-user progress store.
type Repository interface {
	ProgressRepository
	PointerRepository

	// DeleteUser removes every progress record and the pointer of a user.
	DeleteUser(ctx context.Context, userID string) error
}

// ProgressRepository stores one Record per (user, kind, outline).
// A missing record is a zero Record with Found == false, never an error.
type ProgressRepository interface {
	GetProgress(ctx context.Context, opt GetProgressOptions) (ledger.Record, error)
	SetProgress(ctx context.Context, opt SetProgressOptions) (ledger.Record, error)
	DeleteProgress(ctx context.Context, opt DeleteProgressOptions) error
}

// PointerRepository stores the current game / series of a user.
type PointerRepository interface {
	GetPointer(ctx context.Context, userID string) (ledger.Pointer, error)
	SetPointer(ctx context.Context, opt SetPointerOptions) error
}
