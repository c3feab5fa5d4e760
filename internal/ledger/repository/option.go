package repository

import "checklist-ledger/internal/catalog"

// GetProgressOptions addresses a single progress record.
type GetProgressOptions struct {
	UserID string
	Kind   catalog.Kind
	ID     string
}

// SetProgressOptions holds parameters for creating or replacing a record.
type SetProgressOptions struct {
	UserID string
	Kind   catalog.Kind
	ID     string
	Index  int
}

// DeleteProgressOptions addresses the record to remove.
type DeleteProgressOptions struct {
	UserID string
	Kind   catalog.Kind
	ID     string
}

// SetPointerOptions sets the current outline of one kind. An empty ID clears it.
type SetPointerOptions struct {
	UserID string
	Kind   catalog.Kind
	ID     string
}
