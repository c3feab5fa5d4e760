package ledger

import (
	"context"

	"checklist-ledger/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Progress on one outline
	Detail(ctx context.Context, sc model.Scope, input DetailInput) (DetailOutput, error)
	Toggle(ctx context.Context, sc model.Scope, input ToggleInput) (ToggleOutput, error)
	Reset(ctx context.Context, sc model.Scope, input ResetInput) error

	// Across outlines
	Summary(ctx context.Context, sc model.Scope) (SummaryOutput, error)

	// Current game / series pointer
	GetCurrent(ctx context.Context, sc model.Scope) (CurrentOutput, error)
	SetCurrent(ctx context.Context, sc model.Scope, input SetCurrentInput) (CurrentOutput, error)

	// DeleteAll removes every record and the pointer of the user
	DeleteAll(ctx context.Context, sc model.Scope) error
}
