package usecase

import (
	"context"

	"checklist-ledger/internal/catalog"
	"checklist-ledger/internal/ledger"
	"checklist-ledger/internal/ledger/repository"
	"checklist-ledger/internal/model"
)

// GetCurrent returns the caller's current game and series. A failed read
// is logged and returns an empty pointer.
func (uc *implUseCase) GetCurrent(ctx context.Context, sc model.Scope) (ledger.CurrentOutput, error) {
	p, err := uc.repo.GetPointer(ctx, sc.UserID)
	if err != nil {
		uc.l.Warnf(ctx, "ledger.usecase.GetCurrent: repo.GetPointer: %v", err)
		return ledger.CurrentOutput{}, nil
	}
	return ledger.CurrentOutput{Pointer: p, Persisted: true}, nil
}

// SetCurrent points the caller's current game or series at an outline.
// An empty ID clears it.
func (uc *implUseCase) SetCurrent(ctx context.Context, sc model.Scope, input ledger.SetCurrentInput) (ledger.CurrentOutput, error) {
	if err := validKind(input.Kind); err != nil {
		return ledger.CurrentOutput{}, err
	}
	if input.ID != "" {
		if _, err := uc.getOutline(ctx, input.Kind, input.ID); err != nil {
			return ledger.CurrentOutput{}, err
		}
	}

	p, err := uc.repo.GetPointer(ctx, sc.UserID)
	if err != nil {
		uc.l.Warnf(ctx, "ledger.usecase.SetCurrent: repo.GetPointer: %v", err)
		p = ledger.Pointer{}
	}
	if input.Kind == catalog.KindSeries {
		p.CurrentSeries = input.ID
	} else {
		p.CurrentGame = input.ID
	}

	err = uc.repo.SetPointer(ctx, repository.SetPointerOptions{
		UserID: sc.UserID,
		Kind:   input.Kind,
		ID:     input.ID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "ledger.usecase.SetCurrent: repo.SetPointer: %v", err)
		return ledger.CurrentOutput{Pointer: p, Persisted: false}, nil
	}
	return ledger.CurrentOutput{Pointer: p, Persisted: true}, nil
}
