package usecase

import (
	"context"

	"checklist-ledger/internal/ledger"
	"checklist-ledger/internal/ledger/repository"
	"checklist-ledger/internal/model"
)

// Reset removes the caller's record for one outline.
func (uc *implUseCase) Reset(ctx context.Context, sc model.Scope, input ledger.ResetInput) error {
	if err := validKind(input.Kind); err != nil {
		return err
	}
	if _, err := uc.getOutline(ctx, input.Kind, input.ID); err != nil {
		return err
	}

	err := uc.repo.DeleteProgress(ctx, repository.DeleteProgressOptions{
		UserID: sc.UserID,
		Kind:   input.Kind,
		ID:     input.ID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "ledger.usecase.Reset: repo.DeleteProgress: %v", err)
		return ledger.ErrStoreFailure
	}
	return nil
}

// DeleteAll removes every record and the pointer of the caller.
func (uc *implUseCase) DeleteAll(ctx context.Context, sc model.Scope) error {
	if err := uc.repo.DeleteUser(ctx, sc.UserID); err != nil {
		uc.l.Errorf(ctx, "ledger.usecase.DeleteAll: repo.DeleteUser: %v", err)
		return ledger.ErrStoreFailure
	}
	return nil
}
