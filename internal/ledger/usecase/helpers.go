package usecase

import (
	"context"
	"errors"

	"checklist-ledger/internal/catalog"
	"checklist-ledger/internal/ledger"
	"checklist-ledger/internal/ledger/repository"
	"checklist-ledger/internal/model"
	"checklist-ledger/internal/outline"
)

// getOutline resolves an outline and translates catalog errors into ledger ones.
func (uc *implUseCase) getOutline(ctx context.Context, kind catalog.Kind, id string) (outline.Outline, error) {
	out, err := uc.catalog.Get(ctx, catalog.GetInput{Kind: kind, ID: id})
	switch {
	case err == nil:
		return out.Outline, nil
	case errors.Is(err, catalog.ErrNotFound), errors.Is(err, catalog.ErrInvalidID):
		return outline.Outline{}, ledger.ErrOutlineNotFound
	case errors.Is(err, catalog.ErrUnknownKind):
		return outline.Outline{}, ledger.ErrUnknownKind
	default:
		uc.l.Errorf(ctx, "ledger.usecase.getOutline: %s/%s: %v", kind, id, err)
		return outline.Outline{}, err
	}
}

// readRecord is best-effort: a failed read is logged and reads as no record.
func (uc *implUseCase) readRecord(ctx context.Context, sc model.Scope, kind catalog.Kind, id string) ledger.Record {
	rec, err := uc.repo.GetProgress(ctx, repository.GetProgressOptions{
		UserID: sc.UserID,
		Kind:   kind,
		ID:     id,
	})
	if err != nil {
		uc.l.Warnf(ctx, "ledger.usecase.readRecord: %s/%s: %v", kind, id, err)
		return ledger.Record{}
	}
	return rec
}

func validKind(kind catalog.Kind) error {
	if _, err := catalog.ParseKind(string(kind)); err != nil {
		return ledger.ErrUnknownKind
	}
	return nil
}
