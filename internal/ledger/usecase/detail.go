package usecase

import (
	"context"

	"checklist-ledger/internal/ledger"
	"checklist-ledger/internal/model"
)

// Detail returns an outline with the caller's checked state laid over it.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, input ledger.DetailInput) (ledger.DetailOutput, error) {
	if err := validKind(input.Kind); err != nil {
		return ledger.DetailOutput{}, err
	}

	o, err := uc.getOutline(ctx, input.Kind, input.ID)
	if err != nil {
		return ledger.DetailOutput{}, err
	}

	rec := uc.readRecord(ctx, sc, input.Kind, input.ID)
	total := o.Total()
	checked := uc.tracker.DeriveChecked(total, rec.Index, rec.Found)

	return ledger.DetailOutput{
		Outline: o,
		Record:  rec,
		Checked: o.Split(checked),
		Stats:   uc.tracker.GetStats(total, rec.Index, rec.Found),
		Percent: uc.tracker.Percent(rec.Index, rec.Found, total),
	}, nil
}
