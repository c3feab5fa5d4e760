package usecase

import (
	"context"

	"checklist-ledger/internal/ledger"
	"checklist-ledger/internal/ledger/repository"
	"checklist-ledger/internal/model"
)

// Toggle flips one item and persists the resulting prefix. The computed
// state is returned even when the write fails; Persisted reports the outcome.
func (uc *implUseCase) Toggle(ctx context.Context, sc model.Scope, input ledger.ToggleInput) (ledger.ToggleOutput, error) {
	if err := validKind(input.Kind); err != nil {
		return ledger.ToggleOutput{}, err
	}

	o, err := uc.getOutline(ctx, input.Kind, input.ID)
	if err != nil {
		return ledger.ToggleOutput{}, err
	}

	p, err := o.Position(input.Section, input.Item)
	if err != nil {
		return ledger.ToggleOutput{}, ledger.ErrInvalidPosition
	}

	rec := uc.readRecord(ctx, sc, input.Kind, input.ID)
	total := o.Total()
	res := uc.tracker.Toggle(total, rec.Index, rec.Found, p)

	out := ledger.ToggleOutput{
		Outline:   o,
		Position:  p,
		TurnedOn:  res.TurnedOn,
		Checked:   o.Split(res.Checked),
		Persisted: true,
	}

	if res.Keep {
		out.Record = ledger.Record{Index: res.Index, Found: true}
		out.Percent = uc.tracker.Percent(res.Index, true, total)

		saved, err := uc.repo.SetProgress(ctx, repository.SetProgressOptions{
			UserID: sc.UserID,
			Kind:   input.Kind,
			ID:     input.ID,
			Index:  res.Index,
		})
		if err != nil {
			uc.l.Errorf(ctx, "ledger.usecase.Toggle: repo.SetProgress: %v", err)
			out.Persisted = false
			return out, nil
		}
		out.Record = saved
		return out, nil
	}

	err = uc.repo.DeleteProgress(ctx, repository.DeleteProgressOptions{
		UserID: sc.UserID,
		Kind:   input.Kind,
		ID:     input.ID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "ledger.usecase.Toggle: repo.DeleteProgress: %v", err)
		out.Persisted = false
	}
	return out, nil
}
