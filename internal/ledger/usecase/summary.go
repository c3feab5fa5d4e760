package usecase

import (
	"context"

	"checklist-ledger/internal/catalog"
	"checklist-ledger/internal/checklist"
	"checklist-ledger/internal/ledger"
	"checklist-ledger/internal/model"
)

// Summary classifies the caller's progress over every outline of each kind.
func (uc *implUseCase) Summary(ctx context.Context, sc model.Scope) (ledger.SummaryOutput, error) {
	var out ledger.SummaryOutput
	for _, kind := range catalog.Kinds {
		sum, err := uc.summarize(ctx, sc, kind)
		if err != nil {
			return ledger.SummaryOutput{}, err
		}
		if kind == catalog.KindSeries {
			out.Series = sum
		} else {
			out.Games = sum
		}
	}
	return out, nil
}

func (uc *implUseCase) summarize(ctx context.Context, sc model.Scope, kind catalog.Kind) (checklist.Summary, error) {
	list, err := uc.catalog.List(ctx, catalog.ListInput{Kind: kind})
	if err != nil {
		uc.l.Errorf(ctx, "ledger.usecase.Summary: catalog.List %s: %v", kind, err)
		return checklist.Summary{}, err
	}

	entries := make([]checklist.Entry, 0, len(list.Outlines))
	for _, o := range list.Outlines {
		total := o.Total()
		if total == 0 {
			continue
		}
		rec := uc.readRecord(ctx, sc, kind, o.ID)
		entries = append(entries, checklist.Entry{
			ID:      o.ID,
			Title:   o.Title,
			Percent: uc.tracker.Percent(rec.Index, rec.Found, total),
		})
	}

	return uc.tracker.Classify(entries), nil
}
