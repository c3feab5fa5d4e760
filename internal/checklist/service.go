package checklist

type Service interface {
	// DeriveChecked rebuilds the checked set from a stored index
	DeriveChecked(total, idx int, found bool) Set

	// Toggle applies the prefix toggle contract at position p
	Toggle(total, idx int, found bool, p int) ToggleResult

	// Percent calculates completion for a stored index
	Percent(idx int, found bool, total int) int

	// GetStats calculates checklist statistics
	GetStats(total, idx int, found bool) ChecklistStats

	// Classify groups per-outline progress into ongoing and completed
	Classify(entries []Entry) Summary
}

type service struct{}

func New() Service {
	return &service{}
}

func (s *service) DeriveChecked(total, idx int, found bool) Set {
	if !found {
		return DeriveChecked(total, -1)
	}
	return DeriveChecked(total, idx)
}

func (s *service) Toggle(total, idx int, found bool, p int) ToggleResult {
	before := s.DeriveChecked(total, idx, found)
	wasChecked := p >= 0 && p < len(before) && before[p]

	after, newIdx, keep := before.Toggle(p)
	return ToggleResult{
		Checked:  after,
		Index:    newIdx,
		Keep:     keep,
		TurnedOn: !wasChecked,
	}
}

func (s *service) Percent(idx int, found bool, total int) int {
	return Percent(idx, found, total)
}

// GetStats calculates checklist statistics
func (s *service) GetStats(total, idx int, found bool) ChecklistStats {
	if total <= 0 {
		return ChecklistStats{}
	}

	completed := s.DeriveChecked(total, idx, found).Count()
	return ChecklistStats{
		Total:     total,
		Completed: completed,
		Pending:   total - completed,
		Progress:  Percent(idx, found, total),
	}
}

func (s *service) Classify(entries []Entry) Summary {
	return Classify(entries)
}
