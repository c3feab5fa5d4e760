package ledger

import (
	"time"

	"checklist-ledger/internal/catalog"
	"checklist-ledger/internal/checklist"
	"checklist-ledger/internal/outline"
)

// --- Domain Models ---

// Record is the stored progress of one user on one outline. Index is the
// flattened position of the last completed item.
type Record struct {
	Index     int
	UpdatedAt time.Time
	Found     bool // false when the user has no record for the outline
}

// Pointer remembers what a user is currently playing and watching.
type Pointer struct {
	CurrentGame   string
	CurrentSeries string
}

// Get returns the current id for kind.
func (p Pointer) Get(kind catalog.Kind) string {
	if kind == catalog.KindSeries {
		return p.CurrentSeries
	}
	return p.CurrentGame
}

// --- UseCase Inputs ---

type DetailInput struct {
	Kind catalog.Kind
	ID   string
}

type ToggleInput struct {
	Kind    catalog.Kind
	ID      string
	Section int
	Item    int
}

type ResetInput struct {
	Kind catalog.Kind
	ID   string
}

type SetCurrentInput struct {
	Kind catalog.Kind
	ID   string // Empty clears the pointer
}

// --- UseCase Outputs ---

type DetailOutput struct {
	Outline outline.Outline
	Record  Record
	Checked [][]bool
	Stats   checklist.ChecklistStats
	Percent int
}

type ToggleOutput struct {
	Outline   outline.Outline
	Position  int
	TurnedOn  bool
	Record    Record
	Checked   [][]bool
	Percent   int
	Persisted bool // false when the store write failed; state is still returned
}

type SummaryOutput struct {
	Games  checklist.Summary
	Series checklist.Summary
}

type CurrentOutput struct {
	Pointer   Pointer
	Persisted bool
}
