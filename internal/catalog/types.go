package catalog

import "checklist-ledger/internal/outline"

// Kind names a catalog shelf.
type Kind string

const (
	KindGames  Kind = "games"
	KindSeries Kind = "series"
)

// Kinds lists every catalog kind in display order.
var Kinds = []Kind{KindGames, KindSeries}

// ParseKind validates a kind coming from a URL or CLI argument.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindGames, KindSeries:
		return Kind(s), nil
	}
	return "", ErrUnknownKind
}

// Count is the number of resources per kind.
type Count struct {
	Games  int `json:"games"`
	Series int `json:"series"`
}

// --- Service Inputs / Outputs ---

type ListInput struct {
	Kind  Kind
	Query string // Fuzzy title filter, empty for all
}

type ListOutput struct {
	Outlines []outline.Outline
}

type GetInput struct {
	Kind Kind
	ID   string
}

type GetOutput struct {
	Outline outline.Outline
}
