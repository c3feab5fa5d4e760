package http

import (
	"checklist-ledger/internal/catalog"
	"checklist-ledger/internal/checklist"
	"checklist-ledger/internal/ledger"
	"checklist-ledger/internal/outline"
	"checklist-ledger/pkg/response"
)

// --- Request DTOs ---

type outlineURI struct {
	Kind string `uri:"kind" binding:"required"`
	ID   string `uri:"id" binding:"required"`
}

type toggleReq struct {
	Section *int `json:"section" binding:"required,min=0"`
	Item    *int `json:"item" binding:"required,min=0"`
}

func (r toggleReq) toInput(kind catalog.Kind, id string) ledger.ToggleInput {
	return ledger.ToggleInput{Kind: kind, ID: id, Section: *r.Section, Item: *r.Item}
}

type setCurrentReq struct {
	Kind string `json:"kind" binding:"required"`
	ID   string `json:"id"` // Empty clears the pointer
}

// --- Response DTOs ---

type sectionResp struct {
	Header  string   `json:"header,omitempty"`
	Items   []string `json:"items"`
	Checked []bool   `json:"checked"`
}

type statsResp struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Pending   int `json:"pending"`
}

type detailResp struct {
	ID        string             `json:"id"`
	Title     string             `json:"title"`
	Sections  []sectionResp      `json:"sections"`
	Index     *int               `json:"index"`
	UpdatedAt response.Timestamp `json:"updated_at"`
	Stats     statsResp          `json:"stats"`
	Percent   int                `json:"percent"`
}

type toggleResp struct {
	Position  int           `json:"position"`
	TurnedOn  bool          `json:"turned_on"`
	Index     *int          `json:"index"`
	Sections  []sectionResp `json:"sections"`
	Percent   int           `json:"percent"`
	Persisted bool          `json:"persisted"`
}

type entryResp struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Percent int    `json:"percent"`
}

type kindSummaryResp struct {
	Ongoing   []entryResp `json:"ongoing"`
	Completed []entryResp `json:"completed"`
}

type summaryResp struct {
	Games  kindSummaryResp `json:"games"`
	Series kindSummaryResp `json:"series"`
}

type currentResp struct {
	CurrentGame   *string `json:"current_game"`
	CurrentSeries *string `json:"current_series"`
	Persisted     bool    `json:"persisted"`
}

func newSections(o outline.Outline, checked [][]bool) []sectionResp {
	out := make([]sectionResp, 0, len(o.Sections))
	for si, s := range o.Sections {
		items := s.Items
		if items == nil {
			items = []string{}
		}
		row := []bool{}
		if si < len(checked) && checked[si] != nil {
			row = checked[si]
		}
		out = append(out, sectionResp{Header: s.Header, Items: items, Checked: row})
	}
	return out
}

func recordIndex(rec ledger.Record) *int {
	if !rec.Found {
		return nil
	}
	idx := rec.Index
	return &idx
}

func (h *handler) newDetailResp(o ledger.DetailOutput) detailResp {
	return detailResp{
		ID:        o.Outline.ID,
		Title:     o.Outline.Title,
		Sections:  newSections(o.Outline, o.Checked),
		Index:     recordIndex(o.Record),
		UpdatedAt: response.Timestamp(o.Record.UpdatedAt),
		Stats: statsResp{
			Total:     o.Stats.Total,
			Completed: o.Stats.Completed,
			Pending:   o.Stats.Pending,
		},
		Percent: o.Percent,
	}
}

func (h *handler) newToggleResp(o ledger.ToggleOutput) toggleResp {
	return toggleResp{
		Position:  o.Position,
		TurnedOn:  o.TurnedOn,
		Index:     recordIndex(o.Record),
		Sections:  newSections(o.Outline, o.Checked),
		Percent:   o.Percent,
		Persisted: o.Persisted,
	}
}

func newEntries(entries []checklist.Entry) []entryResp {
	out := make([]entryResp, 0, len(entries))
	for _, e := range entries {
		out = append(out, entryResp{ID: e.ID, Title: e.Title, Percent: e.Percent})
	}
	return out
}

func (h *handler) newSummaryResp(o ledger.SummaryOutput) summaryResp {
	return summaryResp{
		Games:  kindSummaryResp{Ongoing: newEntries(o.Games.Ongoing), Completed: newEntries(o.Games.Completed)},
		Series: kindSummaryResp{Ongoing: newEntries(o.Series.Ongoing), Completed: newEntries(o.Series.Completed)},
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func (h *handler) newCurrentResp(o ledger.CurrentOutput) currentResp {
	return currentResp{
		CurrentGame:   optional(o.Pointer.CurrentGame),
		CurrentSeries: optional(o.Pointer.CurrentSeries),
		Persisted:     o.Persisted,
	}
}
