package http

import (
	"checklist-ledger/internal/catalog"
	"checklist-ledger/internal/outline"
)

// --- Request DTOs ---

type listReq struct {
	Kind  string `uri:"kind" binding:"required"`
	Query string `form:"q"`
}

func (r listReq) toInput(kind catalog.Kind) catalog.ListInput {
	return catalog.ListInput{Kind: kind, Query: r.Query}
}

type getReq struct {
	Kind string `uri:"kind" binding:"required"`
	ID   string `uri:"id" binding:"required"`
}

// --- Response DTOs ---

type sectionResp struct {
	Header string   `json:"header,omitempty"`
	Items  []string `json:"items"`
}

type outlineItemResp struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Total int    `json:"total"`
}

type outlineResp struct {
	ID       string        `json:"id"`
	Title    string        `json:"title"`
	Total    int           `json:"total"`
	Sections []sectionResp `json:"sections"`
}

type listResp struct {
	Kind     string            `json:"kind"`
	Outlines []outlineItemResp `json:"outlines"`
}

type countResp struct {
	Games  int `json:"games"`
	Series int `json:"series"`
}

func newOutlineResp(o outline.Outline) outlineResp {
	sections := make([]sectionResp, 0, len(o.Sections))
	for _, s := range o.Sections {
		items := s.Items
		if items == nil {
			items = []string{}
		}
		sections = append(sections, sectionResp{Header: s.Header, Items: items})
	}
	return outlineResp{ID: o.ID, Title: o.Title, Total: o.Total(), Sections: sections}
}

func (h *handler) newListResp(kind catalog.Kind, o catalog.ListOutput) listResp {
	items := make([]outlineItemResp, 0, len(o.Outlines))
	for _, ol := range o.Outlines {
		items = append(items, outlineItemResp{ID: ol.ID, Title: ol.Title, Total: ol.Total()})
	}
	return listResp{Kind: string(kind), Outlines: items}
}

func (h *handler) newCountResp(c catalog.Count) countResp {
	return countResp{Games: c.Games, Series: c.Series}
}
