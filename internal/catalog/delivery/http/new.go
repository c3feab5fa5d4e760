package http

import (
	"checklist-ledger/internal/catalog"
	"checklist-ledger/pkg/log"
)

type handler struct {
	l   log.Logger
	svc catalog.Service
}

// New creates a new HTTP handler for the catalog.
func New(l log.Logger, svc catalog.Service) *handler {
	return &handler{l: l, svc: svc}
}
