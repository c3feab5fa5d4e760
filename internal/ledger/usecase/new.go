package usecase

import (
	"checklist-ledger/internal/catalog"
	"checklist-ledger/internal/checklist"
	"checklist-ledger/internal/ledger"
	"checklist-ledger/internal/ledger/repository"
	"checklist-ledger/pkg/log"
)

// implUseCase is the private implementation of ledger.UseCase.
type implUseCase struct {
	repo    repository.Repository
	catalog catalog.Service
	tracker checklist.Service
	l       log.Logger
}

var _ ledger.UseCase = (*implUseCase)(nil)

// New creates a new ledger UseCase implementation.
func New(repo repository.Repository, catalogSvc catalog.Service, tracker checklist.Service, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:    repo,
		catalog: catalogSvc,
		tracker: tracker,
		l:       l,
	}
}
