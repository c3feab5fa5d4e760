package firestore

import (
	"context"

	fs "google.golang.org/api/firestore/v1"

	"checklist-ledger/internal/ledger"
	repo "checklist-ledger/internal/ledger/repository"
)

// GetPointer reads users/{uid}. A missing document is an empty Pointer.
func (r *implRepository) GetPointer(ctx context.Context, userID string) (ledger.Pointer, error) {
	name := r.userDoc(userID)

	doc, err := r.svc.Projects.Databases.Documents.Get(name).
		MaskFieldPaths(fieldCurrentGame, fieldCurrentSeries).
		Context(ctx).Do()
	if isNotFound(err) {
		return ledger.Pointer{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %s: %v", r.dsn("GetPointer"), name, err)
		return ledger.Pointer{}, repo.ErrFailedToGet
	}
	return pointerFromDoc(doc), nil
}

// SetPointer merges one pointer field into users/{uid}, creating it if needed.
func (r *implRepository) SetPointer(ctx context.Context, opt repo.SetPointerOptions) error {
	name := r.userDoc(opt.UserID)
	field := pointerField(opt.Kind)

	doc := &fs.Document{Fields: map[string]fs.Value{field: stringOrNull(opt.ID)}}
	_, err := r.svc.Projects.Databases.Documents.Patch(name, doc).
		UpdateMaskFieldPaths(field).
		Context(ctx).Do()
	if err != nil {
		r.l.Errorf(ctx, "%s: %s: %v", r.dsn("SetPointer"), name, err)
		return repo.ErrFailedToSet
	}
	return nil
}
