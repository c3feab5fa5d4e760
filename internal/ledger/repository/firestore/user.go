package firestore

import (
	"context"
	"fmt"

	fs "google.golang.org/api/firestore/v1"

	"checklist-ledger/internal/catalog"
	repo "checklist-ledger/internal/ledger/repository"
)

const (
	// Firestore caps a batch at 500 writes; stay well below.
	maxBatchWrites = 400
	listPageSize   = 300
)

// DeleteUser removes every record under users/{uid}/{kind} and then the
// user document itself.
func (r *implRepository) DeleteUser(ctx context.Context, userID string) error {
	parent := r.userDoc(userID)

	var names []string
	for _, kind := range catalog.Kinds {
		err := r.svc.Projects.Databases.Documents.List(parent, string(kind)).
			PageSize(listPageSize).
			MaskFieldPaths(fieldIndex).
			Pages(ctx, func(resp *fs.ListDocumentsResponse) error {
				for _, d := range resp.Documents {
					names = append(names, d.Name)
				}
				return nil
			})
		if err != nil && !isNotFound(err) {
			r.l.Errorf(ctx, "%s: list %s/%s: %v", r.dsn("DeleteUser"), parent, kind, err)
			return repo.ErrFailedToList
		}
	}

	for start := 0; start < len(names); start += maxBatchWrites {
		end := start + maxBatchWrites
		if end > len(names) {
			end = len(names)
		}
		if err := r.batchDelete(ctx, names[start:end]); err != nil {
			r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteUser"), err)
			return repo.ErrFailedToDelete
		}
	}

	if _, err := r.svc.Projects.Databases.Documents.Delete(parent).Context(ctx).Do(); err != nil && !isNotFound(err) {
		r.l.Errorf(ctx, "%s: delete %s: %v", r.dsn("DeleteUser"), parent, err)
		return repo.ErrFailedToDelete
	}
	return nil
}

func (r *implRepository) batchDelete(ctx context.Context, names []string) error {
	writes := make([]*fs.Write, 0, len(names))
	for _, n := range names {
		writes = append(writes, &fs.Write{Delete: n})
	}

	resp, err := r.svc.Projects.Databases.Documents.BatchWrite(r.database, &fs.BatchWriteRequest{Writes: writes}).
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("batch write: %w", err)
	}
	for i, st := range resp.Status {
		if st != nil && st.Code != 0 {
			return fmt.Errorf("batch write %s: code %d: %s", names[i], st.Code, st.Message)
		}
	}
	return nil
}
