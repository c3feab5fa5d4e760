package firestore

import (
	"context"
	"time"

	fs "google.golang.org/api/firestore/v1"

	"checklist-ledger/internal/ledger"
	repo "checklist-ledger/internal/ledger/repository"
)

// GetProgress reads one record. Returns a zero Record when the document is missing.
func (r *implRepository) GetProgress(ctx context.Context, opt repo.GetProgressOptions) (ledger.Record, error) {
	name := r.progressDoc(opt.UserID, opt.Kind, opt.ID)

	doc, err := r.svc.Projects.Databases.Documents.Get(name).Context(ctx).Do()
	if isNotFound(err) {
		return ledger.Record{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %s: %v", r.dsn("GetProgress"), name, err)
		return ledger.Record{}, repo.ErrFailedToGet
	}
	return recordFromDoc(doc), nil
}

// SetProgress merges {index} into the record and stamps updatedAt with the
// server's request time.
func (r *implRepository) SetProgress(ctx context.Context, opt repo.SetProgressOptions) (ledger.Record, error) {
	name := r.progressDoc(opt.UserID, opt.Kind, opt.ID)

	req := &fs.CommitRequest{
		Writes: []*fs.Write{{
			Update: &fs.Document{
				Name:   name,
				Fields: map[string]fs.Value{fieldIndex: intValue(opt.Index)},
			},
			UpdateMask: &fs.DocumentMask{FieldPaths: []string{fieldIndex}},
			UpdateTransforms: []*fs.FieldTransform{{
				FieldPath:        fieldUpdatedAt,
				SetToServerValue: serverRequestTime,
			}},
		}},
	}

	resp, err := r.svc.Projects.Databases.Documents.Commit(r.database, req).Context(ctx).Do()
	if err != nil {
		r.l.Errorf(ctx, "%s: %s: %v", r.dsn("SetProgress"), name, err)
		return ledger.Record{}, repo.ErrFailedToSet
	}

	rec := ledger.Record{Index: opt.Index, Found: true, UpdatedAt: parseTime(resp.CommitTime)}
	if len(resp.WriteResults) > 0 {
		wr := resp.WriteResults[0]
		if len(wr.TransformResults) > 0 {
			if t := parseTime(wr.TransformResults[0].TimestampValue); !t.IsZero() {
				rec.UpdatedAt = t
			}
		}
	}
	if rec.UpdatedAt.IsZero() {
		rec.UpdatedAt = time.Now().UTC()
	}
	return rec, nil
}

// DeleteProgress removes a record. Deleting a missing record succeeds.
func (r *implRepository) DeleteProgress(ctx context.Context, opt repo.DeleteProgressOptions) error {
	name := r.progressDoc(opt.UserID, opt.Kind, opt.ID)

	_, err := r.svc.Projects.Databases.Documents.Delete(name).Context(ctx).Do()
	if err != nil && !isNotFound(err) {
		r.l.Errorf(ctx, "%s: %s: %v", r.dsn("DeleteProgress"), name, err)
		return repo.ErrFailedToDelete
	}
	return nil
}
