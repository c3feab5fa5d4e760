package firestore

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	fs "google.golang.org/api/firestore/v1"
	"google.golang.org/api/googleapi"

	"checklist-ledger/internal/catalog"
	"checklist-ledger/internal/ledger"
)

const (
	collectionUsers = "users"

	fieldIndex         = "index"
	fieldUpdatedAt     = "updatedAt"
	fieldCurrentGame   = "currentGame"
	fieldCurrentSeries = "currentSeries"

	serverRequestTime = "REQUEST_TIME"
	nullValue         = "NULL_VALUE"
)

func (r *implRepository) documentsRoot() string {
	return r.database + "/documents"
}

func (r *implRepository) userDoc(userID string) string {
	return r.documentsRoot() + "/" + collectionUsers + "/" + userID
}

func (r *implRepository) progressDoc(userID string, kind catalog.Kind, id string) string {
	return r.userDoc(userID) + "/" + string(kind) + "/" + id
}

func pointerField(kind catalog.Kind) string {
	if kind == catalog.KindSeries {
		return fieldCurrentSeries
	}
	return fieldCurrentGame
}

func intValue(n int) fs.Value {
	// ForceSendFields keeps index 0 on the wire.
	return fs.Value{IntegerValue: int64(n), ForceSendFields: []string{"IntegerValue"}}
}

func stringOrNull(s string) fs.Value {
	if s == "" {
		return fs.Value{NullValue: nullValue}
	}
	return fs.Value{StringValue: s}
}

// recordFromDoc reads {index, updatedAt}. A document without an index field
// counts as no record.
func recordFromDoc(doc *fs.Document) ledger.Record {
	if doc == nil {
		return ledger.Record{}
	}
	v, ok := doc.Fields[fieldIndex]
	if !ok || v.NullValue != "" {
		return ledger.Record{}
	}

	rec := ledger.Record{Found: true, Index: int(v.IntegerValue)}
	switch {
	case v.DoubleValue != 0:
		rec.Index = int(v.DoubleValue)
	case v.StringValue != "":
		// Tolerate indexes written as strings by older clients.
		n, err := strconv.Atoi(v.StringValue)
		if err != nil {
			return ledger.Record{}
		}
		rec.Index = n
	}

	if ts, ok := doc.Fields[fieldUpdatedAt]; ok {
		rec.UpdatedAt = parseTime(ts.TimestampValue)
	}
	if rec.UpdatedAt.IsZero() {
		rec.UpdatedAt = parseTime(doc.UpdateTime)
	}
	return rec
}

func pointerFromDoc(doc *fs.Document) ledger.Pointer {
	if doc == nil {
		return ledger.Pointer{}
	}
	return ledger.Pointer{
		CurrentGame:   doc.Fields[fieldCurrentGame].StringValue,
		CurrentSeries: doc.Fields[fieldCurrentSeries].StringValue,
	}
}

func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func isNotFound(err error) bool {
	var gerr *googleapi.Error
	return errors.As(err, &gerr) && gerr.Code == http.StatusNotFound
}
