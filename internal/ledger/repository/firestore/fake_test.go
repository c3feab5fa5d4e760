package firestore_test

import (
	"encoding/json"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	fs "google.golang.org/api/firestore/v1"
)

// fakeFirestore is a tiny in-memory stand-in for the Firestore REST API,
// covering the calls the repository makes.
type fakeFirestore struct {
	mu       sync.Mutex
	docs     map[string]*fs.Document
	failAll  bool
	requests []string
}

func newFakeFirestore() *fakeFirestore {
	return &fakeFirestore{docs: map[string]*fs.Document{}}
}

func (f *fakeFirestore) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	path := strings.TrimPrefix(r.URL.Path, "/v1/")
	f.requests = append(f.requests, r.Method+" "+path)

	if f.failAll {
		writeError(w, http.StatusInternalServerError, "INTERNAL")
		return
	}

	switch {
	case r.Method == http.MethodPost && strings.HasSuffix(path, ":commit"):
		f.commit(w, r)
	case r.Method == http.MethodPost && strings.HasSuffix(path, ":batchWrite"):
		f.batchWrite(w, r)
	case r.Method == http.MethodGet && isCollection(path):
		f.list(w, path)
	case r.Method == http.MethodGet:
		doc, ok := f.docs[path]
		if !ok {
			writeError(w, http.StatusNotFound, "NOT_FOUND")
			return
		}
		writeJSON(w, doc)
	case r.Method == http.MethodPatch:
		var body fs.Document
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, "INVALID_ARGUMENT")
			return
		}
		doc := f.upsert(path, body.Fields, r.URL.Query()["updateMask.fieldPaths"])
		writeJSON(w, doc)
	case r.Method == http.MethodDelete:
		delete(f.docs, path)
		writeJSON(w, map[string]any{})
	default:
		writeError(w, http.StatusMethodNotAllowed, "UNIMPLEMENTED")
	}
}

func (f *fakeFirestore) upsert(name string, fields map[string]fs.Value, mask []string) *fs.Document {
	doc, ok := f.docs[name]
	if !ok {
		doc = &fs.Document{Name: name, Fields: map[string]fs.Value{}}
		f.docs[name] = doc
	}
	if len(mask) == 0 {
		doc.Fields = map[string]fs.Value{}
		for k, v := range fields {
			doc.Fields[k] = v
		}
	}
	for _, k := range mask {
		if v, ok := fields[k]; ok {
			doc.Fields[k] = v
		} else {
			delete(doc.Fields, k)
		}
	}
	doc.UpdateTime = time.Now().UTC().Format(time.RFC3339Nano)
	return doc
}

func (f *fakeFirestore) commit(w http.ResponseWriter, r *http.Request) {
	var req fs.CommitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ARGUMENT")
		return
	}

	now := time.Now().UTC().Format(time.RFC3339Nano)
	resp := fs.CommitResponse{CommitTime: now}
	for _, wr := range req.Writes {
		result := &fs.WriteResult{UpdateTime: now}
		switch {
		case wr.Delete != "":
			delete(f.docs, wr.Delete)
		case wr.Update != nil:
			var mask []string
			if wr.UpdateMask != nil {
				mask = wr.UpdateMask.FieldPaths
			}
			doc := f.upsert(wr.Update.Name, wr.Update.Fields, mask)
			for _, tr := range wr.UpdateTransforms {
				v := fs.Value{TimestampValue: now}
				doc.Fields[tr.FieldPath] = v
				result.TransformResults = append(result.TransformResults, &v)
			}
		}
		resp.WriteResults = append(resp.WriteResults, result)
	}
	writeJSON(w, resp)
}

func (f *fakeFirestore) batchWrite(w http.ResponseWriter, r *http.Request) {
	var req fs.BatchWriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ARGUMENT")
		return
	}
	var resp fs.BatchWriteResponse
	for _, wr := range req.Writes {
		delete(f.docs, wr.Delete)
		resp.Status = append(resp.Status, &fs.Status{})
		resp.WriteResults = append(resp.WriteResults, &fs.WriteResult{})
	}
	writeJSON(w, resp)
}

func (f *fakeFirestore) list(w http.ResponseWriter, collection string) {
	var names []string
	for name := range f.docs {
		rest, ok := strings.CutPrefix(name, collection+"/")
		if ok && !strings.Contains(rest, "/") {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	resp := fs.ListDocumentsResponse{}
	for _, n := range names {
		resp.Documents = append(resp.Documents, f.docs[n])
	}
	writeJSON(w, resp)
}

func (f *fakeFirestore) count(prefix string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for name := range f.docs {
		if strings.HasPrefix(name, prefix) {
			n++
		}
	}
	return n
}

// isCollection reports whether path names a collection: an odd number of
// segments after ".../documents/".
func isCollection(path string) bool {
	_, rel, ok := strings.Cut(path, "/documents/")
	if !ok {
		return false
	}
	return len(strings.Split(rel, "/"))%2 == 1
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, status string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]any{"code": code, "message": strings.ToLower(status), "status": status},
	})
}
