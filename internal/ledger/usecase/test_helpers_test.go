package usecase_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"checklist-ledger/internal/catalog"
	"checklist-ledger/internal/ledger"
	"checklist-ledger/internal/ledger/repository"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

var errStore = errors.New("store unavailable")

// mockRepo is an in-memory repository.Repository with failure switches.
type mockRepo struct {
	mu       sync.Mutex
	records  map[string]int
	pointers map[string]ledger.Pointer

	failGet, failSet, failDelete bool
	deletedUsers                 []string
}

func newMockRepo() *mockRepo {
	return &mockRepo{records: map[string]int{}, pointers: map[string]ledger.Pointer{}}
}

func recordKey(userID string, kind catalog.Kind, id string) string {
	return userID + "/" + string(kind) + "/" + id
}

func (m *mockRepo) GetProgress(ctx context.Context, opt repository.GetProgressOptions) (ledger.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failGet {
		return ledger.Record{}, errStore
	}
	idx, ok := m.records[recordKey(opt.UserID, opt.Kind, opt.ID)]
	if !ok {
		return ledger.Record{}, nil
	}
	return ledger.Record{Index: idx, Found: true}, nil
}

func (m *mockRepo) SetProgress(ctx context.Context, opt repository.SetProgressOptions) (ledger.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failSet {
		return ledger.Record{}, errStore
	}
	m.records[recordKey(opt.UserID, opt.Kind, opt.ID)] = opt.Index
	return ledger.Record{Index: opt.Index, UpdatedAt: time.Now(), Found: true}, nil
}

func (m *mockRepo) DeleteProgress(ctx context.Context, opt repository.DeleteProgressOptions) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failDelete {
		return errStore
	}
	delete(m.records, recordKey(opt.UserID, opt.Kind, opt.ID))
	return nil
}

func (m *mockRepo) GetPointer(ctx context.Context, userID string) (ledger.Pointer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failGet {
		return ledger.Pointer{}, errStore
	}
	return m.pointers[userID], nil
}

func (m *mockRepo) SetPointer(ctx context.Context, opt repository.SetPointerOptions) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failSet {
		return errStore
	}
	p := m.pointers[opt.UserID]
	if opt.Kind == catalog.KindSeries {
		p.CurrentSeries = opt.ID
	} else {
		p.CurrentGame = opt.ID
	}
	m.pointers[opt.UserID] = p
	return nil
}

func (m *mockRepo) DeleteUser(ctx context.Context, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failDelete {
		return errStore
	}
	m.deletedUsers = append(m.deletedUsers, userID)
	for k := range m.records {
		if len(k) > len(userID) && k[:len(userID)+1] == userID+"/" {
			delete(m.records, k)
		}
	}
	delete(m.pointers, userID)
	return nil
}

func (m *mockRepo) index(userID string, kind catalog.Kind, id string) (int, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	idx, ok := m.records[recordKey(userID, kind, id)]
	return idx, ok
}

// newCatalog builds a directory-backed catalog with a small fixed shelf.
func newCatalog(t *testing.T) catalog.Service {
	t.Helper()
	root := t.TempDir()
	files := map[string]string{
		"games/celeste.txt":  "Celeste\n- Prologue\n- Forsaken City\n- Old Site\n- Resort\n",
		"games/hades.txt":    "Hades\n# Tartarus\n- Meg\n# Asphodel\n- Lernie\n- Bone Hydra\n",
		"games/empty.txt":    "Empty game\n",
		"series/dark.txt":    "Dark\nSeason 1\n- Secrets\n- Lies\n",
		"series/arcane.txt":  "Arcane\n- Welcome to the Playground\n- Some Mysteries\n",
		"series/severed.txt": "Severance\n- Good News About Hell\n",
	}
	for name, body := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	svc, err := catalog.New(catalog.NewDirSource(root), 16, &mockLogger{})
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}
	return svc
}
