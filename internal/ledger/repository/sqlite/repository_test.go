package sqlite_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"checklist-ledger/internal/catalog"
	"checklist-ledger/internal/ledger/repository"
	"checklist-ledger/internal/ledger/repository/sqlite"
	"checklist-ledger/pkg/log"
)

func newTestRepo(t *testing.T) repository.Repository {
	t.Helper()
	db, err := sqlite.Open(filepath.Join(t.TempDir(), "nested", "ledger.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return sqlite.New(db, log.NewNop())
}

func TestSQLiteProgress(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	key := repository.GetProgressOptions{UserID: "u1", Kind: catalog.KindSeries, ID: "dark"}

	rec, err := repo.GetProgress(ctx, key)
	if err != nil || rec.Found {
		t.Fatalf("expected no record, got %+v, %v", rec, err)
	}

	for _, idx := range []int{3, 0, 7} {
		set, err := repo.SetProgress(ctx, repository.SetProgressOptions{UserID: "u1", Kind: catalog.KindSeries, ID: "dark", Index: idx})
		if err != nil {
			t.Fatalf("SetProgress(%d): %v", idx, err)
		}
		got, err := repo.GetProgress(ctx, key)
		if err != nil {
			t.Fatalf("GetProgress: %v", err)
		}
		if !got.Found || got.Index != idx || got.UpdatedAt.IsZero() || !got.UpdatedAt.Equal(set.UpdatedAt) {
			t.Errorf("after set %d: got %+v, set %+v", idx, got, set)
		}
	}

	other, _ := repo.GetProgress(ctx, repository.GetProgressOptions{UserID: "u1", Kind: catalog.KindGames, ID: "dark"})
	if other.Found {
		t.Error("kinds must not share records")
	}

	if err := repo.DeleteProgress(ctx, repository.DeleteProgressOptions{UserID: "u1", Kind: catalog.KindSeries, ID: "dark"}); err != nil {
		t.Fatalf("DeleteProgress: %v", err)
	}
	if rec, _ := repo.GetProgress(ctx, key); rec.Found {
		t.Error("record should be deleted")
	}
}

func TestSQLitePointer(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if err := repo.SetPointer(ctx, repository.SetPointerOptions{UserID: "u1", Kind: catalog.KindSeries, ID: "dark"}); err != nil {
		t.Fatalf("SetPointer: %v", err)
	}
	if err := repo.SetPointer(ctx, repository.SetPointerOptions{UserID: "u1", Kind: catalog.KindGames, ID: "celeste"}); err != nil {
		t.Fatalf("SetPointer: %v", err)
	}

	p, err := repo.GetPointer(ctx, "u1")
	if err != nil {
		t.Fatalf("GetPointer: %v", err)
	}
	if p.CurrentGame != "celeste" || p.CurrentSeries != "dark" {
		t.Errorf("unexpected pointer: %+v", p)
	}

	repo.SetPointer(ctx, repository.SetPointerOptions{UserID: "u1", Kind: catalog.KindSeries})
	p, _ = repo.GetPointer(ctx, "u1")
	if p.CurrentSeries != "" || p.CurrentGame != "celeste" {
		t.Errorf("unexpected pointer after clear: %+v", p)
	}
}

func TestSQLiteDeleteUser(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	repo.SetProgress(ctx, repository.SetProgressOptions{UserID: "u1", Kind: catalog.KindGames, ID: "a", Index: 1})
	repo.SetProgress(ctx, repository.SetProgressOptions{UserID: "u1", Kind: catalog.KindSeries, ID: "b", Index: 2})
	repo.SetProgress(ctx, repository.SetProgressOptions{UserID: "u2", Kind: catalog.KindGames, ID: "a", Index: 3})
	repo.SetPointer(ctx, repository.SetPointerOptions{UserID: "u1", Kind: catalog.KindGames, ID: "a"})

	if err := repo.DeleteUser(ctx, "u1"); err != nil {
		t.Fatalf("DeleteUser: %v", err)
	}

	for _, k := range []repository.GetProgressOptions{
		{UserID: "u1", Kind: catalog.KindGames, ID: "a"},
		{UserID: "u1", Kind: catalog.KindSeries, ID: "b"},
	} {
		if rec, _ := repo.GetProgress(ctx, k); rec.Found {
			t.Errorf("record %+v survived", k)
		}
	}
	if p, _ := repo.GetPointer(ctx, "u1"); p.CurrentGame != "" {
		t.Errorf("pointer survived: %+v", p)
	}
	if rec, _ := repo.GetProgress(ctx, repository.GetProgressOptions{UserID: "u2", Kind: catalog.KindGames, ID: "a"}); !rec.Found || rec.Index != 3 {
		t.Errorf("other user affected: %+v", rec)
	}
}

func TestSQLiteClosedDB(t *testing.T) {
	db, err := sqlite.Open(filepath.Join(t.TempDir(), "ledger.db"))
	if err != nil {
		t.Fatal(err)
	}
	repo := sqlite.New(db, log.NewNop())
	db.Close()

	_, err = repo.GetProgress(context.Background(), repository.GetProgressOptions{UserID: "u1", Kind: catalog.KindGames, ID: "a"})
	if !errors.Is(err, repository.ErrFailedToGet) {
		t.Errorf("expected ErrFailedToGet, got %v", err)
	}
}
