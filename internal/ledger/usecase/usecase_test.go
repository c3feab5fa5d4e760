package usecase_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"checklist-ledger/internal/catalog"
	"checklist-ledger/internal/checklist"
	"checklist-ledger/internal/ledger"
	"checklist-ledger/internal/ledger/usecase"
	"checklist-ledger/internal/model"
)

var alice = model.Scope{UserID: "alice", Email: "alice@example.com"}

func TestToggle(t *testing.T) {
	ctx := context.Background()
	cat := newCatalog(t)

	t.Run("turn on fills prefix", func(t *testing.T) {
		repo := newMockRepo()
		uc := usecase.New(repo, cat, checklist.New(), &mockLogger{})

		out, err := uc.Toggle(ctx, alice, ledger.ToggleInput{Kind: catalog.KindGames, ID: "celeste", Section: 0, Item: 2})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.TurnedOn || !out.Persisted || out.Position != 2 {
			t.Errorf("unexpected output: %+v", out)
		}
		if want := [][]bool{{true, true, true, false}}; !reflect.DeepEqual(out.Checked, want) {
			t.Errorf("checked = %v, want %v", out.Checked, want)
		}
		if out.Percent != 75 {
			t.Errorf("percent = %d, want 75", out.Percent)
		}
		if idx, ok := repo.index("alice", catalog.KindGames, "celeste"); !ok || idx != 2 {
			t.Errorf("stored index = %d (%v), want 2", idx, ok)
		}
	})

	t.Run("turn off truncates", func(t *testing.T) {
		repo := newMockRepo()
		repo.records[recordKey("alice", catalog.KindGames, "celeste")] = 3
		uc := usecase.New(repo, cat, checklist.New(), &mockLogger{})

		out, err := uc.Toggle(ctx, alice, ledger.ToggleInput{Kind: catalog.KindGames, ID: "celeste", Section: 0, Item: 1})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.TurnedOn {
			t.Error("expected item to be turned off")
		}
		if want := [][]bool{{true, false, false, false}}; !reflect.DeepEqual(out.Checked, want) {
			t.Errorf("checked = %v, want %v", out.Checked, want)
		}
		if idx, _ := repo.index("alice", catalog.KindGames, "celeste"); idx != 0 {
			t.Errorf("stored index = %d, want 0", idx)
		}
	})

	t.Run("turning off first item deletes record", func(t *testing.T) {
		repo := newMockRepo()
		repo.records[recordKey("alice", catalog.KindGames, "celeste")] = 2
		uc := usecase.New(repo, cat, checklist.New(), &mockLogger{})

		out, err := uc.Toggle(ctx, alice, ledger.ToggleInput{Kind: catalog.KindGames, ID: "celeste", Section: 0, Item: 0})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Record.Found || out.Percent != 0 {
			t.Errorf("expected no record, got %+v percent %d", out.Record, out.Percent)
		}
		if _, ok := repo.index("alice", catalog.KindGames, "celeste"); ok {
			t.Error("record should be deleted")
		}
	})

	t.Run("position spans sections", func(t *testing.T) {
		repo := newMockRepo()
		uc := usecase.New(repo, cat, checklist.New(), &mockLogger{})

		out, err := uc.Toggle(ctx, alice, ledger.ToggleInput{Kind: catalog.KindGames, ID: "hades", Section: 1, Item: 1})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Position != 2 || out.Percent != 100 {
			t.Errorf("position = %d percent = %d", out.Position, out.Percent)
		}
		if want := [][]bool{{true}, {true, true}}; !reflect.DeepEqual(out.Checked, want) {
			t.Errorf("checked = %v, want %v", out.Checked, want)
		}
	})

	t.Run("write failure is optimistic", func(t *testing.T) {
		repo := newMockRepo()
		repo.failSet = true
		uc := usecase.New(repo, cat, checklist.New(), &mockLogger{})

		out, err := uc.Toggle(ctx, alice, ledger.ToggleInput{Kind: catalog.KindGames, ID: "celeste", Section: 0, Item: 1})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Persisted {
			t.Error("expected Persisted=false")
		}
		if !out.Record.Found || out.Record.Index != 1 || out.Percent != 50 {
			t.Errorf("expected optimistic state, got %+v percent %d", out.Record, out.Percent)
		}
	})

	t.Run("read failure reads as no record", func(t *testing.T) {
		repo := newMockRepo()
		repo.records[recordKey("alice", catalog.KindGames, "celeste")] = 3
		repo.failGet = true
		uc := usecase.New(repo, cat, checklist.New(), &mockLogger{})

		out, err := uc.Toggle(ctx, alice, ledger.ToggleInput{Kind: catalog.KindGames, ID: "celeste", Section: 0, Item: 0})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.TurnedOn || out.Record.Index != 0 {
			t.Errorf("unexpected output: %+v", out)
		}
	})

	t.Run("invalid position", func(t *testing.T) {
		uc := usecase.New(newMockRepo(), cat, checklist.New(), &mockLogger{})
		for _, in := range []ledger.ToggleInput{
			{Kind: catalog.KindGames, ID: "celeste", Section: 1, Item: 0},
			{Kind: catalog.KindGames, ID: "celeste", Section: 0, Item: 4},
			{Kind: catalog.KindGames, ID: "celeste", Section: -1, Item: 0},
		} {
			if _, err := uc.Toggle(ctx, alice, in); !errors.Is(err, ledger.ErrInvalidPosition) {
				t.Errorf("%+v: expected ErrInvalidPosition, got %v", in, err)
			}
		}
	})

	t.Run("unknown outline and kind", func(t *testing.T) {
		uc := usecase.New(newMockRepo(), cat, checklist.New(), &mockLogger{})
		if _, err := uc.Toggle(ctx, alice, ledger.ToggleInput{Kind: catalog.KindGames, ID: "nope"}); !errors.Is(err, ledger.ErrOutlineNotFound) {
			t.Errorf("expected ErrOutlineNotFound, got %v", err)
		}
		if _, err := uc.Toggle(ctx, alice, ledger.ToggleInput{Kind: "books", ID: "celeste"}); !errors.Is(err, ledger.ErrUnknownKind) {
			t.Errorf("expected ErrUnknownKind, got %v", err)
		}
	})
}

func TestDetail(t *testing.T) {
	ctx := context.Background()
	cat := newCatalog(t)
	repo := newMockRepo()
	repo.records[recordKey("alice", catalog.KindSeries, "dark")] = 0
	uc := usecase.New(repo, cat, checklist.New(), &mockLogger{})

	out, err := uc.Detail(ctx, alice, ledger.DetailInput{Kind: catalog.KindSeries, ID: "dark"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Outline.Title != "Dark" || out.Percent != 50 {
		t.Errorf("unexpected output: %+v", out)
	}
	if out.Stats.Total != 2 || out.Stats.Completed != 1 || out.Stats.Pending != 1 {
		t.Errorf("unexpected stats: %+v", out.Stats)
	}
	if want := [][]bool{{true, false}}; !reflect.DeepEqual(out.Checked, want) {
		t.Errorf("checked = %v, want %v", out.Checked, want)
	}

	other, err := uc.Detail(ctx, model.Scope{UserID: "bob"}, ledger.DetailInput{Kind: catalog.KindSeries, ID: "dark"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if other.Record.Found || other.Percent != 0 {
		t.Errorf("bob should have no progress: %+v", other)
	}
}

func TestSummary(t *testing.T) {
	ctx := context.Background()
	repo := newMockRepo()
	repo.records[recordKey("alice", catalog.KindGames, "celeste")] = 1
	repo.records[recordKey("alice", catalog.KindGames, "hades")] = 2
	repo.records[recordKey("alice", catalog.KindSeries, "dark")] = 0
	repo.records[recordKey("alice", catalog.KindSeries, "severed")] = 0
	repo.records[recordKey("alice", catalog.KindSeries, "arcane")] = 1
	uc := usecase.New(repo, newCatalog(t), checklist.New(), &mockLogger{})

	out, err := uc.Summary(ctx, alice)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ids := func(entries []checklist.Entry) []string {
		res := make([]string, 0, len(entries))
		for _, e := range entries {
			res = append(res, e.ID)
		}
		return res
	}
	if got := ids(out.Games.Ongoing); !reflect.DeepEqual(got, []string{"celeste"}) {
		t.Errorf("games ongoing = %v", got)
	}
	if got := ids(out.Games.Completed); !reflect.DeepEqual(got, []string{"hades"}) {
		t.Errorf("games completed = %v", got)
	}
	if got := ids(out.Series.Ongoing); !reflect.DeepEqual(got, []string{"dark"}) {
		t.Errorf("series ongoing = %v", got)
	}
	if got := ids(out.Series.Completed); !reflect.DeepEqual(got, []string{"arcane", "severed"}) {
		t.Errorf("series completed = %v", got)
	}

	t.Run("store down reads as empty", func(t *testing.T) {
		repo.failGet = true
		defer func() { repo.failGet = false }()

		out, err := uc.Summary(ctx, alice)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Games.Ongoing)+len(out.Games.Completed)+len(out.Series.Ongoing)+len(out.Series.Completed) != 0 {
			t.Errorf("expected empty summary, got %+v", out)
		}
	})
}

func TestCurrent(t *testing.T) {
	ctx := context.Background()
	repo := newMockRepo()
	uc := usecase.New(repo, newCatalog(t), checklist.New(), &mockLogger{})

	if _, err := uc.SetCurrent(ctx, alice, ledger.SetCurrentInput{Kind: catalog.KindGames, ID: "hades"}); err != nil {
		t.Fatalf("SetCurrent: %v", err)
	}
	out, err := uc.SetCurrent(ctx, alice, ledger.SetCurrentInput{Kind: catalog.KindSeries, ID: "dark"})
	if err != nil {
		t.Fatalf("SetCurrent: %v", err)
	}
	if out.Pointer.CurrentGame != "hades" || out.Pointer.CurrentSeries != "dark" || !out.Persisted {
		t.Errorf("unexpected pointer: %+v", out)
	}

	got, err := uc.GetCurrent(ctx, alice)
	if err != nil || got.Pointer != out.Pointer {
		t.Errorf("GetCurrent = %+v, %v", got, err)
	}

	if _, err := uc.SetCurrent(ctx, alice, ledger.SetCurrentInput{Kind: catalog.KindGames, ID: "missing"}); !errors.Is(err, ledger.ErrOutlineNotFound) {
		t.Errorf("expected ErrOutlineNotFound, got %v", err)
	}

	cleared, err := uc.SetCurrent(ctx, alice, ledger.SetCurrentInput{Kind: catalog.KindGames})
	if err != nil {
		t.Fatalf("SetCurrent clear: %v", err)
	}
	if cleared.Pointer.CurrentGame != "" || cleared.Pointer.CurrentSeries != "dark" {
		t.Errorf("unexpected pointer after clear: %+v", cleared.Pointer)
	}

	repo.failSet = true
	failed, err := uc.SetCurrent(ctx, alice, ledger.SetCurrentInput{Kind: catalog.KindGames, ID: "celeste"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if failed.Persisted || failed.Pointer.CurrentGame != "celeste" {
		t.Errorf("expected optimistic unpersisted pointer, got %+v", failed)
	}
}

func TestResetAndDeleteAll(t *testing.T) {
	ctx := context.Background()
	repo := newMockRepo()
	repo.records[recordKey("alice", catalog.KindGames, "celeste")] = 1
	repo.records[recordKey("alice", catalog.KindSeries, "dark")] = 1
	repo.records[recordKey("bob", catalog.KindSeries, "dark")] = 0
	repo.pointers["alice"] = ledger.Pointer{CurrentGame: "celeste"}
	uc := usecase.New(repo, newCatalog(t), checklist.New(), &mockLogger{})

	if err := uc.Reset(ctx, alice, ledger.ResetInput{Kind: catalog.KindGames, ID: "celeste"}); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if _, ok := repo.index("alice", catalog.KindGames, "celeste"); ok {
		t.Error("record should be reset")
	}

	repo.records[recordKey("alice", catalog.KindGames, "ghost")] = 0
	if err := uc.Reset(ctx, alice, ledger.ResetInput{Kind: catalog.KindGames, ID: "ghost"}); !errors.Is(err, ledger.ErrOutlineNotFound) {
		t.Errorf("Reset unknown id: expected ErrOutlineNotFound, got %v", err)
	}
	if _, ok := repo.index("alice", catalog.KindGames, "ghost"); !ok {
		t.Error("unknown id should not be deleted")
	}
	if err := uc.Reset(ctx, alice, ledger.ResetInput{Kind: "books", ID: "celeste"}); !errors.Is(err, ledger.ErrUnknownKind) {
		t.Errorf("Reset unknown kind: expected ErrUnknownKind, got %v", err)
	}

	if err := uc.DeleteAll(ctx, alice); err != nil {
		t.Fatalf("DeleteAll: %v", err)
	}
	if _, ok := repo.index("alice", catalog.KindSeries, "dark"); ok {
		t.Error("alice records should be gone")
	}
	if _, ok := repo.index("bob", catalog.KindSeries, "dark"); !ok {
		t.Error("bob records should survive")
	}
	if p := repo.pointers["alice"]; p != (ledger.Pointer{}) {
		t.Errorf("pointer should be gone: %+v", p)
	}

	repo.failDelete = true
	if err := uc.Reset(ctx, alice, ledger.ResetInput{Kind: catalog.KindGames, ID: "celeste"}); !errors.Is(err, ledger.ErrStoreFailure) {
		t.Errorf("expected ErrStoreFailure, got %v", err)
	}
	if err := uc.DeleteAll(ctx, alice); !errors.Is(err, ledger.ErrStoreFailure) {
		t.Errorf("expected ErrStoreFailure, got %v", err)
	}
}
