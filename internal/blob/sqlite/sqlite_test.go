package sqlite

import (
	"context"
	"path/filepath"
	"testing"
)

func TestSQLiteStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := New(dbPath)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer store.Close()

	if _, ok, err := store.Get(ctx, "@orders"); err != nil || ok {
		t.Fatalf("Get on fresh db = ok %v err %v, want absent", ok, err)
	}

	if err := store.Set(ctx, "@orders", `[{"id":"a"}]`); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := store.Set(ctx, "@orders", `[{"id":"b"}]`); err != nil {
		t.Fatalf("Set upsert: %v", err)
	}

	got, ok, err := store.Get(ctx, "@orders")
	if err != nil || !ok {
		t.Fatalf("Get = ok %v err %v", ok, err)
	}
	if got != `[{"id":"b"}]` {
		t.Fatalf("Get = %q, upsert did not replace", got)
	}

	if err := store.Remove(ctx, "@orders"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, ok, _ := store.Get(ctx, "@orders"); ok {
		t.Fatal("record still present after Remove")
	}
}

func TestSQLiteStoreSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := New(dbPath)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := store.Set(ctx, "@orders", "persisted"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	reopened, err := New(dbPath)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	got, ok, err := reopened.Get(ctx, "@orders")
	if err != nil || !ok || got != "persisted" {
		t.Fatalf("Get after reopen = %q ok %v err %v", got, ok, err)
	}
}
